package domain

import "github.com/google/uuid"

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// TurnRequest struct - One inbound conversational turn (audio in)
	TurnRequest struct {
		Audio     []byte
		MimeType  string
		Filename  string
		SessionID string
		UserID    string
	}

	// TurnResult struct - Outcome of one processed turn (audio out)
	TurnResult struct {
		Audio      []byte
		Transcript string
		Reply      string
		Timestamp  string
		TokensUsed int
	}

	// TranscriptionRequest struct - Audio to transcribe
	TranscriptionRequest struct {
		Audio    []byte
		MimeType string
		Filename string
	}

	// SpeechRequest struct - Text to synthesize
	SpeechRequest struct {
		Text  string
		Voice string
	}

	// ChatTurnRequest struct - Text-only turn (no audio legs)
	ChatTurnRequest struct {
		Message   string
		SessionID string
		UserID    string
	}

	// ChatTurnResponse struct
	ChatTurnResponse struct {
		ID         string
		Message    string
		SessionID  string
		UserID     string
		Timestamp  string
		TokensUsed int
	}

	// OrganizationRequest struct
	OrganizationRequest struct {
		Name      string
		CreatedBy string
	}

	// MembershipRequest struct
	MembershipRequest struct {
		OrgID  uuid.UUID
		UserID string
		Role   MembershipRole
	}

	// ScenarioRequest struct
	ScenarioRequest struct {
		OwnerID     string
		OrgID       *uuid.UUID
		Name        string
		Description *string
		Config      *string
	}

	// PersonaRequest struct
	PersonaRequest struct {
		OwnerID    string
		OrgID      *uuid.UUID
		Name       *string
		Difficulty *int
		Config     *string
	}

	// SessionRequest struct
	SessionRequest struct {
		UserID      string
		OrgID       *uuid.UUID
		AIPersonaID *uuid.UUID
		ScenarioID  *uuid.UUID
		Meta        *string
	}

	// SessionDetail struct - A session with its recorded artifacts
	SessionDetail struct {
		Session      TrainingSession
		Observations []Observation
		Scores       []Score
		Report       *Report
	}

	// ScoreItem struct
	ScoreItem struct {
		RubricKey string
		Value     float64
		Rationale *string
	}

	// ObservationItem struct
	ObservationItem struct {
		Speaker     ObservationSpeaker
		Text        string
		StartedAtMs int64
		EndedAtMs   int64
		Confidence  *float64
		Extra       *string
	}

	// ReportRequest struct - jsonb sections arrive pre-marshaled
	ReportRequest struct {
		Summary        string
		Strengths      string
		AreasToImprove string
		Drills         string
	}

	// ProgressUpdateRequest struct - One finished session's contribution
	ProgressUpdateRequest struct {
		UserID            string
		TimeSpent         int64
		ScenarioCompleted bool
		Timestamp         string
	}

	// SignedURLRequest struct
	SignedURLRequest struct {
		Bucket    string
		Path      string
		ExpiresIn int
	}

	// SignedUploadResult struct
	SignedUploadResult struct {
		Path      string
		Token     string
		SignedURL string
	}

	// Identity struct - Authenticated caller resolved from a bearer token
	Identity struct {
		ID    string
		Email string
	}

	// RealtimeTokenRequest struct
	RealtimeTokenRequest struct {
		SessionID string
		UserID    string
		Voice     string
	}

	// RealtimeTokenResult struct
	RealtimeTokenResult struct {
		Token     string
		Model     string
		Voice     string
		ExpiresAt string
	}
)

// StorageBuckets lists the buckets signed URLs may be issued for.
var StorageBuckets = map[string]bool{
	"session-audio": true,
	"reports":       true,
}
