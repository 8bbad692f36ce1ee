package http

import "github.com/google/uuid"

type (
	// ChatbotRequest struct - HTTP request DTO for a text turn
	ChatbotRequest struct {
		Message   *string `json:"message" validate:"required" form:"message"`
		SessionID *string `json:"session_id" validate:"omitempty" form:"session_id"`
		UserID    *string `json:"user_id" validate:"omitempty" form:"user_id"`
	}

	// TextToSpeechRequest struct - HTTP request DTO
	TextToSpeechRequest struct {
		Text  *string `json:"text" validate:"required" form:"text"`
		Voice *string `json:"voice" validate:"omitempty" form:"voice"`
	}

	// RealtimeTokenHTTPRequest struct - HTTP request DTO
	RealtimeTokenHTTPRequest struct {
		SessionID *string `json:"session_id" validate:"omitempty"`
		UserID    *string `json:"user_id" validate:"omitempty"`
		Voice     *string `json:"voice" validate:"omitempty"`
	}

	// OrganizationHTTPRequest struct - HTTP request DTO
	OrganizationHTTPRequest struct {
		Name *string `json:"name" validate:"required,max=200"`
	}

	// MembershipHTTPRequest struct - HTTP request DTO
	MembershipHTTPRequest struct {
		UserID *string `json:"user_id" validate:"required"`
		Role   *string `json:"role" validate:"required,oneof=member manager owner"`
	}

	// ScenarioHTTPRequest struct - HTTP request DTO
	ScenarioHTTPRequest struct {
		OrgID       *uuid.UUID             `json:"org_id" validate:"omitempty"`
		Name        *string                `json:"name" validate:"required,max=200"`
		Description *string                `json:"description" validate:"omitempty"`
		Config      map[string]interface{} `json:"config" validate:"omitempty"`
	}

	// PersonaHTTPRequest struct - HTTP request DTO
	PersonaHTTPRequest struct {
		OrgID      *uuid.UUID             `json:"org_id" validate:"omitempty"`
		Name       *string                `json:"name" validate:"omitempty,max=200"`
		Difficulty *int                   `json:"difficulty" validate:"omitempty,gte=1,lte=5"`
		Config     map[string]interface{} `json:"config" validate:"omitempty"`
	}

	// SessionHTTPRequest struct - HTTP request DTO
	SessionHTTPRequest struct {
		OrgID       *uuid.UUID             `json:"org_id" validate:"omitempty"`
		AIPersonaID *uuid.UUID             `json:"ai_persona_id" validate:"omitempty"`
		ScenarioID  *uuid.UUID             `json:"scenario_id" validate:"omitempty"`
		Meta        map[string]interface{} `json:"meta" validate:"omitempty"`
	}

	// ScoreItemHTTPRequest struct - Rubric scores are normalized to [0,1]
	ScoreItemHTTPRequest struct {
		RubricKey *string  `json:"rubric_key" validate:"required,max=100"`
		Value     *float64 `json:"value" validate:"required,gte=0,lte=1"`
		Rationale *string  `json:"rationale" validate:"omitempty"`
	}

	// ScoresHTTPRequest struct - HTTP request DTO
	ScoresHTTPRequest struct {
		Scores []ScoreItemHTTPRequest `json:"scores" validate:"required,min=1,dive"`
	}

	// ObservationItemHTTPRequest struct
	ObservationItemHTTPRequest struct {
		Speaker     *string                `json:"speaker" validate:"required,oneof=user avatar system"`
		Text        *string                `json:"text" validate:"required"`
		StartedAtMs *int64                 `json:"started_at_ms" validate:"required"`
		EndedAtMs   *int64                 `json:"ended_at_ms" validate:"required"`
		Confidence  *float64               `json:"confidence" validate:"omitempty"`
		Extra       map[string]interface{} `json:"extra" validate:"omitempty"`
	}

	// ObservationsHTTPRequest struct - HTTP request DTO
	ObservationsHTTPRequest struct {
		Observations []ObservationItemHTTPRequest `json:"observations" validate:"required,min=1,dive"`
	}

	// ReportHTTPRequest struct - HTTP request DTO; section payloads are
	// free-form JSON produced by the scoring pipeline
	ReportHTTPRequest struct {
		Summary        *string       `json:"summary" validate:"required"`
		Strengths      []interface{} `json:"strengths" validate:"omitempty"`
		AreasToImprove []interface{} `json:"areas_to_improve" validate:"omitempty"`
		Drills         []interface{} `json:"drills" validate:"omitempty"`
	}

	// ProgressHTTPRequest struct - HTTP request DTO
	ProgressHTTPRequest struct {
		UserID            *string `json:"user_id" validate:"required"`
		TimeSpent         *int64  `json:"time_spent" validate:"omitempty,gte=0"`
		ScenarioCompleted *bool   `json:"scenario_completed" validate:"omitempty"`
		Timestamp         *string `json:"timestamp" validate:"omitempty"`
	}

	// SignedURLHTTPRequest struct - HTTP request DTO
	SignedURLHTTPRequest struct {
		Bucket    *string `json:"bucket" validate:"required"`
		Path      *string `json:"path" validate:"required"`
		ExpiresIn *int    `json:"expires_in" validate:"omitempty,gte=1,lte=3600"`
	}
)
