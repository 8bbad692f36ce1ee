package http

import (
	"testing"

	"vr-training-backend/pkg/validator"
)

func ptrString(s string) *string    { return &s }
func ptrInt(i int) *int             { return &i }
func ptrFloat64(f float64) *float64 { return &f }

func TestPersonaRequestDifficultyBounds(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name       string
		difficulty int
		wantErr    bool
	}{
		{"easiest", 1, false},
		{"hardest", 5, false},
		{"below range", 0, true},
		{"above range", 6, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request := PersonaHTTPRequest{
				Name:       ptrString("Skeptical Homeowner"),
				Difficulty: ptrInt(tc.difficulty),
			}
			err := v.ValidateStruct(request)
			if tc.wantErr && err == nil {
				t.Errorf("Expected validation error for difficulty %d", tc.difficulty)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected validation error for difficulty %d: %v", tc.difficulty, err)
			}
		})
	}
}

func TestScoresRequestValueBounds(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"floor", 0, false},
		{"ceiling", 1, false},
		{"midpoint", 0.5, false},
		{"negative", -0.2, true},
		{"above one", 5.0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request := ScoresHTTPRequest{Scores: []ScoreItemHTTPRequest{
				{RubricKey: ptrString("rapport"), Value: ptrFloat64(tc.value)},
			}}
			err := v.ValidateStruct(request)
			if tc.wantErr && err == nil {
				t.Errorf("Expected validation error for value %v", tc.value)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected validation error for value %v: %v", tc.value, err)
			}
		})
	}
}
