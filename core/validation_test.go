package core

import (
	"errors"
	"testing"
)

func TestValidateResolutionRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     ResolutionRequest
		wantErr error
	}{
		{
			name: "valid request with default sources",
			req:  NewResolutionRequest("Marfan syndrome"),
		},
		{
			name: "valid request with explicit sources",
			req:  NewResolutionRequest("Marfan syndrome", "HPO", "SNOMEDCT_US", "MSH"),
		},
		{
			name:    "empty term",
			req:     NewResolutionRequest(""),
			wantErr: ErrEmptyTerm,
		},
		{
			name:    "whitespace term",
			req:     NewResolutionRequest(" \t "),
			wantErr: ErrEmptyTerm,
		},
		{
			name:    "lowercase source",
			req:     NewResolutionRequest("fever", "hpo"),
			wantErr: ErrInvalidSource,
		},
		{
			name:    "source with comma",
			req:     NewResolutionRequest("fever", "HPO,MSH"),
			wantErr: ErrInvalidSource,
		},
		{
			name:    "zero value request",
			req:     ResolutionRequest{},
			wantErr: ErrEmptyTerm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResolutionRequest(tt.req)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateResolutionRequest() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("ValidateResolutionRequest() error = %v, want wrapping %v", err, ErrInvalidRequest)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateResolutionRequest() error = %v, want wrapping %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSource(t *testing.T) {
	valid := []string{"HPO", "SNOMEDCT_US", "MSH", "MTH", "ICD10CM", "MDR-X"}
	for _, sab := range valid {
		if err := ValidateSource(sab); err != nil {
			t.Errorf("ValidateSource(%q) unexpected error = %v", sab, err)
		}
	}

	invalid := []string{"", "hpo", "HPO MSH", "HPO,MSH", "SNOMED.CT"}
	for _, sab := range invalid {
		if err := ValidateSource(sab); !errors.Is(err, ErrInvalidSource) {
			t.Errorf("ValidateSource(%q) error = %v, want %v", sab, err, ErrInvalidSource)
		}
	}
}
