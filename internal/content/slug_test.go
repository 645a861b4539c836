package content

import (
	"errors"
	"testing"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		slug    string
		wantErr error
	}{
		{"hello", nil},
		{"rust-async-2024", nil},
		{"a", nil},
		{"", ErrSlugEmpty},
		{"Hello", ErrSlugFormat},
		{"-leading", ErrSlugFormat},
		{"trailing-", ErrSlugFormat},
		{"with space", ErrSlugFormat},
		{"under_score", ErrSlugFormat},
	}
	for _, tt := range tests {
		err := ValidateSlug(tt.slug)
		if tt.wantErr == nil {
			if err != nil {
				t.Errorf("ValidateSlug(%q) = %v, want nil", tt.slug, err)
			}
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ValidateSlug(%q) = %v, want %v", tt.slug, err, tt.wantErr)
		}
	}
}
