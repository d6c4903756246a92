package utils

import (
	"testing"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name  string
		slug  string
		valid bool
	}{
		{"simple", "my-slug", true},
		{"single word", "pomodoro", true},
		{"digits", "top-10-habits", true},
		{"hyphens only", "---", true},
		{"empty", "", false},
		{"uppercase", "My-Slug", false},
		{"space", "my slug", false},
		{"punctuation", "my-slug!", false},
		{"underscore", "my_slug", false},
		{"unicode", "mí-slug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateSlug(tt.slug); got != tt.valid {
				t.Errorf("ValidateSlug(%q) = %v, want %v", tt.slug, got, tt.valid)
			}
		})
	}
}
