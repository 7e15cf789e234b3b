package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		fallback string
		want     string
	}{
		{"stored name wins", "Alice", "hint", "Alice"},
		{"fallback when no stored name", "", "hint", "hint"},
		{"sentinel when nothing known", "", "", "unknown user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Account{Name: tt.stored}
			assert.Equal(t, tt.want, a.DisplayName(tt.fallback))
		})
	}
}
