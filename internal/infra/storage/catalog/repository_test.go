package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain prefix", "Koramangala", "Koramangala"},
		{"percent", "100%", `100\%`},
		{"bare wildcard", "%", `\%`},
		{"underscore", "HSR_Layout", `HSR\_Layout`},
		{"backslash", `C\D`, `C\\D`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePattern(tt.input))
		})
	}
}
