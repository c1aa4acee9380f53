package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain text", input: "Built a scheduler", expected: "Built a scheduler"},
		{name: "backslash", input: `a\b`, expected: `a\textbackslash{}b`},
		{name: "braces", input: "{x}", expected: `\{x\}`},
		{name: "money and percent", input: "$1M at 99.9%", expected: `\$1M at 99.9\%`},
		{name: "ampersand and hash", input: "R&D #1", expected: `R\&D \#1`},
		{name: "caret and tilde", input: "x^2 ~ y", expected: `x\textasciicircum{}2 \textasciitilde{} y`},
		{name: "underscore", input: "snake_case", expected: `snake\_case`},
		{name: "unicode passes through", input: "résumé α β", expected: "résumé α β"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLaTeX(tt.input))
		})
	}
}
