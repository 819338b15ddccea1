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
		{"empty", "", ""},
		{"plain", "Senior Go engineer", "Senior Go engineer"},
		{"backslash", `test\backslash`, `test\textbackslash{}backslash`},
		{"braces", "text{with}braces", `text\{with\}braces`},
		{"dollar", "cut $2M in spend", `cut \$2M in spend`},
		{"ampersand", "Tools & Technologies", `Tools \& Technologies`},
		{"percent", "99.9% uptime", `99.9\% uptime`},
		{"hash", "C# and F#", `C\# and F\#`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"underscore", "snake_case", `snake\_case`},
		{"tilde", "~40 services", `\textasciitilde{}40 services`},
		{"all at once", `${}~&%#^_\`, `\$\{\}\textasciitilde{}\&\%\#\textasciicircum{}\_\textbackslash{}`},
		{"unicode passes through", "résumé α β", "résumé α β"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLaTeX(tt.input))
		})
	}
}
