package drive

import "testing"

func TestEscapeQueryValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "report.csv", "report.csv"},
		{"single quote", "bob's file", `bob\'s file`},
		{"backslash", `a\b`, `a\\b`},
		{"backslash then quote", `a\'b`, `a\\\'b`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeQueryValue(tt.input); got != tt.want {
				t.Errorf("escapeQueryValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameQueryEscapesName(t *testing.T) {
	got := nameQuery("bob's file", KindAny)
	want := `name = 'bob\'s file' and trashed = false`
	if got != want {
		t.Errorf("nameQuery = %q, want %q", got, want)
	}
}

func TestChildrenQuery(t *testing.T) {
	got := childrenQuery("folder123")
	want := "'folder123' in parents and trashed = false"
	if got != want {
		t.Errorf("childrenQuery = %q, want %q", got, want)
	}
}
