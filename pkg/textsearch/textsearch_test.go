package textsearch

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Muñoz", "munoz"},
		{"  José María ", "jose maria"},
		{"GARCÍA", "garcia"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSQLFilter(t *testing.T) {
	fragment, args := SQLFilter("profiles.last_name", "Muñoz")

	if !strings.Contains(fragment, "profiles.last_name") {
		t.Errorf("fragment sütunu içermeli: %s", fragment)
	}
	if !strings.Contains(fragment, "LIKE ?") {
		t.Errorf("fragment LIKE koşulu içermeli: %s", fragment)
	}
	if len(args) != 1 || args[0] != "%munoz%" {
		t.Errorf("args = %v, want [%%munoz%%]", args)
	}
}
