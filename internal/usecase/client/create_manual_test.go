package client

import (
	"strings"
	"testing"
)

func TestSyntheticEmail(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"João Telefone Apenas", "joao-telefone-apenas@manual.local"},
		{"Maria Silva", "maria-silva@manual.local"},
		{"  Pedro  ", "pedro@manual.local"},
	}

	for _, tt := range cases {
		if got := SyntheticEmail(tt.name); got != tt.want {
			t.Fatalf("SyntheticEmail(%q)=%q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSyntheticEmailUnslugabbleName(t *testing.T) {
	got := SyntheticEmail("!!!")
	if !strings.HasSuffix(got, "@manual.local") {
		t.Fatalf("expected manual.local domain, got %q", got)
	}
	local := strings.TrimSuffix(got, "@manual.local")
	if len(local) != 8 {
		t.Fatalf("expected 8-char random fragment, got %q", local)
	}
}
