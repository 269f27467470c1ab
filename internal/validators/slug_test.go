package validators

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"João Telefone Apenas", "joao-telefone-apenas"},
		{"Maria da Conceição", "maria-da-conceicao"},
		{"  Barbearia  do  Zé  ", "barbearia-do-ze"},
		{"André", "andre"},
		{"Corte & Barba", "corte-barba"},
		{"123 Cortes", "123-cortes"},
		{"---", ""},
		{"", ""},
		{"ÁGUA ÔNibus Über", "agua-onibus-uber"},
	}

	for _, tt := range cases {
		if got := Slugify(tt.in); got != tt.want {
			t.Fatalf("Slugify(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}
