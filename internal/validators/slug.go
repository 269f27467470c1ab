package validators

import (
	"strings"
	"unicode"
)

// Slugify lowercases a name and reduces it to [a-z0-9-], collapsing runs of
// other characters into single dashes. Accented letters common in Portuguese
// names are folded to their base letter.
func Slugify(name string) string {
	folded := strings.Map(foldRune, strings.ToLower(strings.TrimSpace(name)))

	var b strings.Builder
	dash := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

func foldRune(r rune) rune {
	switch {
	case strings.ContainsRune("áàâãä", r):
		return 'a'
	case strings.ContainsRune("éèêë", r):
		return 'e'
	case strings.ContainsRune("íìîï", r):
		return 'i'
	case strings.ContainsRune("óòôõö", r):
		return 'o'
	case strings.ContainsRune("úùûü", r):
		return 'u'
	case r == 'ç':
		return 'c'
	case unicode.IsSpace(r):
		return ' '
	}
	return r
}
