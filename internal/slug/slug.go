// Package slug converts natural-language text into filesystem-safe
// audio-asset identifiers.
package slug

import (
	"strings"
	"unicode"
)

// Rules configures per-language normalization: which punctuation characters
// are stripped outright and how accented letters fold to plain ASCII.
// The fold table is explicit data rather than Unicode decomposition so the
// output stays stable regardless of how the input was composed.
type Rules struct {
	StripPunctuation string
	AccentFold       map[rune]rune
}

// DefaultRules covers both Spanish and generic Latin-script text: it strips
// the inverted Spanish marks alongside the usual punctuation and folds the
// Spanish accented vowels, ü and ñ.
func DefaultRules() Rules {
	return Rules{
		StripPunctuation: "¿?¡!.,;:()[]{}…",
		AccentFold: map[rune]rune{
			'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u',
			'ü': 'u', 'ñ': 'n',
		},
	}
}

// SpanishRules is the Spanish variant of DefaultRules. The sets are
// currently identical; they are kept separate so the punctuation set can
// diverge per language without touching callers.
func SpanishRules() Rules {
	return DefaultRules()
}

// EnglishRules omits the inverted Spanish marks and carries no fold table.
func EnglishRules() Rules {
	return Rules{
		StripPunctuation: "?!.,;:()[]{}…",
		AccentFold:       map[rune]rune{},
	}
}

// RulesFor returns the rules for a language code. Codes without a
// dedicated set get the superset default.
func RulesFor(code string) Rules {
	switch code {
	case "es":
		return SpanishRules()
	case "en":
		return EnglishRules()
	default:
		return DefaultRules()
	}
}

// Make converts text into a slug drawn from [a-z0-9-] with no leading,
// trailing, or consecutive hyphens. The steps run in a fixed order:
// lowercase, strip punctuation, fold accents, hyphenate whitespace and
// slashes, drop everything else, collapse and trim hyphens. An input that
// is empty or all punctuation yields the empty string; callers must treat
// that as "no asset" and skip.
func Make(text string, rules Rules) string {
	s := strings.ToLower(text)
	s = stripRunes(s, rules.StripPunctuation)
	s = foldAccents(s, rules.AccentFold)
	s = hyphenate(s)
	s = dropInvalid(s)
	s = collapseHyphens(s)

	return strings.Trim(s, "-")
}

// IsValid reports whether s is a well-formed non-empty slug.
func IsValid(s string) bool {
	if s == "" || strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") || strings.Contains(s, "--") {
		return false
	}
	for _, r := range s {
		if !validRune(r) {
			return false
		}
	}
	return true
}

func stripRunes(s, set string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(set, r) {
			return -1
		}
		return r
	}, s)
}

func foldAccents(s string, table map[rune]rune) string {
	return strings.Map(func(r rune) rune {
		if folded, ok := table[r]; ok {
			return folded
		}
		return r
	}, s)
}

// hyphenate replaces runs of whitespace and forward slashes with a single
// hyphen. "casa / hogar" becomes "casa-hogar", not "casa---hogar".
func hyphenate(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == '/' {
			if !inRun {
				b.WriteByte('-')
			}
			inRun = true
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

func dropInvalid(s string) string {
	return strings.Map(func(r rune) rune {
		if validRune(r) {
			return r
		}
		return -1
	}, s)
}

// collapseHyphens squeezes hyphen runs left behind by dropped characters.
func collapseHyphens(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

func validRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
