// Package lang holds the best-effort language heuristics used to pick
// audio candidates out of untagged free-text fields.
package lang

import "strings"

// Classifier reports whether free text is plausibly in the target language.
// It is a heuristic: false positives and false negatives are expected, and
// callers must treat the result as candidate selection, not ground truth.
type Classifier func(text string) bool

// spanishChars are characters that essentially never appear outside Spanish
// in this content set.
const spanishChars = "¿¡ñáéíóúü"

// spanishWords is a list of common Spanish words and phrases, matched
// against whole words of the lowercased input.
var spanishWords = []string{
	"hola", "adiós", "gracias", "por favor", "buenos días", "buenas tardes",
	"buenas noches", "cómo", "qué", "dónde", "cuándo", "me llamo", "soy",
	"el", "la", "los", "las", "un", "una", "perro", "gato", "padre", "madre",
}

var englishWords = []string{
	"the", "and", "hello", "goodbye", "please", "thank you", "good morning",
	"good night", "how", "what", "where", "when", "my name is", "i am",
	"dog", "cat", "father", "mother", "yes", "no",
}

// ForCode returns the built-in classifier for a language code. Unknown
// codes get a classifier that rejects everything, so untagged fields are
// simply never selected for languages without a heuristic.
func ForCode(code string) Classifier {
	switch code {
	case "es":
		return isSpanish
	case "en":
		return isEnglish
	default:
		return func(string) bool { return false }
	}
}

// DirName maps a language code to the asset directory name used under the
// asset root. Unmapped codes fall back to the code itself.
func DirName(code string) string {
	switch code {
	case "es":
		return "spanish"
	case "en":
		return "english"
	case "de":
		return "german"
	case "fr":
		return "french"
	default:
		return code
	}
}

func isSpanish(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	if strings.ContainsAny(lower, spanishChars) {
		return true
	}
	return containsWord(lower, spanishWords)
}

func isEnglish(text string) bool {
	if text == "" {
		return false
	}
	return containsWord(strings.ToLower(text), englishWords)
}

// containsWord matches needles against whole words (single-word needles)
// or substrings (multi-word phrases) of the lowercased text. Whole-word
// matching keeps short articles like "el" from firing inside "hello".
func containsWord(lower string, needles []string) bool {
	var words []string
	for _, needle := range needles {
		if strings.Contains(needle, " ") {
			if strings.Contains(lower, needle) {
				return true
			}
			continue
		}
		if words == nil {
			words = strings.FieldsFunc(lower, func(r rune) bool {
				return !isWordRune(r)
			})
		}
		for _, w := range words {
			if w == needle {
				return true
			}
		}
	}
	return false
}

func isWordRune(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ü', 'ñ':
		return true
	}
	return false
}
