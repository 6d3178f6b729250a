package content

import "github.com/example/pathaudio/internal/lang"

// Candidates returns the task's texts eligible for audio in the target
// language. Flashcards carry explicit per-field language tags, so
// eligibility there is tag equality. The other kinds have no tags; their
// free-text fields go through the classifier, best effort.
func Candidates(t Task, language string, isTarget lang.Classifier) []string {
	c := t.Content()
	if c == nil {
		return nil
	}

	var out []string
	add := func(s string) {
		if s != "" && isTarget(s) {
			out = append(out, s)
		}
	}

	switch t.Type() {
	case KindFlashcard:
		if getString(c, "frontLanguage") == language {
			if front := getString(c, "front"); front != "" {
				out = append(out, front)
			}
		}
		if getString(c, "backLanguage") == language {
			if back := getString(c, "back"); back != "" {
				out = append(out, back)
			}
		}

	case KindMultipleChoice:
		for _, opt := range getStrings(c, "options") {
			add(opt)
		}

	case KindTextInput:
		add(getString(c, "correctAnswer"))
		for _, alt := range getStrings(c, "alternatives") {
			add(alt)
		}

	case KindMatching:
		pairs, _ := c["pairs"].([]any)
		for _, p := range pairs {
			pair, ok := p.(map[string]any)
			if !ok {
				continue
			}
			add(getString(pair, "left"))
			add(getString(pair, "right"))
		}

	case KindDragAndDrop:
		for _, item := range getStrings(c, "items") {
			add(item)
		}
	}

	return out
}
