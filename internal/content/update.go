package content

// PathResolver maps a source text to its relative asset path. The second
// return is false when no asset exists (or can exist) for the text, in
// which case the updater leaves the record alone.
type PathResolver func(text string) (string, bool)

// ApplyFlashcardAudio sets frontAudio/backAudio on a flashcard whose
// language tags match. It overwrites with the computed value every time,
// so re-running over already-annotated data is a no-op. Returns true if a
// field was added or changed.
func ApplyFlashcardAudio(t Task, language string, resolve PathResolver) bool {
	if t.Type() != KindFlashcard {
		return false
	}
	c := t.Content()
	if c == nil {
		return false
	}

	changed := false
	sides := []struct{ text, tag, audio string }{
		{"front", "frontLanguage", "frontAudio"},
		{"back", "backLanguage", "backAudio"},
	}
	for _, side := range sides {
		if getString(c, side.tag) != language {
			continue
		}
		text := getString(c, side.text)
		if text == "" {
			continue
		}
		rel, ok := resolve(text)
		if !ok {
			continue
		}
		if getString(c, side.audio) != rel {
			c[side.audio] = rel
			changed = true
		}
	}
	return changed
}

// ApplyAnswerAudio stamps the answer-audio fields consumed by the frontend
// onto a task: the content-level audio path and language code, plus the
// task-level hasAudio/audioUrl/language trio. Idempotent by construction,
// every field is set to the same computed value on re-runs.
func ApplyAnswerAudio(t Task, relPath, langCode, langName string) bool {
	c := t.EnsureContent()

	changed := false
	if getString(c, "correctAnswerAudio") != relPath {
		c["correctAnswerAudio"] = relPath
		changed = true
	}
	if getString(c, "correctAnswerLanguage") != langCode {
		c["correctAnswerLanguage"] = langCode
		changed = true
	}
	if has, _ := t["hasAudio"].(bool); !has {
		t["hasAudio"] = true
		changed = true
	}
	if getString(t, "audioUrl") != relPath {
		t["audioUrl"] = relPath
		changed = true
	}
	if getString(t, "language") != langName {
		t["language"] = langName
		changed = true
	}
	return changed
}
