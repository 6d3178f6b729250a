package verbs

import (
	"fmt"
	"path"
	"strings"

	"github.com/example/pathaudio/internal/content"
)

// tenseAt returns the verb and tested form for task index i. Tasks come in
// pairs per verb: even index tests the simple past, odd the past
// participle. The bool is false once i runs past the table.
func tenseAt(table []Verb, i int) (Verb, Form, bool) {
	verbIndex := i / 2
	if verbIndex >= len(table) {
		return Verb{}, Form{}, false
	}
	v := table[verbIndex]
	if i%2 == 0 {
		return v, v.SimplePast, true
	}
	return v, v.PastParticiple, true
}

// AnnotateAudio stamps answer-audio fields onto the irregular-verbs tasks,
// pointing each at its tested form's asset under dir (e.g. "english/verbs").
// Returns the number of tasks changed; re-running changes nothing.
func AnnotateAudio(doc *content.Document, table []Verb, dir string) int {
	changed := 0
	for i, task := range doc.Tasks {
		_, tense, ok := tenseAt(table, i)
		if !ok {
			break
		}
		rel := path.Join(dir, tense.Form+".mp3")
		if content.ApplyAnswerAudio(task, rel, "en", "English") {
			changed++
		}
	}
	return changed
}

// estimatedTimeSeconds is the corrected duration for the enriched path:
// 60 tasks with contextual sentences take about 45 minutes.
const estimatedTimeSeconds = 2700

// Enrich applies hints, contextual fill-in questions, and worked
// explanations to the irregular-verbs tasks. The German gloss in the
// existing question's parentheses is preserved, which also makes a second
// run reproduce the same question verbatim.
func Enrich(doc *content.Document, table []Verb) int {
	if doc.LearningPath != nil {
		doc.LearningPath["estimatedTime"] = estimatedTimeSeconds
	}

	changed := 0
	for i, task := range doc.Tasks {
		verb, tense, ok := tenseAt(table, i)
		if !ok {
			break
		}
		if enrichTask(task, verb, tense, i%2 == 0) {
			changed++
		}
	}
	return changed
}

func enrichTask(task content.Task, verb Verb, tense Form, simplePast bool) bool {
	c := task.Content()
	if c == nil {
		return false
	}

	changed := setField(c, "hint", tense.Hint)

	gloss := parenGloss(stringField(c, "question"))
	if gloss == "" {
		gloss = verb.Infinitive
	}
	question := fmt.Sprintf("Fill in: %s (%s)", tense.Sentence, gloss)
	changed = setField(c, "question", question) || changed

	answer := correctAnswerText(task, c)
	if answer != "" {
		example := strings.ReplaceAll(tense.Sentence, "___", answer)
		var explanation string
		if simplePast {
			explanation = fmt.Sprintf("Das Verb '%s' wird im Simple Past zu '%s'. Beispiel: %s.",
				verb.Infinitive, answer, example)
		} else {
			explanation = fmt.Sprintf("Das Past Participle von '%s' ist '%s'. Beispiel: %s.",
				verb.Infinitive, answer, example)
		}
		changed = setField(c, "explanation", explanation) || changed
	}

	return changed
}

// correctAnswerText resolves the answer string regardless of task kind:
// multiple-choice stores an option index, text-input the literal answer.
func correctAnswerText(task content.Task, c map[string]any) string {
	if task.Type() == content.KindMultipleChoice {
		idx, ok := c["correctAnswer"].(float64)
		options, _ := c["options"].([]any)
		if !ok || int(idx) < 0 || int(idx) >= len(options) {
			return ""
		}
		s, _ := options[int(idx)].(string)
		return s
	}
	s, _ := c["correctAnswer"].(string)
	return s
}

// parenGloss extracts the text of the first parenthesized group, the
// German gloss the curated questions carry ("Fill in: ... (gehen)").
func parenGloss(question string) string {
	open := strings.Index(question, "(")
	if open < 0 {
		return ""
	}
	rest := question[open+1:]
	end := strings.Index(rest, ")")
	if end < 0 {
		return ""
	}
	return rest[:end]
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func setField(m map[string]any, key, value string) bool {
	if stringField(m, key) == value {
		return false
	}
	m[key] = value
	return true
}
