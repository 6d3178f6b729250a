// Package content models learning-path JSON files and the per-kind rules
// for reading and annotating their task records.
package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Document is one learning-path file: path metadata plus its task records.
type Document struct {
	LearningPath map[string]any `json:"learningPath"`
	Tasks        []Task         `json:"tasks"`
}

// Task is one content record. It stays a plain map so fields this tool does
// not know about survive a read-modify-write cycle unchanged.
type Task map[string]any

// Task kinds.
const (
	KindFlashcard      = "flashcard"
	KindMultipleChoice = "multiple-choice"
	KindTextInput      = "text-input"
	KindMatching       = "matching"
	KindDragAndDrop    = "drag-and-drop"
)

// Type returns the task kind, or "" if the record carries none.
func (t Task) Type() string {
	s, _ := t["type"].(string)
	return s
}

// Content returns the kind-specific payload of the task. The returned map
// aliases the task, so edits to it are edits to the record. A task without
// a content object returns nil.
func (t Task) Content() map[string]any {
	c, _ := t["content"].(map[string]any)
	return c
}

// EnsureContent returns the task's content object, creating an empty one
// on the record if missing.
func (t Task) EnsureContent() map[string]any {
	if c := t.Content(); c != nil {
		return c
	}
	c := make(map[string]any)
	t["content"] = c
	return c
}

// Load reads and decodes one learning-path file. A decode failure is an
// input error scoped to this file; callers skip the file and move on.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if doc.Tasks == nil {
		return nil, fmt.Errorf("decode %s: missing tasks array", path)
	}
	return &doc, nil
}

// Save writes the document back as UTF-8 JSON, two-space indented, with
// HTML escaping off so accented text and the inverted Spanish marks stay
// literal. The frontend consumes these files as-is.
func Save(path string, doc *Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func getStrings(m map[string]any, key string) []string {
	raw, _ := m[key].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
