package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAndSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "path.json")

	src := `{
  "learningPath": {"id": "saludos", "title": "Saludos", "estimatedTime": 900},
  "tasks": [
    {
      "id": "t1",
      "type": "flashcard",
      "difficulty": "easy",
      "content": {"front": "Hola", "frontLanguage": "es", "back": "Hallo", "backLanguage": "de"}
    }
  ]
}`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Tasks) != 1 {
		t.Fatalf("tasks = %d; want 1", len(doc.Tasks))
	}
	if doc.Tasks[0].Type() != KindFlashcard {
		t.Errorf("Type = %q; want flashcard", doc.Tasks[0].Type())
	}

	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Fields this tool does not know about must survive.
	if !strings.Contains(string(out), `"difficulty": "easy"`) {
		t.Error("unknown task field dropped on round trip")
	}
	if !strings.Contains(string(out), `"estimatedTime": 900`) {
		t.Error("learningPath metadata dropped on round trip")
	}
}

func TestSaveKeepsNonASCIILiteral(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "path.json")

	doc := &Document{
		LearningPath: map[string]any{"title": "Preguntas"},
		Tasks: []Task{
			{"type": KindFlashcard, "content": map[string]any{"front": "¿Cómo estás?", "frontLanguage": "es"}},
		},
	}
	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "¿Cómo estás?") {
		t.Errorf("non-ASCII text escaped in output:\n%s", out)
	}
	if strings.Contains(string(out), `\u`) {
		t.Errorf("output contains escape sequences:\n%s", out)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("missing tasks", func(t *testing.T) {
		path := filepath.Join(dir, "notasks.json")
		if err := os.WriteFile(path, []byte(`{"learningPath": {}}`), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected error for missing tasks array")
		}
	})
}

func TestEnsureContent(t *testing.T) {
	task := Task{"type": KindTextInput}
	c := task.EnsureContent()
	c["correctAnswer"] = "fui"

	got := task.Content()
	if got == nil || got["correctAnswer"] != "fui" {
		t.Errorf("EnsureContent did not attach content to the record: %v", task)
	}
}
