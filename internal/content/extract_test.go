package content

import (
	"reflect"
	"testing"

	"github.com/example/pathaudio/internal/lang"
)

func TestCandidates(t *testing.T) {
	isSpanish := lang.ForCode("es")

	tests := []struct {
		name string
		task Task
		want []string
	}{
		{
			name: "flashcard takes tagged sides only",
			task: Task{
				"type": KindFlashcard,
				"content": map[string]any{
					"front": "Hola", "frontLanguage": "es",
					"back": "Hallo", "backLanguage": "de",
				},
			},
			want: []string{"Hola"},
		},
		{
			name: "flashcard tag equality ignores classifier",
			task: Task{
				"type": KindFlashcard,
				"content": map[string]any{
					// Not recognizably Spanish, but the tag says it is.
					"front": "vale", "frontLanguage": "es",
				},
			},
			want: []string{"vale"},
		},
		{
			name: "multiple choice filters options through classifier",
			task: Task{
				"type": KindMultipleChoice,
				"content": map[string]any{
					"options": []any{"el perro", "the dog", "¿y tú?"},
				},
			},
			want: []string{"el perro", "¿y tú?"},
		},
		{
			name: "text input takes answer and alternatives",
			task: Task{
				"type": KindTextInput,
				"content": map[string]any{
					"correctAnswer": "buenos días",
					"alternatives":  []any{"hola", "good morning"},
				},
			},
			want: []string{"buenos días", "hola"},
		},
		{
			name: "matching takes both pair sides",
			task: Task{
				"type": KindMatching,
				"content": map[string]any{
					"pairs": []any{
						map[string]any{"left": "el gato", "right": "cat"},
						map[string]any{"left": "dog", "right": "el perro"},
					},
				},
			},
			want: []string{"el gato", "el perro"},
		},
		{
			name: "drag and drop takes items",
			task: Task{
				"type": KindDragAndDrop,
				"content": map[string]any{
					"items": []any{"mañana", "tomorrow"},
				},
			},
			want: []string{"mañana"},
		},
		{
			name: "unknown kind yields nothing",
			task: Task{
				"type":    "fill-in-the-blank",
				"content": map[string]any{"correctAnswer": "hola"},
			},
			want: nil,
		},
		{
			name: "task without content yields nothing",
			task: Task{"type": KindFlashcard},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Candidates(tt.task, "es", isSpanish)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Candidates = %v; want %v", got, tt.want)
			}
		})
	}
}
