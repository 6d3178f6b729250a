// Package tts is the boundary to the external text-to-speech collaborator.
// The service is opaque: the workflow hands it text and a language code and
// gets MP3 bytes or an error, nothing else.
package tts

import (
	"context"
	"fmt"
	"os"

	"github.com/Duckduckgot/gtts"
	"github.com/Duckduckgot/gtts/voices"
	"github.com/google/uuid"
)

// Synthesizer turns text into spoken audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// GoogleTTS synthesizes via the Google Translate TTS endpoint. The library
// writes MP3 files, so each call goes through a scratch directory that is
// cleaned up per utterance and removed on Close.
type GoogleTTS struct {
	scratch string
}

// NewGoogleTTS creates a synthesizer with a private scratch directory.
func NewGoogleTTS() (*GoogleTTS, error) {
	dir, err := os.MkdirTemp("", "pathaudio-tts-")
	if err != nil {
		return nil, fmt.Errorf("create tts scratch dir: %w", err)
	}
	return &GoogleTTS{scratch: dir}, nil
}

// Close removes the scratch directory.
func (g *GoogleTTS) Close() error {
	return os.RemoveAll(g.scratch)
}

// Synthesize requests speech for text in the given language and returns
// the MP3 bytes. The underlying client has no context plumbing, so
// cancellation is only checked up front; a single utterance is short
// enough that this is acceptable for a batch tool.
func (g *GoogleTTS) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("synthesize: empty text")
	}

	speech := gtts.Speech{Folder: g.scratch, Language: voiceFor(language)}
	path, err := speech.CreateSpeechFile(text, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("synthesize %q: %w", text, err)
	}
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read synthesized audio: %w", err)
	}
	return data, nil
}

// voiceFor maps a language code onto the library's voice identifiers.
// Codes without a constant pass through unchanged; the service accepts
// plain BCP-47 codes.
func voiceFor(code string) string {
	switch code {
	case "es":
		return voices.Spanish
	case "en":
		return voices.English
	case "de":
		return voices.German
	case "fr":
		return voices.French
	default:
		return code
	}
}
