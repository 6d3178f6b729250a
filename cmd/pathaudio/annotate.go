package main

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"sort"

	"github.com/example/pathaudio/internal/content"
	"github.com/example/pathaudio/internal/lang"
	"github.com/example/pathaudio/internal/manifest"
	"github.com/example/pathaudio/internal/slug"
	"github.com/spf13/cobra"
)

func newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Set frontAudio/backAudio on flashcards for the target language",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			return annotateFlashcards(cfg.Paths.InputDir, cfg.Paths.AssetRoot, cfg.TTS.Language)
		},
	}

	return cmd
}

// annotateFlashcards walks every learning-path file and stamps audio paths
// onto flashcards whose language tags match. Paths come from the manifest
// when the text is known there, otherwise straight from the slug, so the
// command works before and after asset generation and is a no-op on
// already-annotated files.
func annotateFlashcards(inputDir, assetRoot, language string) error {
	files, err := filepath.Glob(filepath.Join(inputDir, "*.json"))
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no learning-path files in %s", inputDir)
	}
	sort.Strings(files)

	dir := lang.DirName(language)
	rules := slug.RulesFor(language)

	m, err := manifest.Load(filepath.Join(assetRoot, dir, manifest.Filename))
	if err != nil {
		slog.Warn("manifest unreadable, falling back to slug paths", "error", err)
		m = manifest.Manifest{}
	}

	resolve := func(text string) (string, bool) {
		if rel, ok := m[text]; ok {
			return rel, true
		}
		s := slug.Make(text, rules)
		if s == "" {
			return "", false
		}
		return path.Join(dir, s+".mp3"), true
	}

	total := 0
	for _, file := range files {
		doc, err := content.Load(file)
		if err != nil {
			slog.Error("skipping unreadable learning path", "file", file, "error", err)
			continue
		}

		updated := 0
		for _, task := range doc.Tasks {
			if content.ApplyFlashcardAudio(task, language, resolve) {
				updated++
			}
		}
		if updated > 0 {
			if err := content.Save(file, doc); err != nil {
				slog.Error("write failed, leaving file unmodified on disk", "file", file, "error", err)
				continue
			}
		}

		slog.Info("annotated learning path", "file", file, "flashcards_updated", updated)
		total += updated
	}

	slog.Info("annotate complete", "files", len(files), "flashcards_updated", total)
	return nil
}
