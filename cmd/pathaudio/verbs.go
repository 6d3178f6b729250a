package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/example/pathaudio/internal/content"
	"github.com/example/pathaudio/internal/slug"
	"github.com/example/pathaudio/internal/tts"
	"github.com/example/pathaudio/internal/verbs"
	"github.com/example/pathaudio/internal/workflow"
	"github.com/spf13/cobra"
)

// verbAssetDir is where irregular-verb audio lives under the asset root.
const verbAssetDir = "english/verbs"

func newVerbsCmd() *cobra.Command {
	var pathFile string

	cmd := &cobra.Command{
		Use:   "verbs",
		Short: "Generate irregular-verb audio and stamp answer-audio fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			table, err := verbs.Table()
			if err != nil {
				return err
			}

			synth, closeSynth, err := newSynthesizer()
			if err != nil {
				return err
			}
			defer func() { _ = closeSynth() }()

			synth = tts.WithTimeout(synth, time.Duration(cfg.TTS.RequestTimeout)*time.Second)

			wf, err := workflow.New(workflow.Config{
				AssetRoot:     cfg.Paths.AssetRoot,
				Language:      "en",
				Rules:         slug.EnglishRules(),
				Synth:         synth,
				MaxSlugLength: cfg.Workflow.MaxSlugLength,
			})
			if err != nil {
				return err
			}

			sum, err := wf.GenerateSet(cmd.Context(), verbs.AllForms(table), verbAssetDir)
			renderSummary(os.Stdout, sum)
			if err != nil {
				return err
			}

			if pathFile == "" {
				slog.Info("no learning-path file given, skipping field updates")
				return nil
			}

			doc, err := content.Load(pathFile)
			if err != nil {
				return err
			}
			changed := verbs.AnnotateAudio(doc, table, verbAssetDir)
			if changed > 0 {
				if err := content.Save(pathFile, doc); err != nil {
					return err
				}
			}
			slog.Info("stamped answer audio", "file", pathFile, "tasks_updated", changed)
			return nil
		},
	}

	cmd.Flags().StringVar(&pathFile, "learning-path",
		"public/learning-paths/englisch/unregelmaessige-verben.json",
		"Irregular-verbs learning-path file to stamp (empty to skip)")

	return cmd
}
