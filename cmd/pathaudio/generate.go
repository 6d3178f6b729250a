package main

import (
	"os"
	"time"

	"github.com/example/pathaudio/internal/slug"
	"github.com/example/pathaudio/internal/tts"
	"github.com/example/pathaudio/internal/workflow"
	"github.com/spf13/cobra"
)

// newSynthesizer builds the production synthesizer. Package variable so
// command tests can substitute a fake without touching the network.
var newSynthesizer = func() (tts.Synthesizer, func() error, error) {
	g, err := tts.NewGoogleTTS()
	if err != nil {
		return nil, nil, err
	}
	return g, g.Close, nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate missing audio assets for learning-path texts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
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
				InputDir:      cfg.Paths.InputDir,
				AssetRoot:     cfg.Paths.AssetRoot,
				Language:      cfg.TTS.Language,
				Rules:         slug.RulesFor(cfg.TTS.Language),
				Synth:         synth,
				MaxSlugLength: cfg.Workflow.MaxSlugLength,
			})
			if err != nil {
				return err
			}

			sum, err := wf.Run(cmd.Context())
			renderSummary(os.Stdout, sum)
			return err
		},
	}

	return cmd
}
