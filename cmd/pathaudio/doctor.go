package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/example/pathaudio/internal/doctor"
	"github.com/example/pathaudio/internal/lang"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	var languages []string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the content and asset tree for problems",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if len(languages) == 0 {
				languages = []string{lang.DirName(cfg.TTS.Language)}
			}

			result := doctor.Run(doctor.Config{
				InputDir:  cfg.Paths.InputDir,
				AssetRoot: cfg.Paths.AssetRoot,
				Languages: languages,
			}, os.Stdout)

			if result.Failed() {
				for _, f := range result.Failures() {
					fmt.Fprintf(os.Stderr, "FAIL: %s\n", f)
				}

				return errors.New("doctor checks failed")
			}

			_, _ = fmt.Fprintln(os.Stdout, "doctor checks passed")

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&languages, "languages", nil,
		"Asset subdirectories to verify (default: the target language's directory)")

	return cmd
}
