package main

import (
	"log/slog"

	"github.com/example/pathaudio/internal/content"
	"github.com/example/pathaudio/internal/verbs"
	"github.com/spf13/cobra"
)

func newEnrichCmd() *cobra.Command {
	var pathFile string

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Apply hints, contextual sentences, and explanations to the irregular-verbs path",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := requireConfig(); err != nil {
				return err
			}

			table, err := verbs.Table()
			if err != nil {
				return err
			}

			doc, err := content.Load(pathFile)
			if err != nil {
				return err
			}

			changed := verbs.Enrich(doc, table)
			if err := content.Save(pathFile, doc); err != nil {
				return err
			}

			slog.Info("enriched learning path", "file", pathFile, "tasks_updated", changed)
			return nil
		},
	}

	cmd.Flags().StringVar(&pathFile, "learning-path",
		"public/learning-paths/englisch/unregelmaessige-verben.json",
		"Irregular-verbs learning-path file to enrich")

	return cmd
}
