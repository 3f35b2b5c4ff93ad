package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"scriptoria/pkg/completion"
	"scriptoria/pkg/config"
	"scriptoria/pkg/studio"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		out      string
		markdown bool
	)
	cmd := &cobra.Command{
		Use:   "soundpack",
		Short: "Generate the production sound pack",
		Long: `soundpack runs every built-in scene through sound design and label
extraction, then writes a plain-text report with the combined ML labels.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log.SetLevel(cfg.Level())

			inf, err := cfg.Inferencer(cmd.Context())
			if err != nil {
				return fmt.Errorf("configure inference: %w", err)
			}
			st := studio.New(completion.New(inf), cfg.ImageBaseURL)

			pack := st.SoundPack(cmd.Context(), studio.DefaultScenes, func(status string) {
				log.Info(status)
			})

			report := pack.Report()
			if markdown {
				report = pack.Markdown()
			}
			if err := os.WriteFile(out, []byte(report), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			log.Info("sound pack written", "file", out, "scenes", len(pack.Entries), "labels", len(pack.Labels()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "sound_pack_results.txt", "report output file")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "write the markdown pack instead of the plain report")
	return cmd
}
