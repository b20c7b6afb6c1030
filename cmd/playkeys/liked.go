package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"playkeys/internal/ratings"
)

func newLikedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "liked",
		Short: "List liked tracks",
		Long: `Print the tracks rated with the like shortcut, most recent first.
The ratings database is the one configured by "ratings_db":
  playkeys liked
  playkeys liked --config keys.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			store, err := ratings.Open(cfg.RatingsDB())
			if err != nil {
				return fmt.Errorf("база оценок: %w", err)
			}
			defer store.Close()

			tracks, err := store.Liked(cmd.Context())
			if err != nil {
				return err
			}
			for _, track := range tracks {
				fmt.Fprintln(cmd.OutOrStdout(), track)
			}
			return nil
		},
	}
}
