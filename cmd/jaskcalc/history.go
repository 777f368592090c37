package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/fixture"
	"github.com/jask/jaskcalc/internal/tui"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit int
		seed  int
		wipe  bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or wipe the tape of past calculations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("history is disabled (history.enabled = false)")
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if wipe {
				n, err := st.maintenance.Reset(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "removed %d entries\n", n)
				return nil
			}
			if seed > 0 {
				r := rand.New(rand.NewSource(time.Now().UnixNano()))
				evs, err := fixture.Seed(cmd.Context(), st.tape, r, seed)
				if err != nil {
					return fmt.Errorf("seed tape: %w", err)
				}
				fmt.Fprintf(out, "seeded %d entries\n", len(evs))
				return nil
			}

			if !cmd.Flags().Changed("limit") {
				limit = cfg.History.Limit
			}
			entries, err := st.tape.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("load tape: %w", err)
			}
			_, err = fmt.Fprintln(out, tui.TapeTable(entries))
			return err
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&wipe, "clear", false, "wipe the tape")
	cmd.Flags().IntVar(&seed, "seed", 0, "record n random calculations, for demos")
	cmd.MarkFlagsMutuallyExclusive("clear", "seed")
	return cmd
}
