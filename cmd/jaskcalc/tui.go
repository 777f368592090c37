package main

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/tui"
)

func runTUI(ctx context.Context, cfg config.Config) error {
	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "jaskcalc")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	services := tui.Services{}
	if cfg.History.Enabled {
		st, err := openStore(cfg)
		if err != nil {
			log.Printf("warn: tape disabled: %v", err)
			cfg.History.Enabled = false
			services.Err = fmt.Errorf("open tape: %w", err)
		} else {
			defer st.Close()
			services.Tape = st.tape
			services.Maintenance = st.maintenance
		}
	}

	p := tea.NewProgram(tui.New(ctx, cfg, services), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
