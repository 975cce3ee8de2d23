package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhollis/trackledger/internal/shared"
	"github.com/mhollis/trackledger/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive report browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/trackledger-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	params, err := reportParams(cmd)
	if err != nil {
		return err
	}

	engine, err := r.loadEngine(ctx, cmd)
	if err != nil {
		return err
	}

	model := ui.NewModel(engine, params)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
