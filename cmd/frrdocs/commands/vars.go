package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"git.home.luguber.info/inful/frrdocs/internal/build"
	"git.home.luguber.info/inful/frrdocs/internal/substvars"
)

// VarsCmd implements the 'vars' command.
type VarsCmd struct {
	Plain  bool   `help:"Print KEY=VALUE lines instead of a table"`
	Prolog bool   `help:"Print the reStructuredText substitution prolog"`
	Status string `help:"Status file to read instead of status.path" type:"path"`
}

func (v *VarsCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	if v.Status != "" {
		abs, err := filepath.Abs(v.Status)
		if err != nil {
			return err
		}
		cfg.Status.Path = abs
	}
	res, err := build.Resolve(context.Background(), cfg)
	if err != nil {
		return err
	}

	out := global.out()
	switch {
	case v.Prolog:
		return res.Vars.WriteProlog(out)
	case v.Plain:
		for _, e := range res.Vars.Entries() {
			if _, err := fmt.Fprintf(out, "%s=%s\n", e.Key, e.Value); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(out, renderVarsTable(res.Vars, res.Overlay))
		return err
	}
}

func renderVarsTable(vars *substvars.Vars, overlay substvars.OverlayResult) string {
	header := lipgloss.NewStyle().Bold(true)
	applied := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("KEY", "VALUE", "SOURCE")
	for _, e := range vars.Entries() {
		source := "default"
		switch {
		case overlay.WasApplied(e.Key):
			source = "status"
		case e.Key == substvars.KeyCopyrightStr:
			source = "derived"
		}
		t.Row(e.Key, e.Value, source)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		style := lipgloss.NewStyle().Padding(0, 1)
		if row == table.HeaderRow {
			return header.Padding(0, 1)
		}
		if col == 2 && row >= 0 && row < vars.Len() && overlay.WasApplied(vars.Keys()[row]) {
			return applied.Padding(0, 1)
		}
		return style
	})
	return t.String()
}
