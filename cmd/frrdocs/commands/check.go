package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/frrdocs/internal/build"
	"git.home.luguber.info/inful/frrdocs/internal/logfields"
)

// CheckCmd implements the 'check' command. Missing files are warnings only.
type CheckCmd struct{}

func (c *CheckCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	findings := build.Check(cfg)
	out := global.out()
	for _, f := range findings {
		slog.Warn("Referenced file missing", slog.String("field", f.Field), logfields.Path(f.Path))
		_, _ = fmt.Fprintf(out, "missing %-24s %s\n", f.Field, f.Path)
	}
	if len(findings) == 0 {
		_, _ = fmt.Fprintln(out, "all referenced files present")
	}
	return nil
}
