package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/frrdocs/internal/build"
	"git.home.luguber.info/inful/frrdocs/internal/config"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string `short:"o" help:"Output directory (defaults to output.directory in the config)"`
	Watch  bool   `short:"w" help:"Regenerate whenever the config, status or lexer file changes"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	if !g.Watch {
		_, err := g.generate(context.Background(), global, root)
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return build.Watch(ctx, root.Config, func(ctx context.Context) (*config.Config, error) {
		return g.generate(ctx, global, root)
	})
}

func (g *GenerateCmd) generate(ctx context.Context, global *Global, root *CLI) (*config.Config, error) {
	cfg, err := root.LoadConfig()
	if err != nil {
		return nil, err
	}
	res, err := build.Resolve(ctx, cfg)
	if err != nil {
		return cfg, err
	}
	m, err := build.Write(res, g.Output)
	if err != nil {
		return cfg, err
	}
	dir := g.Output
	if dir == "" {
		dir = cfg.Path(cfg.Output.Directory)
	}
	_, _ = fmt.Fprintf(global.out(), "Generated %s and %s in %s (release %s, build %s)\n",
		build.PrologFile, build.ManifestFile, dir, m.Project.Release, m.ID)
	return cfg, nil
}
