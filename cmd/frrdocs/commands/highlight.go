package commands

import (
	"context"
	"os"

	"git.home.luguber.info/inful/frrdocs/internal/build"
	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/lexer"
)

// HighlightCmd implements the 'highlight' command.
type HighlightCmd struct {
	File      string `arg:"" help:"File to highlight" type:"existingfile"`
	Lexer     string `help:"Lexer name (defaults to lexer.name in the config)"`
	Formatter string `short:"f" help:"chroma formatter (terminal256, html, noop, ...)" default:"terminal256"`
	Style     string `short:"s" help:"chroma style (defaults to general.pygments_style in the config)"`
}

func (h *HighlightCmd) Run(global *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	res, err := build.Resolve(context.Background(), cfg)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(h.File)
	if err != nil {
		return ferrors.FileSystemError("read source").WithCause(err).
			WithContext("path", h.File).
			Build()
	}
	name := h.Lexer
	if name == "" {
		name = cfg.Lexer.Name
	}
	style := h.Style
	if style == "" {
		style = res.Style
	}
	return lexer.Highlight(global.out(), string(src), name, h.Formatter, style)
}
