// Package latex wires document grouping options for the LaTeX renderer.
package latex

import (
	"git.home.luguber.info/inful/frrdocs/internal/config"
	"git.home.luguber.info/inful/frrdocs/internal/renderers"
)

type Renderer struct{}

func init() { renderers.Register(Renderer{}) }

func (Renderer) Name() string { return "latex" }

func (Renderer) Options(ctx *renderers.Context) (map[string]any, error) {
	docs := make([]config.LaTeXDocument, 0, len(ctx.Config.LaTeX.Documents))
	for _, d := range ctx.Config.LaTeX.Documents {
		if d.Author == "" {
			d.Author = ctx.Author()
		}
		class, err := config.NormalizeDocClass(d.Class)
		if err != nil {
			return nil, err
		}
		d.Class = string(class)
		docs = append(docs, d)
	}

	opts := map[string]any{"documents": docs}
	if ctx.Config.LaTeX.Logo != "" {
		opts["logo"] = ctx.Config.LaTeX.Logo
	}
	if len(ctx.Config.LaTeX.Elements) > 0 {
		opts["elements"] = ctx.Config.LaTeX.Elements
	}
	return opts, nil
}
