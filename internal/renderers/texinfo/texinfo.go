// Package texinfo wires document grouping options for the Texinfo renderer.
package texinfo

import (
	"git.home.luguber.info/inful/frrdocs/internal/config"
	"git.home.luguber.info/inful/frrdocs/internal/renderers"
)

type Renderer struct{}

func init() { renderers.Register(Renderer{}) }

func (Renderer) Name() string { return "texinfo" }

func (Renderer) Options(ctx *renderers.Context) (map[string]any, error) {
	docs := make([]config.TexinfoDocument, 0, len(ctx.Config.Texinfo.Documents))
	for _, d := range ctx.Config.Texinfo.Documents {
		if d.Author == "" {
			d.Author = ctx.Author()
		}
		if d.DirEntry == "" {
			d.DirEntry = ctx.Config.Project.Name
		}
		docs = append(docs, d)
	}
	return map[string]any{"documents": docs}, nil
}
