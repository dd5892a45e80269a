// Package man wires manual page options for the man-page renderer.
package man

import (
	"fmt"
	"slices"

	"git.home.luguber.info/inful/frrdocs/internal/config"
	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/renderers"
)

type Renderer struct{}

func init() { renderers.Register(Renderer{}) }

func (Renderer) Name() string { return "man" }

func (Renderer) Options(ctx *renderers.Context) (map[string]any, error) {
	pages := make([]config.ManPage, 0, len(ctx.Config.Man.Pages))
	for _, p := range ctx.Config.Man.Pages {
		if p.Section < 1 || p.Section > 9 {
			return nil, ferrors.RenderError(fmt.Sprintf("man page %q: section %d out of range", p.Name, p.Section)).
				WithContext("page", p.Name).
				Build()
		}
		if len(p.Authors) == 0 {
			p.Authors = []string{ctx.Author()}
		} else {
			p.Authors = slices.Clone(p.Authors)
		}
		pages = append(pages, p)
	}
	return map[string]any{
		"pages":     pages,
		"show_urls": ctx.Config.Man.ShowURLs,
	}, nil
}
