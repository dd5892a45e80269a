// Package renderers derives the options handed to each documentation output
// renderer. Renderers live in subpackages and register themselves from init.
package renderers

import (
	"log/slog"
	"slices"
	"sync"

	"git.home.luguber.info/inful/frrdocs/internal/config"
	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/logfields"
	"git.home.luguber.info/inful/frrdocs/internal/substvars"
)

// Context is the input every renderer sees.
type Context struct {
	Config *config.Config
	Vars   *substvars.Vars
}

// Author is the project author used when a document entry names none.
func (c *Context) Author() string {
	if c.Vars != nil {
		if a := c.Vars.Value(substvars.KeyAuthors); a != "" {
			return a
		}
	}
	return c.Config.Project.Author
}

// Renderer produces the option block for one output format.
type Renderer interface {
	Name() string
	Options(ctx *Context) (map[string]any, error)
}

var (
	regMu sync.RWMutex
	reg   = map[string]Renderer{}
)

// Register registers a Renderer. Duplicate names are ignored.
func Register(r Renderer) {
	if r == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := reg[r.Name()]; exists {
		return
	}
	reg[r.Name()] = r
}

// Get retrieves a renderer by name.
func Get(name string) Renderer {
	regMu.RLock()
	defer regMu.RUnlock()
	return reg[name]
}

// Names lists registered renderers in sorted order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(reg))
	for n := range reg {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Collect runs every registered renderer.
func Collect(ctx *Context) (map[string]map[string]any, error) {
	names := Names()
	out := make(map[string]map[string]any, len(names))
	for _, name := range names {
		opts, err := Get(name).Options(ctx)
		if err != nil {
			return nil, ferrors.RenderError("renderer options").WithCause(err).
				WithContext("renderer", name).
				Build()
		}
		slog.Debug("Renderer options resolved", logfields.Renderer(name), slog.Int("keys", len(opts)))
		out[name] = opts
	}
	return out, nil
}
