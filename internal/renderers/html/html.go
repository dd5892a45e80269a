// Package html wires theme and asset options for the HTML renderer.
package html

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"git.home.luguber.info/inful/frrdocs/internal/logfields"
	"git.home.luguber.info/inful/frrdocs/internal/renderers"
)

// BuiltinThemes ship with the renderer and are always available.
var BuiltinThemes = []string{
	"agogo", "alabaster", "basic", "bizstyle", "classic", "default", "epub",
	"haiku", "nature", "pyramid", "scrolls", "sphinxdoc", "traditional",
}

// themeManifests mark a directory as an installable theme.
var themeManifests = []string{"theme.conf", "theme.toml"}

type Renderer struct{}

func init() { renderers.Register(Renderer{}) }

func (Renderer) Name() string { return "html" }

// Available reports whether name is built in or installed under one of dirs.
func Available(name string, dirs []string) bool {
	if name == "" {
		return false
	}
	if slices.Contains(BuiltinThemes, name) {
		return true
	}
	for _, d := range dirs {
		for _, m := range themeManifests {
			if info, err := os.Stat(filepath.Join(d, name, m)); err == nil && !info.IsDir() {
				return true
			}
		}
	}
	return false
}

// ResolveTheme returns the preferred theme when available, else the fallback.
func ResolveTheme(preferred, fallback string, dirs []string) string {
	if Available(preferred, dirs) {
		return preferred
	}
	if fallback == "" {
		fallback = "default"
	}
	if preferred != "" {
		slog.Info("HTML theme not available, using fallback",
			logfields.Theme(preferred),
			slog.String("fallback", fallback))
	}
	return fallback
}

func (Renderer) Options(ctx *renderers.Context) (map[string]any, error) {
	h := ctx.Config.HTML
	dirs := make([]string, 0, len(h.ThemePath))
	for _, p := range h.ThemePath {
		dirs = append(dirs, ctx.Config.Path(p))
	}

	opts := map[string]any{
		"theme":         ResolveTheme(h.Theme, h.FallbackTheme, dirs),
		"help_basename": h.HTMLHelpBasename,
	}
	if len(h.ThemePath) > 0 {
		opts["theme_path"] = h.ThemePath
	}
	if len(h.ThemeOptions) > 0 {
		opts["theme_options"] = h.ThemeOptions
	}
	if h.Logo != "" {
		opts["logo"] = h.Logo
	}
	if h.Favicon != "" {
		opts["favicon"] = h.Favicon
	}
	if len(h.StaticPath) > 0 {
		opts["static_path"] = h.StaticPath
	}
	if js := ctx.Config.Assets.JS; len(js) > 0 {
		opts["js_files"] = js
	}
	if css := ctx.Config.Assets.CSS; len(css) > 0 {
		opts["css_files"] = css
	}
	return opts, nil
}
