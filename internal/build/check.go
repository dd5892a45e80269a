package build

import (
	"os"
	"path/filepath"
	"slices"

	"git.home.luguber.info/inful/frrdocs/internal/config"
)

// Finding is a referenced input that is not present on disk. Findings are
// warnings; the documentation toolchain reports them itself.
type Finding struct {
	Field string
	Path  string
}

// Check reports referenced assets that do not exist.
func Check(cfg *config.Config) []Finding {
	var findings []Finding
	file := func(field, p string) {
		if p == "" {
			return
		}
		if info, err := os.Stat(cfg.Path(p)); err != nil || info.IsDir() {
			findings = append(findings, Finding{Field: field, Path: cfg.Path(p)})
		}
	}
	dir := func(field, p string) {
		if info, err := os.Stat(cfg.Path(p)); err != nil || !info.IsDir() {
			findings = append(findings, Finding{Field: field, Path: cfg.Path(p)})
		}
	}

	file("lexer.file", cfg.Lexer.File)
	file("html.logo", cfg.HTML.Logo)
	file("html.favicon", cfg.HTML.Favicon)
	file("latex.logo", cfg.LaTeX.Logo)
	for _, p := range cfg.HTML.StaticPath {
		dir("html.static_path", p)
	}
	for _, p := range cfg.HTML.ThemePath {
		dir("html.theme_path", p)
	}
	for _, p := range cfg.General.TemplatesPath {
		dir("general.templates_path", p)
	}
	for _, asset := range slices.Concat(cfg.Assets.JS, cfg.Assets.CSS) {
		if !inStatic(cfg, asset) {
			findings = append(findings, Finding{Field: "assets", Path: asset})
		}
	}
	return findings
}

// inStatic reports whether asset exists under any static path.
func inStatic(cfg *config.Config, asset string) bool {
	for _, p := range cfg.HTML.StaticPath {
		if _, err := os.Stat(filepath.Join(cfg.Path(p), asset)); err == nil {
			return true
		}
	}
	return false
}
