package html

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/frrdocs/internal/config"
	"git.home.luguber.info/inful/frrdocs/internal/renderers"
)

func installTheme(t *testing.T, root, name, manifest string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifest), []byte("[theme]\ninherit = basic\n"), 0o600))
}

func TestAvailable(t *testing.T) {
	root := t.TempDir()
	installTheme(t, root, "sphinx_rtd_theme", "theme.conf")
	installTheme(t, root, "furo", "theme.toml")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o750))

	assert.True(t, Available("alabaster", nil))
	assert.True(t, Available("sphinx_rtd_theme", []string{root}))
	assert.True(t, Available("furo", []string{"/nonexistent", root}))
	assert.False(t, Available("empty", []string{root}))
	assert.False(t, Available("sphinx_rtd_theme", nil))
	assert.False(t, Available("", []string{root}))
}

func TestResolveTheme(t *testing.T) {
	root := t.TempDir()
	installTheme(t, root, "sphinx_rtd_theme", "theme.conf")

	assert.Equal(t, "sphinx_rtd_theme", ResolveTheme("sphinx_rtd_theme", "default", []string{root}))
	assert.Equal(t, "default", ResolveTheme("sphinx_rtd_theme", "default", nil))
	assert.Equal(t, "default", ResolveTheme("missing", "", nil))
	assert.Equal(t, "classic", ResolveTheme("", "classic", nil))
}

func TestOptionsUsesThemePathRelativeToConfig(t *testing.T) {
	base := t.TempDir()
	installTheme(t, filepath.Join(base, "_themes"), "sphinx_rtd_theme", "theme.conf")

	cfg := config.Default()
	cfg.SetBaseDir(base)
	cfg.HTML.ThemePath = []string{"_themes"}
	cfg.HTML.ThemeOptions = map[string]any{"sidebarbgcolor": "#374249"}

	opts, err := Renderer{}.Options(&renderers.Context{Config: cfg})
	require.NoError(t, err)

	assert.Equal(t, "sphinx_rtd_theme", opts["theme"])
	assert.Equal(t, []string{"_themes"}, opts["theme_path"])
	assert.Equal(t, "../figures/frr-icon.svg", opts["logo"])
	assert.Equal(t, "../figures/frr-logo-icon.png", opts["favicon"])
	assert.Equal(t, []string{"_static"}, opts["static_path"])
	assert.Equal(t, "FRRdoc", opts["help_basename"])
	assert.Equal(t, []string{"overrides.js"}, opts["js_files"])
	assert.Equal(t, cfg.HTML.ThemeOptions, opts["theme_options"])
}

func TestOptionsOmitsEmptyValues(t *testing.T) {
	cfg := config.Default()
	cfg.HTML.Logo = ""
	cfg.HTML.Favicon = ""
	cfg.Assets = config.AssetsConfig{}

	opts, err := Renderer{}.Options(&renderers.Context{Config: cfg})
	require.NoError(t, err)

	for _, k := range []string{"logo", "favicon", "js_files", "css_files", "theme_options", "theme_path"} {
		assert.NotContains(t, opts, k)
	}
}
