package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/logfields"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "frrdocs.yaml"

// Config represents the documentation build configuration.
type Config struct {
	Project     ProjectConfig `yaml:"project"`
	General     GeneralConfig `yaml:"general"`
	Status      StatusConfig  `yaml:"status"`
	Lexer       LexerConfig   `yaml:"lexer"`
	HTML        HTMLConfig    `yaml:"html"`
	LaTeX       LaTeXConfig   `yaml:"latex"`
	Man         ManConfig     `yaml:"man"`
	Texinfo     TexinfoConfig `yaml:"texinfo"`
	ObjectTypes []ObjectType  `yaml:"object_types"`
	Assets      AssetsConfig  `yaml:"assets"`
	Output      OutputConfig  `yaml:"output"`
	Logging     LoggingConfig `yaml:"logging"`

	// baseDir anchors relative paths; it is the directory of the loaded file.
	baseDir string
	// file is the path Load was called with.
	file string
}

// ProjectConfig holds general project information.
type ProjectConfig struct {
	Name      string `yaml:"name"`
	Copyright string `yaml:"copyright"`
	Author    string `yaml:"author"`
	// Needs is the minimum documentation renderer version the sources require.
	Needs   string `yaml:"needs,omitempty"`
	Version string `yaml:"version"`
	Release string `yaml:"release"`
}

// GeneralConfig mirrors the source-tree options consumed by the renderer.
type GeneralConfig struct {
	MasterDoc        string   `yaml:"master_doc"`
	SourceSuffix     string   `yaml:"source_suffix"`
	TemplatesPath    []string `yaml:"templates_path"`
	Extensions       []string `yaml:"extensions"`
	ExcludePatterns  []string `yaml:"exclude_patterns"`
	PygmentsStyle    string   `yaml:"pygments_style"`
	TodoIncludeTodos bool     `yaml:"todo_include_todos"`
}

// StatusConfig locates the build-system status file.
type StatusConfig struct {
	Path           string `yaml:"path"`
	VersionFromGit bool   `yaml:"version_from_git"`
	RepoPath       string `yaml:"repo_path,omitempty"`
}

// LexerConfig selects the highlighting lexer for configuration examples.
type LexerConfig struct {
	// File is an optional chroma XML lexer definition; empty uses the built-in lexer.
	File string `yaml:"file,omitempty"`
	Name string `yaml:"name"`
}

// HTMLConfig holds HTML output options.
type HTMLConfig struct {
	Theme            string         `yaml:"theme"`
	FallbackTheme    string         `yaml:"fallback_theme"`
	ThemePath        []string       `yaml:"theme_path,omitempty"`
	ThemeOptions     map[string]any `yaml:"theme_options,omitempty"`
	Logo             string         `yaml:"logo,omitempty"`
	Favicon          string         `yaml:"favicon,omitempty"`
	StaticPath       []string       `yaml:"static_path,omitempty"`
	HTMLHelpBasename string         `yaml:"htmlhelp_basename"`
}

// LaTeXDocument groups the document tree into one LaTeX file.
type LaTeXDocument struct {
	Start  string `yaml:"start"`
	Target string `yaml:"target"`
	Title  string `yaml:"title"`
	Author string `yaml:"author,omitempty"`
	Class  string `yaml:"class"`
}

// LaTeXConfig holds LaTeX output options.
type LaTeXConfig struct {
	Documents []LaTeXDocument   `yaml:"documents"`
	Logo      string            `yaml:"logo,omitempty"`
	Elements  map[string]string `yaml:"elements,omitempty"`
}

// ManPage is one manual page.
type ManPage struct {
	Start       string   `yaml:"start"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Authors     []string `yaml:"authors,omitempty"`
	Section     int      `yaml:"section"`
}

// ManConfig holds man-page output options.
type ManConfig struct {
	Pages    []ManPage `yaml:"pages"`
	ShowURLs bool      `yaml:"show_urls,omitempty"`
}

// TexinfoDocument groups the document tree into one Texinfo file.
type TexinfoDocument struct {
	Start       string `yaml:"start"`
	Target      string `yaml:"target"`
	Title       string `yaml:"title"`
	Author      string `yaml:"author,omitempty"`
	DirEntry    string `yaml:"dir_entry"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// TexinfoConfig holds Texinfo output options.
type TexinfoConfig struct {
	Documents []TexinfoDocument `yaml:"documents"`
}

// ObjectType is a cross-reference object type registered with the renderer.
type ObjectType struct {
	Directive     string `yaml:"directive"`
	Role          string `yaml:"role"`
	IndexTemplate string `yaml:"index_template,omitempty"`
}

// AssetsConfig lists extra files every HTML page links.
type AssetsConfig struct {
	JS  []string `yaml:"js,omitempty"`
	CSS []string `yaml:"css,omitempty"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"`
}

// LoggingConfig configures the default logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// BaseDir is the directory relative paths resolve against.
func (c *Config) BaseDir() string {
	if c.baseDir == "" {
		return "."
	}
	return c.baseDir
}

// ConfigFile is the path the configuration was loaded from, if any.
func (c *Config) ConfigFile() string { return c.file }

// SetBaseDir changes the anchor for relative paths.
func (c *Config) SetBaseDir(dir string) { c.baseDir = dir }

// Path resolves p relative to BaseDir. Empty stays empty.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir(), p)
}

// Load reads the configuration at configPath on top of the built-in defaults.
// A missing file yields the defaults anchored at the file's directory.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	cfg.baseDir = filepath.Dir(configPath)
	cfg.file = configPath

	if err := loadEnvFiles(cfg.baseDir); err != nil {
		slog.Debug("No environment file loaded", logfields.Error(err))
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- user-selected config path
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("Configuration file not found, using defaults", logfields.Config(configPath))
			return cfg, nil
		}
		return nil, ferrors.ConfigError("read config file").WithCause(err).
			WithContext("path", configPath).
			Build()
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, ferrors.ConfigError("unmarshal config").WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init writes the default configuration as a starting point.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ValidationError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.FileSystemError("create config directory").WithCause(err).Build()
		}
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return ferrors.FileSystemError("write config file").WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	return nil
}
