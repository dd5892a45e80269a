package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/frrdocs/internal/config"
)

// LogLevelEnv overrides the log level when --verbose is not given.
const LogLevelEnv = "FRRDOCS_LOG_LEVEL"

// Global carries state shared by all subcommands.
type Global struct {
	// Out receives command output; nil means stdout.
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"frrdocs.yaml" env:"FRRDOCS_CONFIG"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate  GenerateCmd  `cmd:"" help:"Write the substitution prolog and resolved configuration"`
	Vars      VarsCmd      `cmd:"" help:"Show substitution variables after applying the status file"`
	Vparse    VparseCmd    `cmd:"" help:"Parse a version string into three integer components"`
	Highlight HighlightCmd `cmd:"" help:"Highlight a file with the registered lexer"`
	Init      InitCmd      `cmd:"" help:"Initialize a new configuration file"`
	Check     CheckCmd     `cmd:"" help:"Report referenced files that are missing"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if raw, ok := os.LookupEnv(LogLevelEnv); ok {
		level = config.NormalizeLogLevel(raw).SlogLevel()
	}
	if c.Verbose {
		level = slog.LevelDebug
	}
	setupLogger(level, config.LogFormatText)
	return nil
}

// LoadConfig loads the configuration named by --config and applies its
// logging section unless the level was set on the command line or environment.
func (c *CLI) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	level := config.NormalizeLogLevel(cfg.Logging.Level).SlogLevel()
	if raw, ok := os.LookupEnv(LogLevelEnv); ok {
		level = config.NormalizeLogLevel(raw).SlogLevel()
	}
	if c.Verbose {
		level = slog.LevelDebug
	}
	setupLogger(level, config.NormalizeLogFormat(cfg.Logging.Format))
	return cfg, nil
}

func setupLogger(level slog.Level, format config.LogFormat) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
