package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfig     = "config"
	KeyStatusFile = "status_file"
	KeyLexerFile  = "lexer_file"
	KeyVariable   = "variable"
	KeyRenderer   = "renderer"
	KeyTheme      = "theme"
	KeyPath       = "path"
	KeyVersion    = "version"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Config(p string) slog.Attr       { return slog.String(KeyConfig, p) }
func StatusFile(p string) slog.Attr   { return slog.String(KeyStatusFile, p) }
func LexerFile(p string) slog.Attr    { return slog.String(KeyLexerFile, p) }
func Variable(k string) slog.Attr     { return slog.String(KeyVariable, k) }
func Renderer(n string) slog.Attr     { return slog.String(KeyRenderer, n) }
func Theme(n string) slog.Attr        { return slog.String(KeyTheme, n) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
