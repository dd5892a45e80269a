package lexer

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
)

// Highlighting style names that have no chroma style of the same name.
var styleAliases = map[string]string{
	"sphinx":  "friendly",
	"default": "friendly",
}

// ResolveStyle maps a highlighting style name onto a registered chroma style.
// Unknown names resolve to chroma's fallback style.
func ResolveStyle(name string) (string, *chroma.Style) {
	if alias, ok := styleAliases[name]; ok {
		name = alias
	}
	if s, ok := styles.Registry[name]; ok {
		return name, s
	}
	return styles.Fallback.Name, styles.Fallback
}

// Tokens tokenises source with the named lexer.
func Tokens(lexerName, source string) ([]chroma.Token, error) {
	l := Get(lexerName)
	if l == nil {
		return nil, ferrors.LexerError("unknown lexer").WithContext("lexer", lexerName).Build()
	}
	it, err := l.Tokenise(nil, source)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryLexer, "tokenise").Build()
	}
	return it.Tokens(), nil
}

// Highlight formats source with the named lexer, formatter and style.
// Unknown lexers and formatters fall back to plain text output.
func Highlight(w io.Writer, source, lexerName, formatterName, styleName string) error {
	l := Get(lexerName)
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	f := formatters.Get(formatterName)
	if f == nil {
		f = formatters.Fallback
	}
	_, style := ResolveStyle(styleName)

	it, err := l.Tokenise(nil, source)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryLexer, "tokenise").Build()
	}
	if err := f.Format(w, style, it); err != nil {
		return ferrors.RenderError("format highlighted source").WithCause(err).Build()
	}
	return nil
}
