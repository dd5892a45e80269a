package lexer

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/logfields"
)

var (
	regMu sync.RWMutex
	reg   = map[string]chroma.Lexer{}
)

func init() {
	install(Alias, Builtin())
}

func install(alias string, l chroma.Lexer) {
	regMu.Lock()
	defer regMu.Unlock()
	reg[strings.ToLower(alias)] = l
	lexers.Register(l)
}

// Load reads a lexer definition in chroma's XML format.
func Load(path string) (*chroma.RegexLexer, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryLexer, "lexer definition not readable").
			WithContext("path", path).
			Build()
	}
	l, err := chroma.NewXMLLexer(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryLexer, "parse lexer definition").
			WithContext("path", path).
			Build()
	}
	// rules compile lazily; force it so broken patterns fail here
	if _, err := l.Tokenise(nil, "\n"); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryLexer, "compile lexer rules").
			WithContext("path", path).
			Build()
	}
	return l, nil
}

// Register installs the lexer used for alias. An empty path selects the
// built-in lexer; otherwise the definition at path replaces it.
func Register(alias, path string) (chroma.Lexer, error) {
	if alias == "" {
		alias = Alias
	}
	if path == "" {
		l := Builtin()
		install(alias, l)
		slog.Debug("Registered built-in lexer", slog.String("alias", alias))
		return l, nil
	}
	l, err := Load(path)
	if err != nil {
		return nil, err
	}
	install(alias, l)
	slog.Debug("Registered lexer from definition",
		slog.String("alias", alias),
		slog.String("name", l.Config().Name),
		logfields.LexerFile(path))
	return l, nil
}

// Get resolves a lexer by alias, then by chroma name, alias or filename.
// It returns nil when nothing matches.
func Get(name string) chroma.Lexer {
	regMu.RLock()
	l, ok := reg[strings.ToLower(name)]
	regMu.RUnlock()
	if ok {
		return l
	}
	if l := lexers.Get(name); l != nil {
		return l
	}
	return lexers.Match(name)
}
