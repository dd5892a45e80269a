// Package lexer provides syntax highlighting for the FRR configuration dialect
// and registers it with the chroma highlighting engine.
package lexer

import (
	"github.com/alecthomas/chroma/v2"
)

// Name and Alias identify the built-in FRR configuration lexer.
const (
	Name  = "FRR"
	Alias = "frr"
)

// Builtin returns a fresh instance of the built-in FRR configuration lexer.
func Builtin() *chroma.RegexLexer {
	return chroma.MustNewLexer(&chroma.Config{
		Name:      Name,
		Aliases:   []string{Alias},
		Filenames: []string{"frr.conf", "*frr*.conf", "vtysh.conf"},
		MimeTypes: []string{"text/x-frr"},
	}, frrRules)
}

// Lines are commands, optionally negated with "no", followed by arguments.
// Addresses are highlighted as numbers so prefixes stand out in examples.
func frrRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `^[ \t]*!.*?\n`, Type: chroma.CommentSingle},
			{Pattern: `"(\\\\|\\"|[^"])*"`, Type: chroma.LiteralStringDouble},
			{Pattern: `[a-fA-F0-9]*:[a-fA-F0-9]*:[a-fA-F0-9:]*(:\d+\.\d+\.\d+\.\d+)?(/\d+)?`, Type: chroma.LiteralNumber},
			{Pattern: `\d+\.\d+\.\d+\.\d+(/\d+)?`, Type: chroma.LiteralNumber},
			{Pattern: `^([ \t]*)(no[ \t]+)?([-\w]+)`, Type: chroma.ByGroups(chroma.TextWhitespace, chroma.Keyword, chroma.NameFunction)},
			{Pattern: `[ \t]+`, Type: chroma.TextWhitespace},
			{Pattern: `\n`, Type: chroma.TextWhitespace},
			{Pattern: `\d+`, Type: chroma.LiteralNumber},
			{Pattern: `\S+`, Type: chroma.Text},
		},
	}
}
