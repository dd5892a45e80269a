package config

// Default returns the configuration used for the FRR user manual.
func Default() *Config {
	const (
		masterDoc = "index"
		author    = "FRR authors"
		title     = "FRR User Manual"
	)
	return &Config{
		Project: ProjectConfig{
			Name:      "FRR",
			Copyright: "2017, FRR",
			Author:    author,
			Needs:     "1.0",
			Version:   "?.?",
			Release:   "?.?-?",
		},
		General: GeneralConfig{
			MasterDoc:     masterDoc,
			SourceSuffix:  ".rst",
			TemplatesPath: []string{"_templates"},
			Extensions:    []string{"sphinx.ext.todo"},
			ExcludePatterns: []string{
				"_build",
				"rpki.rst",
				"routeserver.rst",
				"ospf_fundamentals.rst",
				"bgp-linkstate.rst",
				"flowspec.rst",
				"snmptrap.rst",
				"wecmp_linkbw.rst",
			},
			PygmentsStyle:    "sphinx",
			TodoIncludeTodos: true,
		},
		Status: StatusConfig{
			Path:     "../../config.status",
			RepoPath: "../..",
		},
		Lexer: LexerConfig{
			Name: "frr",
		},
		HTML: HTMLConfig{
			Theme:            "sphinx_rtd_theme",
			FallbackTheme:    "default",
			Logo:             "../figures/frr-icon.svg",
			Favicon:          "../figures/frr-logo-icon.png",
			StaticPath:       []string{"_static"},
			HTMLHelpBasename: "FRRdoc",
		},
		LaTeX: LaTeXConfig{
			Documents: []LaTeXDocument{
				{Start: masterDoc, Target: "FRR.tex", Title: title, Author: "FRR", Class: string(DocClassManual)},
			},
			Logo: "../figures/frr-logo-medium.png",
		},
		Man: ManConfig{
			Pages: []ManPage{
				{Start: masterDoc, Name: "frr", Description: title, Authors: []string{author}, Section: 1},
			},
		},
		Texinfo: TexinfoConfig{
			Documents: []TexinfoDocument{{
				Start:       masterDoc,
				Target:      "frr",
				Title:       title,
				Author:      author,
				DirEntry:    "FRR",
				Description: "One line description of project.",
				Category:    "Miscellaneous",
			}},
		},
		ObjectTypes: []ObjectType{
			{Directive: "clicmd", Role: "clicmd", IndexTemplate: "pair: %s; configuration command"},
		},
		Assets: AssetsConfig{
			JS:  []string{"overrides.js"},
			CSS: []string{"overrides.css"},
		},
		Output: OutputConfig{
			Directory: "_generated",
		},
		Logging: LoggingConfig{
			Level:  string(LogLevelInfo),
			Format: string(LogFormatText),
		},
	}
}
