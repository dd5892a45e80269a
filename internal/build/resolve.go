package build

import (
	"context"
	"log/slog"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/frrdocs/internal/config"
	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/lexer"
	"git.home.luguber.info/inful/frrdocs/internal/logfields"
	"git.home.luguber.info/inful/frrdocs/internal/manifest"
	"git.home.luguber.info/inful/frrdocs/internal/renderers"
	"git.home.luguber.info/inful/frrdocs/internal/substvars"
	"git.home.luguber.info/inful/frrdocs/internal/version"
	"git.home.luguber.info/inful/frrdocs/internal/versioning"

	// Built-in renderers register themselves.
	_ "git.home.luguber.info/inful/frrdocs/internal/renderers/html"
	_ "git.home.luguber.info/inful/frrdocs/internal/renderers/latex"
	_ "git.home.luguber.info/inful/frrdocs/internal/renderers/man"
	_ "git.home.luguber.info/inful/frrdocs/internal/renderers/texinfo"
)

// VersionSource records which input supplied PACKAGE_VERSION.
type VersionSource string

const (
	VersionSourceDefault VersionSource = "default"
	VersionSourceStatus  VersionSource = "status"
	VersionSourceGit     VersionSource = "git"
)

// Result is a fully resolved build configuration.
type Result struct {
	Config        *config.Config
	Vars          *substvars.Vars
	Overlay       substvars.OverlayResult
	VersionSource VersionSource
	// Triple is nil when the release is not numeric.
	Triple    *versioning.Triple
	Lexer     chroma.Lexer
	Style     string
	Renderers map[string]map[string]any
	Duration  time.Duration
}

// Resolve registers the lexer, builds the substitution variables and
// collects every renderer's options. cfg.Project.Version and Release are
// replaced by the derived values.
func Resolve(ctx context.Context, cfg *config.Config) (*Result, error) {
	start := time.Now()
	res := &Result{Config: cfg, VersionSource: VersionSourceDefault}

	lexerFile := cfg.Path(cfg.Lexer.File)
	l, err := lexer.Register(cfg.Lexer.Name, lexerFile)
	if err != nil {
		return nil, err
	}
	res.Lexer = l
	res.Style, _ = lexer.ResolveStyle(cfg.General.PygmentsStyle)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vars := substvars.Defaults(substvars.ProjectMeta{Name: cfg.Project.Name, Author: cfg.Project.Author})
	statusPath := cfg.Path(cfg.Status.Path)
	overlay, err := vars.OverlayFile(statusPath)
	if err != nil {
		return nil, err
	}
	res.Overlay = overlay

	switch {
	case overlay.WasApplied(substvars.KeyPackageVersion):
		res.VersionSource = VersionSourceStatus
	case cfg.Status.VersionFromGit:
		if err := resolveGitVersion(vars, cfg.Path(cfg.Status.RepoPath)); err != nil {
			return nil, err
		}
		res.VersionSource = VersionSourceGit
	}
	vars.Derive()
	res.Vars = vars

	cfg.Project.Version = vars.Version()
	cfg.Project.Release = vars.Release()
	if t, err := versioning.Parse(cfg.Project.Release); err == nil {
		res.Triple = &t
	} else {
		slog.Debug("Release is not a numeric version", logfields.Version(cfg.Project.Release), logfields.Error(err))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts, err := renderers.Collect(&renderers.Context{Config: cfg, Vars: vars.Clone()})
	if err != nil {
		return nil, err
	}
	res.Renderers = opts
	res.Duration = time.Since(start)

	slog.Info("Resolved documentation configuration",
		logfields.Version(cfg.Project.Release),
		slog.String("version_source", string(res.VersionSource)),
		slog.Int("substitutions", vars.Len()),
		logfields.DurationMS(float64(res.Duration.Microseconds()) / 1000))
	return res, nil
}

func resolveGitVersion(vars *substvars.Vars, repoPath string) error {
	v, err := versioning.FromGit(repoPath)
	if err != nil {
		return err
	}
	if err := vars.Set(substvars.KeyPackageVersion, v); err != nil {
		return ferrors.InternalError("apply git version").WithCause(err).Build()
	}
	slog.Debug("Version taken from git tags", logfields.Version(v), logfields.Path(repoPath))
	return nil
}

// Manifest describes the result as the conf.yaml document.
func (r *Result) Manifest() *manifest.BuildManifest {
	cfg := r.Config
	m := &manifest.BuildManifest{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Generator: version.String(),
		Inputs: manifest.Inputs{
			ConfigPath:    cfg.ConfigFile(),
			StatusFile:    r.Overlay.Path,
			StatusFound:   !r.Overlay.Missing,
			StatusApplied: r.Overlay.Applied,
			VersionSource: string(r.VersionSource),
		},
		Project: manifest.Project{
			Name:      cfg.Project.Name,
			Copyright: cfg.Project.Copyright,
			Author:    cfg.Project.Author,
			Needs:     cfg.Project.Needs,
			Version:   cfg.Project.Version,
			Release:   cfg.Project.Release,
		},
		General:       cfg.General,
		ObjectTypes:   cfg.ObjectTypes,
		Renderers:     r.Renderers,
		Substitutions: r.Vars.Clone(),
	}
	if r.Triple != nil {
		m.Project.Triple = r.Triple[:]
	}
	if r.Lexer != nil {
		m.Lexer = manifest.Lexer{
			Alias: cfg.Lexer.Name,
			Name:  r.Lexer.Config().Name,
			File:  cfg.Lexer.File,
			Style: r.Style,
		}
	}
	return m
}
