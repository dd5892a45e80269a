package build

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/frrdocs/internal/config"
	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/manifest"
	"git.home.luguber.info/inful/frrdocs/internal/substvars"
	"git.home.luguber.info/inful/frrdocs/internal/versioning"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SetBaseDir(t.TempDir())
	cfg.Status.Path = "config.status"
	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestResolveWithoutStatusFile(t *testing.T) {
	cfg := testConfig(t)

	res, err := Resolve(context.Background(), cfg)
	require.NoError(t, err)

	defaults := substvars.Defaults(substvars.ProjectMeta{Name: "FRR", Author: "FRR authors"})
	assert.True(t, res.Overlay.Missing)
	assert.Empty(t, res.Overlay.Applied)
	for _, e := range defaults.Entries() {
		if e.Key == substvars.KeyCopyrightStr {
			continue
		}
		assert.Equal(t, e.Value, res.Vars.Value(e.Key), e.Key)
	}
	assert.Equal(t, "Copyright (c) 1999-2005 FRR authors", res.Vars.Value(substvars.KeyCopyrightStr))

	derived := defaults.Clone()
	derived.Derive()
	assert.True(t, derived.Equal(res.Vars))
	assert.Equal(t, VersionSourceDefault, res.VersionSource)
	assert.Equal(t, "latest", cfg.Project.Version)
	assert.Equal(t, "latest", cfg.Project.Release)
	assert.Nil(t, res.Triple)
	assert.Equal(t, "friendly", res.Style)
	assert.Equal(t, "FRR", res.Lexer.Config().Name)

	require.Contains(t, res.Renderers, "html")
	assert.Equal(t, "default", res.Renderers["html"]["theme"])
	assert.Contains(t, res.Renderers, "latex")
	assert.Contains(t, res.Renderers, "man")
	assert.Contains(t, res.Renderers, "texinfo")
}

func TestResolveAppliesStatusFile(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, cfg.Path("config.status"), `#! /bin/bash
S["PACKAGE_VERSION"]="8.4-dev"
S["AUTHORS"]="Kunihiro Ishiguro, et al."
S["CFLAGS"]="-O2"
`)

	res, err := Resolve(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, VersionSourceStatus, res.VersionSource)
	assert.Equal(t, "8.4", cfg.Project.Version)
	assert.Equal(t, "8.4-dev", cfg.Project.Release)
	require.NotNil(t, res.Triple)
	assert.Equal(t, versioning.Triple{8, 4, 0}, *res.Triple)
	assert.Equal(t, "Copyright (c) 1999-2005 Kunihiro Ishiguro, et al.", res.Vars.Value(substvars.KeyCopyrightStr))
	assert.Equal(t, []string{"CFLAGS"}, res.Overlay.Ignored)
}

func TestResolveVersionFromGit(t *testing.T) {
	cfg := testConfig(t)
	repoDir := cfg.BaseDir()
	repo, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)
	writeFile(t, filepath.Join(repoDir, "README"), "frr\n")
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README")
	require.NoError(t, err)
	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	_, err = repo.CreateTag("frr-9.1", hash, nil)
	require.NoError(t, err)

	cfg.Status.VersionFromGit = true
	cfg.Status.RepoPath = "."

	res, err := Resolve(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, VersionSourceGit, res.VersionSource)
	assert.Equal(t, "9.1", cfg.Project.Release)
	require.NotNil(t, res.Triple)
	assert.Equal(t, 1, res.Triple.Minor())
}

func TestResolveStatusVersionBeatsGit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Status.VersionFromGit = true
	cfg.Status.RepoPath = "not-a-repo"
	writeFile(t, cfg.Path("config.status"), `PACKAGE_VERSION="10.0"`+"\n")

	res, err := Resolve(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, VersionSourceStatus, res.VersionSource)
	assert.Equal(t, "10.0", cfg.Project.Release)
}

func TestResolveMissingLexerFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Lexer.File = "extra/frrlexer.xml"

	_, err := Resolve(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryLexer))
}

func TestResolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Resolve(ctx, testConfig(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestWrite(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, cfg.Path("config.status"), `S["PACKAGE_VERSION"]="8.4.1"`+"\n")
	res, err := Resolve(context.Background(), cfg)
	require.NoError(t, err)

	out := filepath.Join(cfg.BaseDir(), "_generated")
	m, err := Write(res, out)
	require.NoError(t, err)

	prolog, err := os.ReadFile(filepath.Join(out, PrologFile))
	require.NoError(t, err)
	assert.Equal(t, res.Vars.Prolog(), string(prolog))
	assert.Contains(t, string(prolog), ".. |PACKAGE_VERSION| replace:: 8.4.1\n")

	data, err := os.ReadFile(filepath.Join(out, ManifestFile))
	require.NoError(t, err)
	loaded, err := manifest.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, m.ID, loaded.ID)
	assert.Equal(t, []int{8, 4, 1}, loaded.Project.Triple)
	assert.Equal(t, "1.0", loaded.Project.Needs)
	assert.Equal(t, "status", loaded.Inputs.VersionSource)
	assert.True(t, loaded.Inputs.StatusFound)
	assert.Len(t, loaded.Outputs.ArtifactHashes[PrologFile], 64)
	assert.True(t, res.Vars.Equal(loaded.Substitutions))
}

func TestWriteClean(t *testing.T) {
	cfg := testConfig(t)
	res, err := Resolve(context.Background(), cfg)
	require.NoError(t, err)

	out := filepath.Join(cfg.BaseDir(), "out")
	stale := filepath.Join(out, "stale.txt")
	writeFile(t, stale, "old")

	_, err = Write(res, out)
	require.NoError(t, err)
	assert.FileExists(t, stale)

	cfg.Output.Clean = true
	_, err = Write(res, out)
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(out, PrologFile))
}

func TestWriteDefaultsToConfiguredDirectory(t *testing.T) {
	cfg := testConfig(t)
	res, err := Resolve(context.Background(), cfg)
	require.NoError(t, err)

	_, err = Write(res, "")
	require.NoError(t, err)
	assert.FileExists(t, cfg.Path(filepath.Join("_generated", ManifestFile)))
}

func TestCheck(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTML.Logo = "figures/frr-icon.svg"
	cfg.HTML.Favicon = ""
	cfg.LaTeX.Logo = ""
	cfg.Assets.CSS = nil

	fields := func(fs []Finding) []string {
		var out []string
		for _, f := range fs {
			out = append(out, f.Field)
		}
		return out
	}

	got := fields(Check(cfg))
	assert.ElementsMatch(t, []string{"html.logo", "html.static_path", "general.templates_path", "assets"}, got)

	writeFile(t, cfg.Path("figures/frr-icon.svg"), "<svg/>")
	writeFile(t, cfg.Path("_static/overrides.js"), "")
	require.NoError(t, os.MkdirAll(cfg.Path("_templates"), 0o750))
	assert.Empty(t, Check(cfg))
}

func TestWatchRebuildsOnStatusChange(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "frrdocs.yaml")
	writeFile(t, cfgPath, "status:\n  path: config.status\n")

	var runs atomic.Int32
	run := func(ctx context.Context) (*config.Config, error) {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		runs.Add(1)
		return cfg, nil
	}

	w, err := NewWatcher(cfgPath, run)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, w.Watched(), filepath.Join(dir, "config.status"))

	writeFile(t, filepath.Join(dir, "config.status"), `S["PACKAGE_VERSION"]="9.0"`+"\n")
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchReturnsInitialError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "frrdocs.yaml")
	writeFile(t, cfgPath, "project:\n  name: \"\"\n")

	err := Watch(context.Background(), cfgPath, func(ctx context.Context) (*config.Config, error) {
		return config.Load(cfgPath)
	})
	require.Error(t, err)
}
