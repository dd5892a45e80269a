package build

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/logfields"
	"git.home.luguber.info/inful/frrdocs/internal/manifest"
)

const (
	// PrologFile holds the substitution directives prepended to every source.
	PrologFile = "prolog.rst"
	// ManifestFile holds the resolved configuration.
	ManifestFile = "conf.yaml"
)

// Write persists the prolog and manifest into dir. Each file is replaced
// atomically; with output.clean set the directory is emptied first.
func Write(res *Result, dir string) (*manifest.BuildManifest, error) {
	if dir == "" {
		dir = res.Config.Path(res.Config.Output.Directory)
	}
	if res.Config.Output.Clean {
		if err := cleanDir(dir); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, ferrors.FileSystemError("create output directory").WithCause(err).
			WithContext("path", dir).
			Build()
	}

	var prolog bytes.Buffer
	if err := res.Vars.WriteProlog(&prolog); err != nil {
		return nil, ferrors.InternalError("render prolog").WithCause(err).Build()
	}
	if err := writeAtomic(filepath.Join(dir, PrologFile), prolog.Bytes()); err != nil {
		return nil, err
	}

	m := res.Manifest()
	m.Outputs.ArtifactHashes = map[string]string{
		PrologFile: fmt.Sprintf("%x", sha256.Sum256(prolog.Bytes())),
	}
	data, err := m.ToYAML()
	if err != nil {
		return nil, ferrors.InternalError("render manifest").WithCause(err).Build()
	}
	if err := writeAtomic(filepath.Join(dir, ManifestFile), data); err != nil {
		return nil, err
	}

	slog.Info("Wrote documentation configuration",
		logfields.Path(dir),
		slog.String("build_id", m.ID))
	return m, nil
}

func writeAtomic(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return ferrors.FileSystemError("create pending file").WithCause(err).
			WithContext("path", path).
			Build()
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			slog.Debug("Cleanup pending file", logfields.Path(path), logfields.Error(err))
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return ferrors.FileSystemError("write pending file").WithCause(err).
			WithContext("path", path).
			Build()
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return ferrors.FileSystemError("replace file").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}

// cleanDir refuses to remove the working directory or a filesystem root.
func cleanDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ferrors.FileSystemError("resolve output directory").WithCause(err).Build()
	}
	wd, _ := os.Getwd()
	if abs == wd || abs == filepath.Dir(abs) {
		return ferrors.ValidationError("refusing to clean output directory").
			WithContext("path", abs).
			Build()
	}
	if err := os.RemoveAll(abs); err != nil {
		return ferrors.FileSystemError("clean output directory").WithCause(err).
			WithContext("path", abs).
			Build()
	}
	return nil
}
