package substvars

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/logfields"
)

var (
	// autoconf config.status: S["KEY"]="VALUE"
	configStatusLine = regexp.MustCompile(`^S\["([^"]+)"\]="(.*)"$`)
	// plain shell assignment: KEY="VALUE"
	shellLine = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)="(.*)"$`)
)

// OverlayResult describes what an overlay did.
type OverlayResult struct {
	Path    string
	Missing bool
	Applied []string
	Ignored []string
}

// WasApplied reports whether the overlay replaced key.
func (r OverlayResult) WasApplied(key string) bool { return slices.Contains(r.Applied, key) }

// ParseStatusLine extracts an assignment from one status file line.
func ParseStatusLine(line string) (key, value string, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	if m := configStatusLine.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	if m := shellLine.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	return "", "", false
}

// Overlay replaces the values of known keys with assignments read from r.
// Unknown keys and non-assignment lines are skipped. Later assignments win.
func (v *Vars) Overlay(r io.Reader) (OverlayResult, error) {
	var res OverlayResult
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			v.applyLine(line, &res)
		}
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, ferrors.StatusFileError("read status file").WithCause(err).Build()
		}
	}
}

func (v *Vars) applyLine(line string, res *OverlayResult) {
	key, value, ok := ParseStatusLine(line)
	if !ok {
		return
	}
	if !v.Has(key) {
		res.Ignored = append(res.Ignored, key)
		return
	}
	v.values[key] = value
	res.Applied = append(res.Applied, key)
}

// OverlayFile overlays the status file at path. A missing file leaves the
// mapping untouched and is not an error.
func (v *Vars) OverlayFile(path string) (OverlayResult, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from project configuration
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Status file not found, using defaults", logfields.StatusFile(path))
			return OverlayResult{Path: path, Missing: true}, nil
		}
		return OverlayResult{Path: path}, ferrors.StatusFileError("open status file").WithCause(err).
			WithContext("path", path).
			Build()
	}
	defer func() { _ = f.Close() }()

	res, err := v.Overlay(f)
	res.Path = path
	if err != nil {
		return res, err
	}
	slog.Debug("Status file applied",
		logfields.StatusFile(path),
		slog.Int("applied", len(res.Applied)),
		slog.Int("ignored", len(res.Ignored)))
	return res, nil
}
