package commands

import (
	"fmt"

	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/versioning"
)

// VparseCmd implements the 'vparse' command.
type VparseCmd struct {
	Version string `arg:"" help:"Version string, e.g. 8.4.1 or 10.2-dev"`
}

func (v *VparseCmd) Run(global *Global, _ *CLI) error {
	t, err := versioning.Parse(v.Version)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid version").
			WithContext("version", v.Version).
			Build()
	}
	_, err = fmt.Fprintf(global.out(), "%d %d %d\n", t.Major(), t.Minor(), t.Patch())
	return err
}
