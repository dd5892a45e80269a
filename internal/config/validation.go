package config

import (
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/frrdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/frrdocs/internal/foundation/normalization"
	"git.home.luguber.info/inful/frrdocs/internal/versioning"
)

// DocClass is the LaTeX document class of a grouped document.
type DocClass string

const (
	DocClassManual DocClass = "manual"
	DocClassHowto  DocClass = "howto"
)

var docClassNormalizer = normalization.NewNormalizer("latex document class", map[string]DocClass{
	"manual": DocClassManual,
	"howto":  DocClassHowto,
}, DocClassManual)

// NormalizeDocClass maps a raw class name; empty input yields manual.
func NormalizeDocClass(raw string) (DocClass, error) {
	return docClassNormalizer.Parse(raw)
}

// Validate checks the configuration and canonicalises enum fields in place.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Project.Name) == "" {
		return ferrors.ValidationError("project.name is required").Build()
	}
	if c.Project.Needs != "" {
		if _, err := versioning.Parse(c.Project.Needs); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid project.needs").Fatal().Build()
		}
	}
	if strings.TrimSpace(c.General.MasterDoc) == "" {
		return ferrors.ValidationError("general.master_doc is required").Build()
	}
	if strings.TrimSpace(c.Output.Directory) == "" {
		return ferrors.ValidationError("output.directory is required").Build()
	}

	for i := range c.LaTeX.Documents {
		d := &c.LaTeX.Documents[i]
		class, err := NormalizeDocClass(d.Class)
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid latex document").
				Fatal().
				WithContext("target", d.Target).
				Build()
		}
		d.Class = string(class)
		if d.Target == "" {
			return ferrors.ValidationError(fmt.Sprintf("latex.documents[%d].target is required", i)).Build()
		}
	}
	for i, p := range c.Man.Pages {
		if p.Name == "" {
			return ferrors.ValidationError(fmt.Sprintf("man.pages[%d].name is required", i)).Build()
		}
		if p.Section < 1 || p.Section > 9 {
			return ferrors.ValidationError(fmt.Sprintf("man page %q: section %d out of range 1-9", p.Name, p.Section)).Build()
		}
	}
	for i, d := range c.Texinfo.Documents {
		if d.Target == "" {
			return ferrors.ValidationError(fmt.Sprintf("texinfo.documents[%d].target is required", i)).Build()
		}
	}

	seen := make(map[string]struct{}, len(c.ObjectTypes))
	for _, ot := range c.ObjectTypes {
		if ot.Directive == "" {
			return ferrors.ValidationError("object_types: directive is required").Build()
		}
		if _, dup := seen[ot.Directive]; dup {
			return ferrors.ValidationError(fmt.Sprintf("object_types: duplicate directive %q", ot.Directive)).Build()
		}
		seen[ot.Directive] = struct{}{}
		if ot.IndexTemplate != "" && strings.Count(ot.IndexTemplate, "%s") != 1 {
			return ferrors.ValidationError(fmt.Sprintf("object_types %q: index_template must contain exactly one %%s", ot.Directive)).
				Build()
		}
	}

	if _, err := logLevelNormalizer.Parse(c.Logging.Level); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid logging.level").Fatal().Build()
	}
	if _, err := logFormatNormalizer.Parse(c.Logging.Format); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid logging.format").Fatal().Build()
	}
	return nil
}
