package substvars

import (
	"fmt"
	"io"
	"strings"
)

// Directive renders one reStructuredText substitution definition.
func Directive(key, value string) string {
	return fmt.Sprintf(".. |%s| replace:: %s\n", key, value)
}

// Prolog renders every entry as a substitution definition, in mapping order.
func (v *Vars) Prolog() string {
	var b strings.Builder
	for _, k := range v.keys {
		b.WriteString(Directive(k, v.values[k]))
	}
	return b.String()
}

// WriteProlog writes Prolog to w.
func (v *Vars) WriteProlog(w io.Writer) error {
	_, err := io.WriteString(w, v.Prolog())
	return err
}
