// Package build resolves a project configuration into the artifacts the
// documentation toolchain consumes.
//
// Resolve is pure with respect to the output directory: it registers the
// highlighting lexer, builds the substitution variables and collects renderer
// options. Write persists the result atomically; Watch repeats both whenever
// an input file changes.
package build
