// Package errors provides the classified error primitives used across frrdocs.
//
// A ClassifiedError carries a category, a severity and structured context so the CLI
// can pick an exit code and a log level without string matching.
//
// Example usage:
//
//	err := errors.WrapError(ioErr, errors.CategoryStatusFile, "read status file").
//		WithContext("path", statusPath).
//		Build()
package errors
