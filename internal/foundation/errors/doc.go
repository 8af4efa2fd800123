// Package errors provides the classified error primitives used across doclinkcheck.
//
// Fatal conditions (an unreadable docs root, a bad config file, a report that
// cannot be written) travel as ClassifiedError values up to the CLI boundary,
// where CLIErrorAdapter turns them into an exit code. Broken links are not
// errors and never pass through this package.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, filesystem, report, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//
// Example usage:
//
//	err := errors.WrapError(statErr, errors.CategoryFileSystem, "docs root is not readable").
//		Fatal().
//		WithContext("root", root).
//		Build()
package errors
