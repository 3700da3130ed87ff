package cli

import (
	"errors"

	"github.com/yaklabco/markdoc/pkg/fsutil"
	"github.com/yaklabco/markdoc/pkg/markdql"
)

// ErrCheckFailed signals that `markdoc fmt --check` found one or more
// files that are not in their normalized form.
var ErrCheckFailed = errors.New("one or more files are not normalized")

// Exit codes for markdoc.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitCheckFailed indicates `fmt --check` found a file that is not
	// normalized.
	ExitCheckFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitQueryError indicates a MarkdQL expression failed to parse.
	ExitQueryError = 66

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCode maps any error returned by a command's RunE to a process exit
// code. It covers the cases specific to this CLI (check-mode failures,
// MarkdQL errors, file I/O errors) and falls back to ExitInternalError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrCheckFailed):
		return ExitCheckFailed
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fsutil.ErrPermissionDenied), errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	}

	var unrecognized markdql.UnrecognizedQueryError
	var invalidRegex markdql.InvalidRegexError
	if errors.As(err, &unrecognized) || errors.As(err, &invalidRegex) {
		return ExitQueryError
	}

	return ExitInternalError
}
