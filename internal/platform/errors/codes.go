// Package errors provides structured error handling for template helpers.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Padding errors
	CodePaddingSizeTooSmall      Code = "PADDING_SIZE_TOO_SMALL"
	CodePaddingInvalidChunkCount Code = "PADDING_INVALID_CHUNK_COUNT"

	// Random source errors
	CodeRandomInvalidRange  Code = "RANDOM_INVALID_RANGE"
	CodeRandomSourceFailure Code = "RANDOM_SOURCE_FAILURE"

	// Template errors
	CodeTemplateArgument Code = "TEMPLATE_ARGUMENT"

	// Command errors
	CodeCommandInvalidFormat Code = "COMMAND_INVALID_FORMAT"
)

// InvalidArgument reports whether the code describes bad caller input.
func (c Code) InvalidArgument() bool {
	switch c {
	case CodePaddingSizeTooSmall,
		CodePaddingInvalidChunkCount,
		CodeRandomInvalidRange,
		CodeTemplateArgument,
		CodeCommandInvalidFormat:
		return true
	default:
		return false
	}
}

// ExitCode maps domain codes to process exit statuses.
func (c Code) ExitCode() int {
	if c.InvalidArgument() {
		return 2
	}
	return 1
}
