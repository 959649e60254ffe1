package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput reports input with no scorable prose after stripping.
var ErrEmptyInput = errors.New("no scorable text in input")

// UnknownTemplateError reports a completeness template name that does not
// exist.
type UnknownTemplateError struct {
	Name      string
	Available []string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template: %s. Use: %s", e.Name, strings.Join(e.Available, ", "))
}

// UnknownCheckError reports one or more analysis check names that do not
// exist.
type UnknownCheckError struct {
	Names     []string
	Available []string
}

func (e *UnknownCheckError) Error() string {
	return fmt.Sprintf("unknown check(s): %s. Available: %s",
		strings.Join(e.Names, ", "), strings.Join(e.Available, ", "))
}

// InputTooLargeError reports input exceeding the configured size limit.
type InputTooLargeError struct {
	Size int
	Max  int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input too large: %d bytes exceeds limit of %d bytes", e.Size, e.Max)
}

// ConflictingConfigError reports a rule with mutually exclusive options set.
type ConflictingConfigError struct {
	Detail string
}

func (e *ConflictingConfigError) Error() string {
	return fmt.Sprintf("conflicting rule config: %s", e.Detail)
}
