// Package errors provides standardized error handling for Cleanify.
// It defines the error kinds the rest of the application reports on —
// configuration, rule validation, instruction parsing, and file moves —
// with consistent wrapping and inspection helpers.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience.
var (
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// ErrorKind represents the kind of error.
type ErrorKind int

// Error kinds.
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	MoveFailed
	ConflictExhausted
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Rule error kinds
	InvalidRule
	// Instruction parse error kinds
	MissingVerb
	MissingSubject
	MissingDestination
)

// ApplicationError is the base error type for all application errors.
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message.
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error.
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error.
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file operations.
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error.
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		path:             path,
	}
}

// Error returns the file error message.
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error.
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration. Config errors are
// fatal at startup; nothing is scanned when the rule file cannot be loaded.
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error.
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		param:            param,
	}
}

// Error returns the config error message.
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error.
func (e *ConfigError) Param() string {
	return e.param
}

// RuleError represents a rule that fails validation. A bad rule is skipped
// and reported; the rest of the store still loads.
type RuleError struct {
	ApplicationError
	ruleName string
}

// NewRuleError creates a new rule error.
func NewRuleError(msg string, ruleName string, err error) *RuleError {
	return &RuleError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: InvalidRule},
		ruleName:         ruleName,
	}
}

// Error returns the rule error message.
func (e *RuleError) Error() string {
	if e.ruleName != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.ruleName, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.ruleName)
	}
	return e.ApplicationError.Error()
}

// RuleName returns the rule name associated with the error.
func (e *RuleError) RuleName() string {
	return e.ruleName
}

// ParseError reports that the instruction parser could not extract a
// complete rule. The kind names the missing element so callers can prompt
// for exactly what is absent.
type ParseError struct {
	ApplicationError
	instruction string
}

// NewParseError creates a new parse error for the given missing element.
func NewParseError(msg string, instruction string, kind ErrorKind) *ParseError {
	return &ParseError{
		ApplicationError: ApplicationError{msg: msg, kind: kind},
		instruction:      instruction,
	}
}

// Error returns the parse error message.
func (e *ParseError) Error() string {
	if e.instruction != "" {
		return fmt.Sprintf("%s in %q", e.msg, e.instruction)
	}
	return e.ApplicationError.Error()
}

// Instruction returns the instruction text that failed to parse.
func (e *ParseError) Instruction() string {
	return e.instruction
}

// MissingElement names the element the parser could not find.
func (e *ParseError) MissingElement() string {
	switch e.kind {
	case MissingVerb:
		return "verb"
	case MissingSubject:
		return "subject"
	case MissingDestination:
		return "destination"
	}
	return "unknown"
}

// New creates a new error with a message.
func New(msg string) error {
	return &ApplicationError{msg: msg, kind: Unknown}
}

// Newf creates a new error with a formatted message.
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{msg: fmt.Sprintf(format, args...), kind: Unknown}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: msg, err: err, kind: Unknown}
}

// Wrapf wraps an existing error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: fmt.Sprintf(format, args...), err: err, kind: Unknown}
}

// IsInvalidConfig checks if the error is an invalid configuration error.
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsInvalidRule checks if the error is a rule validation error.
func IsInvalidRule(err error) bool {
	var ruleErr *RuleError
	return errors.As(err, &ruleErr)
}

// IsParseError checks if the error is an instruction parse error.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsConflictExhausted checks if the error is a collision-counter exhaustion.
func IsConflictExhausted(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == ConflictExhausted
	}
	return false
}

// IsFileNotFound checks if the error is a file not found error.
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}
