// Package errors provides structured, positioned error values for the
// template parser and the CLI: what went wrong, where in the input, and a
// hint on how to fix it.
package errors

import (
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryParse  Category = "parse"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
)

// Location is a position in some input: a template string, a config file.
type Location struct {
	Source string // description of the input, e.g. a file name or "template"
	Line   int
	Column int
}

// String returns the location as source:line:column.
func (l Location) String() string {
	if l.Source == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.Source, l.Line, l.Column)
}

// Error is a categorized error with an optional location and fix hint.
type Error struct {
	Category   Category
	Message    string
	Location   *Location
	Suggestion string
	Wrapped    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Location != nil {
		return fmt.Sprintf("%s: %s: %s", e.Category, e.Location, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds an input location to the error.
func (e *Error) WithLocation(source string, line, column int) *Error {
	e.Location = &Location{Source: source, Line: line, Column: column}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// Newf creates a new Error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Format returns a multi-line rendering for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("ERROR")
	b.WriteString(" [")
	b.WriteString(string(e.Category))
	b.WriteString("]: ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Location != nil {
		b.WriteString("\n  ")
		b.WriteString(e.Location.String())
		b.WriteString("\n")
	}
	if e.Suggestion != "" {
		b.WriteString("\n  Hint: ")
		b.WriteString(e.Suggestion)
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		b.WriteString("\n  Caused by: ")
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n")
	}

	return b.String()
}
