// Package validation evaluates ordered, per-route field rules against a
// request and accumulates every failure instead of stopping at the first.
package validation

import (
	"fmt"
	"strings"
)

// Location identifies the part of the request a field is read from.
type Location string

const (
	LocationParams Location = "params"
	LocationBody   Location = "body"
)

const defaultMessage = "Invalid value"

// FieldError is a single failed rule.
type FieldError struct {
	Type     string   `json:"type"`
	Value    any      `json:"value,omitempty"`
	Msg      string   `json:"msg"`
	Path     string   `json:"path"`
	Location Location `json:"location"`
}

// Errors is the ordered list of failures collected for one request.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Path, fe.Msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Request holds the raw inputs a chain validates.
type Request struct {
	Params map[string]string
	Body   map[string]any
}

func (r Request) lookup(loc Location, name string) (any, bool) {
	switch loc {
	case LocationParams:
		v, ok := r.Params[name]
		return v, ok
	case LocationBody:
		v, ok := r.Body[name]
		return v, ok
	}
	return nil, false
}

// Check reports whether a field value satisfies a rule. present is false
// when the field is missing from the request.
type Check func(value any, present bool) bool

type step struct {
	check   Check
	message string
}

// Field is an ordered list of checks bound to one request field.
type Field struct {
	location Location
	name     string
	steps    []step
}

// Param starts a rule list for a path parameter.
func Param(name string) *Field {
	return &Field{location: LocationParams, name: name}
}

// BodyField starts a rule list for a JSON body field.
func BodyField(name string) *Field {
	return &Field{location: LocationBody, name: name}
}

// Custom appends an arbitrary predicate on the field value.
func (f *Field) Custom(fn func(value any) bool) *Field {
	return f.add(func(value any, _ bool) bool { return fn(value) })
}

// NotEmpty requires the stringified value to be non-empty.
func (f *Field) NotEmpty() *Field {
	return f.add(func(value any, _ bool) bool { return isNotEmpty(value) })
}

// IsInt requires an optionally signed integer.
func (f *Field) IsInt() *Field {
	return f.add(func(value any, _ bool) bool { return isInt(value) })
}

// IsBoolean requires true, false, "true", "false", "1" or "0".
func (f *Field) IsBoolean() *Field {
	return f.add(func(value any, _ bool) bool { return isBoolean(value) })
}

// WithMessage sets the failure message of the most recently added check.
func (f *Field) WithMessage(msg string) *Field {
	if n := len(f.steps); n > 0 {
		f.steps[n-1].message = msg
	}
	return f
}

func (f *Field) add(check Check) *Field {
	f.steps = append(f.steps, step{check: check, message: defaultMessage})
	return f
}

// Run evaluates every check of the field; a failing check does not prevent
// the following ones from running.
func (f *Field) Run(req Request) Errors {
	value, present := req.lookup(f.location, f.name)
	var errs Errors
	for _, s := range f.steps {
		if s.check(value, present) {
			continue
		}
		errs = append(errs, FieldError{
			Type:     "field",
			Value:    value,
			Msg:      s.message,
			Path:     f.name,
			Location: f.location,
		})
	}
	return errs
}

// Chain is the ordered rule set declared for a route.
type Chain []*Field

// Run evaluates all fields in declaration order.
func (c Chain) Run(req Request) Errors {
	var errs Errors
	for _, f := range c {
		errs = append(errs, f.Run(req)...)
	}
	return errs
}
