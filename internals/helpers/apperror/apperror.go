// file: internals/helpers/apperror/apperror.go
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

/* ===============================
   Not found
=================================*/

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %v not found.", e.Entity, e.ID)
}

func NotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

/* ===============================
   Validation (field → message)
=================================*/

type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, ", ") + ")"
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// FieldErrors collects one message per field. The first message for a field wins.
type FieldErrors map[string]string

func (f FieldErrors) Add(field, message string) {
	if _, exists := f[field]; exists {
		return
	}
	f[field] = message
}

func (f FieldErrors) Merge(other map[string]string) {
	for k, v := range other {
		f.Add(k, v)
	}
}

func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// Err returns nil when nothing was collected.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	out := make(map[string]string, len(f))
	for k, v := range f {
		out[k] = v
	}
	return &ValidationError{Message: "validation failed", Fields: out}
}

/* ===============================
   Upstream / external
=================================*/

type ExternalError struct {
	Source string
	Err    error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Source, e.Err)
}

func (e *ExternalError) Unwrap() error { return e.Err }

func External(source string, err error) error {
	return &ExternalError{Source: source, Err: err}
}
