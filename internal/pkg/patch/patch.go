// Package patch applies JSON-Patch style documents to small mutable values.
//
// Only single-segment paths ("/name") are supported, which is all the update
// representations of this API need. Operations are applied in order against a Target;
// the first failing operation stops the run and is reported with its index.
package patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Op is the kind of a patch operation.
type Op string

const (
	OpAdd     Op = "add"
	OpReplace Op = "replace"
	OpRemove  Op = "remove"
)

// Operation is one entry of a patch document.
type Operation struct {
	Op    Op              `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
	From  string          `json:"from,omitempty"`
}

// Document is an ordered list of operations.
type Document []Operation

// Target is a value that can be edited field by field.
type Target interface {
	// SetField assigns the JSON value to the named field.
	SetField(field string, value json.RawMessage) error
	// RemoveField resets the named field to its empty value.
	RemoveField(field string) error
}

// Error reports which operation of a document failed.
type Error struct {
	Index int
	Op    Op
	Path  string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("operation %d (%s %s): %v", e.Index, e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrUnknownField is returned by targets for paths they do not have.
var ErrUnknownField = errors.New("unknown field")

// Decode parses a patch document.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed patch document: %w", err)
	}
	if doc == nil {
		return nil, errors.New("malformed patch document: expected an array of operations")
	}
	return doc, nil
}

// Apply runs every operation of doc against target.
func Apply(doc Document, target Target) error {
	for i, op := range doc {
		if err := applyOne(op, target); err != nil {
			return &Error{Index: i, Op: op.Op, Path: op.Path, Err: err}
		}
	}
	return nil
}

func applyOne(op Operation, target Target) error {
	field, err := fieldName(op.Path)
	if err != nil {
		return err
	}

	switch Op(strings.ToLower(string(op.Op))) {
	case OpAdd, OpReplace:
		if len(op.Value) == 0 {
			return errors.New("missing value")
		}
		return target.SetField(field, op.Value)
	case OpRemove:
		return target.RemoveField(field)
	case "":
		return errors.New("missing op")
	default:
		return fmt.Errorf("unsupported op %q", op.Op)
	}
}

// fieldName turns "/name" into "name". Nested paths and the root are rejected.
func fieldName(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", errors.New("path must start with '/'")
	}
	field := path[1:]
	if field == "" || strings.Contains(field, "/") {
		return "", errors.New("path must address a single field")
	}
	field = strings.ReplaceAll(field, "~1", "/")
	field = strings.ReplaceAll(field, "~0", "~")
	return field, nil
}
