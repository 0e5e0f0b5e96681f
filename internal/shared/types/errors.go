package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("catalog record not found")
	ErrForbidden          = errors.New("catalog record is not visible to the requesting user")
	ErrInvalidDetailType  = errors.New("invalid detail type")
	ErrEmptyProjectReport = errors.New("project has nothing to estimate")

	ErrInvalidCatalogRecord = errors.New("invalid catalog record")

	ErrNoProjectsSelected = errors.New("no projects selected. Use --project or --all with --user")
	ErrUnknownDBType      = errors.New("unsupported database type")
)

// ReferenceKind names the catalog table a reference points to.
type ReferenceKind string

const (
	KindOperation  ReferenceKind = "operation"
	KindMaterial   ReferenceKind = "material"
	KindDetailType ReferenceKind = "detail_type"
	KindProject    ReferenceKind = "project"
)

// ReferenceError wraps a lookup failure with the reference that caused it.
type ReferenceError struct {
	Kind ReferenceKind
	ID   uint
	Err  error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Kind, e.ID, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// NewReferenceError is shorthand for building a ReferenceError.
func NewReferenceError(kind ReferenceKind, id uint, err error) error {
	return &ReferenceError{Kind: kind, ID: id, Err: err}
}
