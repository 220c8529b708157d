// ABOUTME: Error kinds shared across the engines and store
// ABOUTME: Defines invalid-input and referential-integrity errors
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// InvalidInputError indicates a record failed boundary validation: a contact
// missing identity fields, or a category missing its name or instructions.
// It aborts the operation that raised it.
type InvalidInputError struct {
	Entity string // "contact" or "category"
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Entity, e.Field, e.Reason)
}

// ReferentialIntegrityError indicates an attempt to delete a category still
// referenced by one or more contacts.
type ReferentialIntegrityError struct {
	CategoryID uuid.UUID
	UsageCount int
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("category %s is referenced by %d contact(s)", e.CategoryID, e.UsageCount)
}

// DanglingReference records a contact pointing at a category id absent from
// the category set. It is a warning, never an error: resolution drops the
// id and keeps going.
type DanglingReference struct {
	ContactID  uuid.UUID
	CategoryID uuid.UUID
}

func (d DanglingReference) String() string {
	return fmt.Sprintf("contact %s references missing category %s", d.ContactID, d.CategoryID)
}
