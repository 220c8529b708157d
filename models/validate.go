// ABOUTME: Boundary validation for contacts and categories
// ABOUTME: Runs once at create/update time, never during rendering
package models

import (
	"strings"

	"github.com/google/uuid"
)

// ValidateContact checks the identity fields a contact must always carry.
// Everything else (phone, dates, websites, keywords, instructions) is
// optional and degrades to an empty state downstream.
func ValidateContact(c *Contact) error {
	if c == nil {
		return &InvalidInputError{Entity: "contact", Field: "contact", Reason: "is nil"}
	}
	if c.ID == uuid.Nil {
		return &InvalidInputError{Entity: "contact", Field: "id", Reason: "is required"}
	}
	if strings.TrimSpace(c.Name) == "" {
		return &InvalidInputError{Entity: "contact", Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(c.Email) == "" {
		return &InvalidInputError{Entity: "contact", Field: "email", Reason: "is required"}
	}
	if c.CadenceFrequency != "" && !ValidCadence(c.CadenceFrequency) {
		return &InvalidInputError{Entity: "contact", Field: "cadence_frequency", Reason: "is not a known frequency"}
	}
	return nil
}

// ValidateCategory checks the fields a category must carry at creation time.
// A category with no instruction text contributes nothing to prompt
// assembly, so it is rejected at the boundary.
func ValidateCategory(c *Category) error {
	if c == nil {
		return &InvalidInputError{Entity: "category", Field: "category", Reason: "is nil"}
	}
	if strings.TrimSpace(c.Name) == "" {
		return &InvalidInputError{Entity: "category", Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(c.InstructionText) == "" {
		return &InvalidInputError{Entity: "category", Field: "instruction_text", Reason: "is required"}
	}
	if c.PrecedenceOrder < 0 {
		return &InvalidInputError{Entity: "category", Field: "precedence_order", Reason: "must be >= 0"}
	}
	return nil
}
