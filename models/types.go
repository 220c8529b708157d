// ABOUTME: Data models for contact-nurturing entities
// ABOUTME: Defines Contact, Category, SystemSettings, and cadence types
package models

import (
	"time"

	"github.com/google/uuid"
)

// CadenceFrequency is how often a contact should be proactively re-contacted.
type CadenceFrequency string

const (
	CadenceWeekly    CadenceFrequency = "weekly"
	CadenceMonthly   CadenceFrequency = "monthly"
	CadenceQuarterly CadenceFrequency = "quarterly"
	// CadenceCustom has no stored interval; it falls back to monthly
	// everywhere cadence arithmetic runs.
	CadenceCustom CadenceFrequency = "custom"
)

// ValidCadence reports whether f is one of the known cadence frequencies.
func ValidCadence(f CadenceFrequency) bool {
	switch f {
	case CadenceWeekly, CadenceMonthly, CadenceQuarterly, CadenceCustom:
		return true
	}
	return false
}

// Category groups contacts that share a tone/content policy for outreach.
// PrecedenceOrder 0 marks an inactive category: still assignable as a label,
// excluded from instruction resolution.
type Category struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	InstructionText string    `json:"instruction_text"`
	PrecedenceOrder int       `json:"precedence_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Active reports whether the category participates in instruction resolution.
func (c *Category) Active() bool {
	return c.PrecedenceOrder > 0
}

type Contact struct {
	ID                   uuid.UUID            `json:"id"`
	Name                 string               `json:"name"`
	Email                string               `json:"email"`
	Phone                string               `json:"phone,omitempty"`
	SpecialDates         map[string]time.Time `json:"special_dates,omitempty"`
	CategoryIDs          []uuid.UUID          `json:"category_ids,omitempty"`
	PersonalInstructions string               `json:"personal_instructions,omitempty"`
	CadenceFrequency     CadenceFrequency     `json:"cadence_frequency"`
	NextOutreachDate     time.Time            `json:"next_outreach_date"`
	RelevantWebsites     []string             `json:"relevant_websites,omitempty"`
	Keywords             []string             `json:"keywords,omitempty"`
	LastContact          *time.Time           `json:"last_contact,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

// HasCategory reports whether the contact is assigned the given category id.
func (c *Contact) HasCategory(id uuid.UUID) bool {
	for _, cid := range c.CategoryIDs {
		if cid == id {
			return true
		}
	}
	return false
}

// DefaultSystemPrompt is the out-of-the-box global AI instruction block.
const DefaultSystemPrompt = "Maintain a friendly yet professional tone; keep the email concise."

// SystemSettings is the single process-wide settings record. Edits replace
// it wholesale.
type SystemSettings struct {
	SystemPrompt string `json:"system_prompt"`
	UserEmail    string `json:"user_email,omitempty"`
	BCCEmail     string `json:"bcc_email,omitempty"`
}

// DefaultSettings returns settings with the non-empty default system prompt.
func DefaultSettings() SystemSettings {
	return SystemSettings{SystemPrompt: DefaultSystemPrompt}
}
