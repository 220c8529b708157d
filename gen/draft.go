// ABOUTME: Draft request/result shapes for the external generation service
// ABOUTME: Includes a mock generator for offline demo use
package gen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/harperreed/nurture/models"
)

// Request is what the presentation layer hands to a generation service:
// the assembled prompt plus bookkeeping. The core never sends it anywhere.
type Request struct {
	ID        string    `json:"id"`
	ContactID string    `json:"contact_id"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// Draft is the structured result a generation service is expected to
// return: three subject lines and three email variants.
type Draft struct {
	RequestID              string    `json:"request_id"`
	SubjectLines           [3]string `json:"subject_lines"`
	ShortEmail             string    `json:"short_email"`
	MediumEmail            string    `json:"medium_email"`
	ResponseOptimizedEmail string    `json:"response_optimized_email"`
}

// NewRequest wraps an assembled prompt with a fresh ULID request id.
func NewRequest(contact *models.Contact, prompt string, now time.Time) Request {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	return Request{
		ID:        ulid.MustNew(ulid.Timestamp(now), entropy).String(),
		ContactID: contact.ID.String(),
		Prompt:    prompt,
		CreatedAt: now,
	}
}

// Generator produces a draft from a request. The real implementation lives
// outside this repo; MockGenerator stands in for demos and tests.
type Generator interface {
	Generate(req Request, contact *models.Contact, categories []models.Category) (*Draft, error)
}

// MockGenerator fabricates a placeholder draft with bracketed markers
// where generated content would go.
type MockGenerator struct{}

func (MockGenerator) Generate(req Request, contact *models.Contact, categories []models.Category) (*Draft, error) {
	if err := models.ValidateContact(contact); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	categoryStr := strings.Join(names, ", ")
	if categoryStr == "" {
		categoryStr = "no"
	}

	instructions := contact.PersonalInstructions
	if instructions == "" {
		instructions = "[No personal instructions specified]"
	}

	body := func(length string) string {
		return fmt.Sprintf(
			"Hi %s,\n\nI hope this email finds you well! [%s generated content based on %s categories]\n\n%s\n\nBest regards,\n[Your name]\n\nPS: [Category-specific postscript]",
			contact.Name, length, categoryStr, instructions)
	}

	return &Draft{
		RequestID: req.ID,
		SubjectLines: [3]string{
			fmt.Sprintf("Checking in, %s", firstName(contact.Name)),
			fmt.Sprintf("Something for your %s interests", categoryStr),
			fmt.Sprintf("Quick note for %s", firstName(contact.Name)),
		},
		ShortEmail:             body("Short"),
		MediumEmail:            body("Medium"),
		ResponseOptimizedEmail: body("Response-optimized"),
	}, nil
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return name
}
