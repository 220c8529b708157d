// ABOUTME: Tests for draft request shapes and the mock generator
// ABOUTME: Validates ULID request ids and placeholder draft structure
package gen

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/nurture/models"
)

func testContact() *models.Contact {
	return &models.Contact{
		ID:    uuid.New(),
		Name:  "Jordan Ellis",
		Email: "jordan@example.com",
	}
}

func TestNewRequest(t *testing.T) {
	contact := testContact()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	req := NewRequest(contact, "PROMPT TEXT", now)

	parsed, err := ulid.Parse(req.ID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), parsed.Time())
	assert.Equal(t, contact.ID.String(), req.ContactID)
	assert.Equal(t, "PROMPT TEXT", req.Prompt)
	assert.Equal(t, now, req.CreatedAt)
}

func TestMockGenerator(t *testing.T) {
	contact := testContact()
	contact.PersonalInstructions = "Ask about their kids"
	categories := []models.Category{
		{ID: uuid.New(), Name: "Pickleball", InstructionText: "PS about playing", PrecedenceOrder: 2},
	}

	req := NewRequest(contact, "PROMPT", time.Now())
	draft, err := MockGenerator{}.Generate(req, contact, categories)
	require.NoError(t, err)

	assert.Equal(t, req.ID, draft.RequestID)
	for _, subject := range draft.SubjectLines {
		assert.NotEmpty(t, subject)
	}
	assert.Contains(t, draft.ShortEmail, "Hi Jordan Ellis,")
	assert.Contains(t, draft.ShortEmail, "Ask about their kids")
	assert.Contains(t, draft.MediumEmail, "Pickleball")
	assert.NotEmpty(t, draft.ResponseOptimizedEmail)
}

func TestMockGenerator_NoInstructionsOrCategories(t *testing.T) {
	contact := testContact()
	req := NewRequest(contact, "PROMPT", time.Now())

	draft, err := MockGenerator{}.Generate(req, contact, nil)
	require.NoError(t, err)
	assert.Contains(t, draft.ShortEmail, "[No personal instructions specified]")
	assert.Contains(t, draft.ShortEmail, "no categories")
}

func TestMockGenerator_RejectsInvalidContact(t *testing.T) {
	contact := testContact()
	contact.Email = ""

	req := NewRequest(contact, "PROMPT", time.Now())
	_, err := MockGenerator{}.Generate(req, contact, nil)

	var invalid *models.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}
