// ABOUTME: Tests for the prompt assembly engine
// ABOUTME: Validates determinism, step schema, and precedence rules
package prompt

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/nurture/models"
)

func testContact() *models.Contact {
	return &models.Contact{
		ID:               uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:             "Jordan Ellis",
		Email:            "jordan@example.com",
		CadenceFrequency: models.CadenceMonthly,
	}
}

func testInput() Input {
	return Input{
		Contact: testContact(),
		Categories: []models.Category{
			{ID: uuid.New(), Name: "Pickleball", InstructionText: "Always include a PS about playing soon.", PrecedenceOrder: 2},
			{ID: uuid.New(), Name: "Real Estate Client", InstructionText: "Include local market updates.", PrecedenceOrder: 1},
		},
		Settings:       models.SystemSettings{SystemPrompt: "Keep it warm and brief."},
		ContentSources: []string{"https://example.com/blog", "LinkedIn Profile"},
		ResearchTopics: []string{"Business Networking", "Industry Updates"},
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	in := testInput()

	first, err := Assemble(in)
	require.NoError(t, err)
	second, err := Assemble(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssemble_AllStepsPresent(t *testing.T) {
	out, err := Assemble(testInput())
	require.NoError(t, err)

	for _, step := range []string{"--Step A:", "--Step B:", "--Step C:", "--Step D:", "--Step E:", "--Step F:", "--Step G:", "--Step H:", "--Step I:"} {
		assert.Contains(t, out, step)
	}
	assert.Contains(t, out, "HEADER:")
	assert.Contains(t, out, "SYSTEM META:")
	assert.Contains(t, out, "Jordan Ellis")
	assert.Contains(t, out, "Keep it warm and brief.")
}

func TestAssemble_PrecedenceLaw(t *testing.T) {
	in := testInput()
	in.Categories = []models.Category{
		{ID: uuid.New(), Name: "Casual", InstructionText: "Keep it playful.", PrecedenceOrder: 1},
		{ID: uuid.New(), Name: "Formal", InstructionText: "Stay strictly professional.", PrecedenceOrder: 5},
	}

	out, err := Assemble(in)
	require.NoError(t, err)

	// higher precedence enumerated first, rule stated explicitly
	assert.Contains(t, out, "Categories (highest precedence first): Formal, Casual")
	assert.Contains(t, out, "Formal (precedence 5): Stay strictly professional.")
	assert.Contains(t, out, "Casual (precedence 1): Keep it playful.")
	assert.Contains(t, out, "the category with the higher precedence order wins")
	assert.Less(t, strings.Index(out, "Formal (precedence 5)"), strings.Index(out, "Casual (precedence 1)"))
}

func TestAssemble_OverrideLaw(t *testing.T) {
	in := testInput()
	in.Contact.PersonalInstructions = "Always mention our shared love of coffee"

	out, err := Assemble(in)
	require.NoError(t, err)

	assert.Contains(t, out, "Always mention our shared love of coffee")
	assert.Contains(t, out, "the contact's instructions always take priority")
}

func TestAssemble_InactiveCategoryExcluded(t *testing.T) {
	in := testInput()
	in.Categories = append(in.Categories, models.Category{
		ID: uuid.New(), Name: "Dormant", InstructionText: "Old rules.", PrecedenceOrder: 0,
	})

	out, err := Assemble(in)
	require.NoError(t, err)

	assert.NotContains(t, out, "Dormant")
	assert.NotContains(t, out, "Old rules.")
}

func TestAssemble_EmptyInputsKeepSchema(t *testing.T) {
	in := Input{
		Contact:  testContact(),
		Settings: models.SystemSettings{SystemPrompt: models.DefaultSystemPrompt},
	}

	out, err := Assemble(in)
	require.NoError(t, err)

	assert.Contains(t, out, "(no content sources configured)")
	assert.Contains(t, out, "(no research topics configured)")
	assert.Contains(t, out, "No categories apply to this contact.")
	assert.Contains(t, out, "(none provided)")
	for _, step := range []string{"--Step A:", "--Step B:", "--Step D:", "--Step E:"} {
		assert.Contains(t, out, step)
	}
}

func TestAssemble_RejectsInvalidContact(t *testing.T) {
	in := testInput()
	in.Contact.Email = ""

	_, err := Assemble(in)
	require.Error(t, err)

	var invalid *models.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "email", invalid.Field)
}

func TestAssemble_DefaultGenerationHeader(t *testing.T) {
	out, err := Assemble(testInput())
	require.NoError(t, err)
	assert.Contains(t, out, "This is generation 1: Serious mode.")

	in := testInput()
	in.Generation = 2
	in.Mode = "Casual mode"
	out, err = Assemble(in)
	require.NoError(t, err)
	assert.Contains(t, out, "This is generation 2: Casual mode.")
}
