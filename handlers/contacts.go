// ABOUTME: Contact MCP tool handlers
// ABOUTME: Implements add_contact, find_contacts, update_contact, log_outreach, and set_cadence tools
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/nurture/cadence"
	"github.com/harperreed/nurture/models"
	"github.com/harperreed/nurture/store"
)

type ContactHandlers struct {
	store *store.Store
}

func NewContactHandlers(s *store.Store) *ContactHandlers {
	return &ContactHandlers{store: s}
}

type AddContactInput struct {
	Name                 string   `json:"name" jsonschema:"Contact name (required)"`
	Email                string   `json:"email" jsonschema:"Contact email address (required)"`
	Phone                string   `json:"phone,omitempty" jsonschema:"Contact phone number"`
	CategoryNames        []string `json:"category_names,omitempty" jsonschema:"Category names to assign (must already exist)"`
	PersonalInstructions string   `json:"personal_instructions,omitempty" jsonschema:"Contact-level AI instructions, override category instructions"`
	CadenceFrequency     string   `json:"cadence_frequency,omitempty" jsonschema:"Outreach cadence: weekly, monthly, quarterly, or custom (default monthly)"`
	RelevantWebsites     []string `json:"relevant_websites,omitempty" jsonschema:"URLs used as research sources for email drafts"`
	Keywords             []string `json:"keywords,omitempty" jsonschema:"Topic keywords used as research seeds"`
}

type ContactOutput struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone,omitempty"`
	Categories           []string `json:"categories,omitempty"`
	PersonalInstructions string   `json:"personal_instructions,omitempty"`
	CadenceFrequency     string   `json:"cadence_frequency"`
	NextOutreachDate     string   `json:"next_outreach_date"`
	LastContact          *string  `json:"last_contact,omitempty"`
	DaysSinceContact     *int     `json:"days_since_contact,omitempty"`
}

func (h *ContactHandlers) AddContact(_ context.Context, request *mcp.CallToolRequest, input AddContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact := &models.Contact{
		Name:                 input.Name,
		Email:                input.Email,
		Phone:                input.Phone,
		PersonalInstructions: input.PersonalInstructions,
		CadenceFrequency:     models.CadenceFrequency(input.CadenceFrequency),
		RelevantWebsites:     input.RelevantWebsites,
		Keywords:             input.Keywords,
	}

	for _, name := range input.CategoryNames {
		cat := h.findCategoryByName(name)
		if cat == nil {
			return nil, ContactOutput{}, fmt.Errorf("unknown category: %s", name)
		}
		contact.CategoryIDs = append(contact.CategoryIDs, cat.ID)
	}

	if err := h.store.AddContact(contact); err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to create contact: %w", err)
	}

	return nil, h.contactToOutput(contact), nil
}

type FindContactsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search query (matches name and email)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
}

func (h *ContactHandlers) FindContacts(_ context.Context, request *mcp.CallToolRequest, input FindContactsInput) (*mcp.CallToolResult, FindContactsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	query := strings.ToLower(input.Query)
	var result []ContactOutput
	for _, c := range h.store.ListContacts() {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Email), query) {
			continue
		}
		contact := c
		result = append(result, h.contactToOutput(&contact))
		if len(result) >= limit {
			break
		}
	}

	return nil, FindContactsOutput{Contacts: result}, nil
}

type UpdateContactInput struct {
	ID                   string   `json:"id" jsonschema:"Contact ID (required)"`
	Name                 string   `json:"name,omitempty" jsonschema:"Updated contact name"`
	Email                string   `json:"email,omitempty" jsonschema:"Updated email address"`
	Phone                string   `json:"phone,omitempty" jsonschema:"Updated phone number"`
	PersonalInstructions string   `json:"personal_instructions,omitempty" jsonschema:"Updated contact-level AI instructions"`
	CategoryNames        []string `json:"category_names,omitempty" jsonschema:"Replacement category assignment (names must already exist)"`
}

func (h *ContactHandlers) UpdateContact(_ context.Context, request *mcp.CallToolRequest, input UpdateContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	contactID, err := parseID(input.ID)
	if err != nil {
		return nil, ContactOutput{}, err
	}

	existing := h.store.GetContact(contactID)
	if existing == nil {
		return nil, ContactOutput{}, fmt.Errorf("contact not found: %s", input.ID)
	}

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Email != "" {
		existing.Email = input.Email
	}
	if input.Phone != "" {
		existing.Phone = input.Phone
	}
	if input.PersonalInstructions != "" {
		existing.PersonalInstructions = input.PersonalInstructions
	}
	if input.CategoryNames != nil {
		existing.CategoryIDs = nil
		for _, name := range input.CategoryNames {
			cat := h.findCategoryByName(name)
			if cat == nil {
				return nil, ContactOutput{}, fmt.Errorf("unknown category: %s", name)
			}
			existing.CategoryIDs = append(existing.CategoryIDs, cat.ID)
		}
	}

	if err := h.store.UpdateContact(contactID, existing); err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to update contact: %w", err)
	}

	updated := h.store.GetContact(contactID)
	return nil, h.contactToOutput(updated), nil
}

type DeleteContactInput struct {
	ID string `json:"id" jsonschema:"Contact ID (required)"`
}

type DeleteContactOutput struct {
	Deleted bool `json:"deleted"`
}

func (h *ContactHandlers) DeleteContact(_ context.Context, request *mcp.CallToolRequest, input DeleteContactInput) (*mcp.CallToolResult, DeleteContactOutput, error) {
	contactID, err := parseID(input.ID)
	if err != nil {
		return nil, DeleteContactOutput{}, err
	}
	if err := h.store.DeleteContact(contactID); err != nil {
		return nil, DeleteContactOutput{}, err
	}
	return nil, DeleteContactOutput{Deleted: true}, nil
}

type LogOutreachInput struct {
	ID        string `json:"id" jsonschema:"Contact ID (required)"`
	Timestamp string `json:"timestamp,omitempty" jsonschema:"When the outreach happened, RFC 3339 (default now)"`
}

func (h *ContactHandlers) LogOutreach(_ context.Context, request *mcp.CallToolRequest, input LogOutreachInput) (*mcp.CallToolResult, ContactOutput, error) {
	contactID, err := parseID(input.ID)
	if err != nil {
		return nil, ContactOutput{}, err
	}

	at := h.store.Now()
	if input.Timestamp != "" {
		at, err = time.Parse(time.RFC3339, input.Timestamp)
		if err != nil {
			return nil, ContactOutput{}, fmt.Errorf("invalid timestamp: %w", err)
		}
	}

	if err := h.store.RecordOutreach(contactID, at); err != nil {
		return nil, ContactOutput{}, err
	}

	contact := h.store.GetContact(contactID)
	return nil, h.contactToOutput(contact), nil
}

type SetCadenceInput struct {
	ID               string `json:"id" jsonschema:"Contact ID (required)"`
	CadenceFrequency string `json:"cadence_frequency" jsonschema:"New cadence: weekly, monthly, quarterly, or custom"`
}

func (h *ContactHandlers) SetCadence(_ context.Context, request *mcp.CallToolRequest, input SetCadenceInput) (*mcp.CallToolResult, ContactOutput, error) {
	contactID, err := parseID(input.ID)
	if err != nil {
		return nil, ContactOutput{}, err
	}
	if err := h.store.SetCadence(contactID, models.CadenceFrequency(input.CadenceFrequency)); err != nil {
		return nil, ContactOutput{}, err
	}
	contact := h.store.GetContact(contactID)
	return nil, h.contactToOutput(contact), nil
}

func (h *ContactHandlers) findCategoryByName(name string) *models.Category {
	for _, cat := range h.store.ListCategories(false) {
		if strings.EqualFold(cat.Name, name) {
			c := cat
			return &c
		}
	}
	return nil
}

// contactToOutput lists every assigned category by name, including
// inactive ones. Dangling ids are dropped silently.
func (h *ContactHandlers) contactToOutput(contact *models.Contact) ContactOutput {
	out := ContactOutput{
		ID:                   contact.ID.String(),
		Name:                 contact.Name,
		Email:                contact.Email,
		Phone:                contact.Phone,
		PersonalInstructions: contact.PersonalInstructions,
		CadenceFrequency:     string(contact.CadenceFrequency),
		NextOutreachDate:     contact.NextOutreachDate.Format(time.RFC3339),
	}

	resolved, _ := h.store.ResolveCategories(contact)
	for _, cat := range resolved {
		out.Categories = append(out.Categories, cat.Name)
	}

	if contact.LastContact != nil {
		last := contact.LastContact.Format(time.RFC3339)
		out.LastContact = &last
		if days, ok := cadence.DaysSince(contact.LastContact, h.store.Now()); ok {
			out.DaysSinceContact = &days
		}
	}

	return out
}

func parseID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, fmt.Errorf("id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id: %w", err)
	}
	return id, nil
}
