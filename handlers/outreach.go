// ABOUTME: Outreach queue and draft MCP tool handlers
// ABOUTME: Implements get_outreach_queue, assemble_email_prompt, and generate_draft tools
package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/nurture/cadence"
	"github.com/harperreed/nurture/gen"
	"github.com/harperreed/nurture/models"
	"github.com/harperreed/nurture/prompt"
	"github.com/harperreed/nurture/store"
)

// DefaultContentSources stand in for per-contact research sources when a
// contact has no relevant websites recorded.
var DefaultContentSources = []string{"LinkedIn Profile", "Company Blog"}

// DefaultResearchTopics seed external search when a contact has no keywords.
var DefaultResearchTopics = []string{"Business Networking", "Industry Updates", "Partnership Opportunities"}

type OutreachHandlers struct {
	store     *store.Store
	generator gen.Generator
}

func NewOutreachHandlers(s *store.Store, g gen.Generator) *OutreachHandlers {
	return &OutreachHandlers{store: s, generator: g}
}

type OutreachQueueInput struct {
	ReconnectLimit int `json:"reconnect_limit,omitempty" jsonschema:"How many reconnect-priority contacts to return (default 4)"`
}

type OutreachQueueOutput struct {
	DueToday          []ContactOutput `json:"due_today"`
	DueThisWeek       []ContactOutput `json:"due_this_week"`
	Overdue           []ContactOutput `json:"overdue"`
	ReconnectPriority []ContactOutput `json:"reconnect_priority"`
}

func (h *OutreachHandlers) OutreachQueue(_ context.Context, request *mcp.CallToolRequest, input OutreachQueueInput) (*mcp.CallToolResult, OutreachQueueOutput, error) {
	contacts := h.store.ListContacts()
	buckets := cadence.Classify(contacts, h.store.Now(), input.ReconnectLimit)

	ch := &ContactHandlers{store: h.store}
	convert := func(cs []models.Contact) []ContactOutput {
		out := make([]ContactOutput, len(cs))
		for i := range cs {
			out[i] = ch.contactToOutput(&cs[i])
		}
		return out
	}

	return nil, OutreachQueueOutput{
		DueToday:          convert(buckets.DueToday),
		DueThisWeek:       convert(buckets.DueThisWeek),
		Overdue:           convert(buckets.Overdue),
		ReconnectPriority: convert(buckets.ReconnectPriority),
	}, nil
}

type AssemblePromptInput struct {
	ContactID      string   `json:"contact_id" jsonschema:"Contact ID (required)"`
	ContentSources []string `json:"content_sources,omitempty" jsonschema:"Override research source URLs (default: contact's relevant websites)"`
	ResearchTopics []string `json:"research_topics,omitempty" jsonschema:"Override research topics (default: contact's keywords)"`
}

type AssemblePromptOutput struct {
	RequestID string `json:"request_id"`
	Prompt    string `json:"prompt"`
}

func (h *OutreachHandlers) AssemblePrompt(_ context.Context, request *mcp.CallToolRequest, input AssemblePromptInput) (*mcp.CallToolResult, AssemblePromptOutput, error) {
	req, _, err := h.buildRequest(input.ContactID, input.ContentSources, input.ResearchTopics)
	if err != nil {
		return nil, AssemblePromptOutput{}, err
	}
	return nil, AssemblePromptOutput{RequestID: req.ID, Prompt: req.Prompt}, nil
}

type GenerateDraftInput struct {
	ContactID string `json:"contact_id" jsonschema:"Contact ID (required)"`
}

type GenerateDraftOutput struct {
	RequestID              string   `json:"request_id"`
	SubjectLines           []string `json:"subject_lines"`
	ShortEmail             string   `json:"short_email"`
	MediumEmail            string   `json:"medium_email"`
	ResponseOptimizedEmail string   `json:"response_optimized_email"`
}

func (h *OutreachHandlers) GenerateDraft(_ context.Context, request *mcp.CallToolRequest, input GenerateDraftInput) (*mcp.CallToolResult, GenerateDraftOutput, error) {
	req, contact, err := h.buildRequest(input.ContactID, nil, nil)
	if err != nil {
		return nil, GenerateDraftOutput{}, err
	}

	resolved, _ := h.store.ResolveCategories(contact)
	draft, err := h.generator.Generate(req, contact, resolved)
	if err != nil {
		return nil, GenerateDraftOutput{}, fmt.Errorf("draft generation failed: %w", err)
	}

	return nil, GenerateDraftOutput{
		RequestID:              draft.RequestID,
		SubjectLines:           draft.SubjectLines[:],
		ShortEmail:             draft.ShortEmail,
		MediumEmail:            draft.MediumEmail,
		ResponseOptimizedEmail: draft.ResponseOptimizedEmail,
	}, nil
}

// buildRequest assembles the prompt for a contact and wraps it in a
// generation request. Dangling category references are logged, never fatal.
func (h *OutreachHandlers) buildRequest(rawID string, sources, topics []string) (gen.Request, *models.Contact, error) {
	contactID, err := parseID(rawID)
	if err != nil {
		return gen.Request{}, nil, err
	}

	contact := h.store.GetContact(contactID)
	if contact == nil {
		return gen.Request{}, nil, fmt.Errorf("contact not found: %s", rawID)
	}

	resolved, dangling := h.store.ResolveCategories(contact)
	for _, d := range dangling {
		log.Printf("warning: %s", d)
	}

	if sources == nil {
		sources = contact.RelevantWebsites
	}
	if len(sources) == 0 {
		sources = DefaultContentSources
	}
	if topics == nil {
		topics = contact.Keywords
	}
	if len(topics) == 0 {
		topics = DefaultResearchTopics
	}

	text, err := prompt.Assemble(prompt.Input{
		Contact:        contact,
		Categories:     resolved,
		Settings:       h.store.Settings(),
		ContentSources: sources,
		ResearchTopics: topics,
	})
	if err != nil {
		return gen.Request{}, nil, fmt.Errorf("failed to assemble prompt: %w", err)
	}

	return gen.NewRequest(contact, text, h.store.Now()), contact, nil
}
