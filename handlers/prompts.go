// ABOUTME: MCP prompt handlers for outreach workflow templates
// ABOUTME: Serves the outreach-email document and reconnect suggestions
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/nurture/cadence"
	"github.com/harperreed/nurture/store"
)

type PromptHandlers struct {
	store *store.Store
}

func NewPromptHandlers(s *store.Store) *PromptHandlers {
	return &PromptHandlers{store: s}
}

// GetPrompt generates the prompt message based on the template
func (h *PromptHandlers) GetPrompt(ctx context.Context, request *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := request.Params.Name
	arguments := request.Params.Arguments
	switch name {
	case "outreach-email":
		return h.getOutreachEmailPrompt(arguments)
	case "reconnect-suggestions":
		return h.getReconnectSuggestionsPrompt(arguments)
	default:
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}
}

// getOutreachEmailPrompt runs the assembly engine for one contact and
// returns the Step A-I document as a user message.
func (h *PromptHandlers) getOutreachEmailPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	contactIDStr, ok := args["contact_id"]
	if !ok {
		return nil, fmt.Errorf("contact_id is required")
	}

	outreach := NewOutreachHandlers(h.store, nil)
	req, contact, err := outreach.buildRequest(contactIDStr, splitArg(args["content_sources"]), splitArg(args["research_topics"]))
	if err != nil {
		return nil, err
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Outreach email prompt for %s", contact.Name),
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: req.Prompt,
				},
			},
		},
	}, nil
}

// getReconnectSuggestionsPrompt lists the stalest contacts and asks the
// model to prioritize and suggest outreach approaches.
func (h *PromptHandlers) getReconnectSuggestionsPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	now := h.store.Now()
	buckets := cadence.Classify(h.store.ListContacts(), now, cadence.DefaultReconnectLimit)

	var promptText strings.Builder
	promptText.WriteString("Contacts that have gone the longest without outreach:\n\n")

	if len(buckets.ReconnectPriority) == 0 {
		promptText.WriteString("All contacts have been contacted recently.\n")
	}
	for _, c := range buckets.ReconnectPriority {
		if days, ok := cadence.DaysSince(c.LastContact, now); ok {
			promptText.WriteString(fmt.Sprintf("- %s <%s> (last contact %d days ago)\n", c.Name, c.Email, days))
		} else {
			promptText.WriteString(fmt.Sprintf("- %s <%s> (never contacted)\n", c.Name, c.Email))
		}
	}

	promptText.WriteString("\nPlease:")
	promptText.WriteString("\n1. Prioritize which contacts to reach out to first")
	promptText.WriteString("\n2. Suggest personalized outreach approaches for each")
	promptText.WriteString("\n3. Identify any patterns in follow-up gaps")

	return &mcp.GetPromptResult{
		Description: "Reconnect suggestions for stale contacts",
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: promptText.String(),
				},
			},
		},
	}, nil
}

func splitArg(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
