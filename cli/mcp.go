// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server for Claude Desktop integration
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/nurture/gen"
	"github.com/harperreed/nurture/handlers"
	"github.com/harperreed/nurture/store"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(s *store.Store) error {
	log.Println("Starting nurture MCP Server...")

	contactHandlers := handlers.NewContactHandlers(s)
	categoryHandlers := handlers.NewCategoryHandlers(s)
	outreachHandlers := handlers.NewOutreachHandlers(s, gen.MockGenerator{})
	promptHandlers := handlers.NewPromptHandlers(s)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "nurture",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_contact",
		Description: "Add a new contact with cadence and category assignments",
	}, contactHandlers.AddContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_contacts",
		Description: "Search for contacts by name or email",
	}, contactHandlers.FindContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_contact",
		Description: "Update an existing contact's information",
	}, contactHandlers.UpdateContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_contact",
		Description: "Delete a contact",
	}, contactHandlers.DeleteContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_outreach",
		Description: "Record an outreach to a contact and recompute the next outreach date",
	}, contactHandlers.LogOutreach)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_cadence",
		Description: "Change a contact's outreach cadence frequency",
	}, contactHandlers.SetCadence)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_category",
		Description: "Add a new category with AI instruction text and precedence order",
	}, categoryHandlers.AddCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List categories sorted by precedence, optionally active only",
	}, categoryHandlers.ListCategories)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_category",
		Description: "Update an existing category's fields",
	}, categoryHandlers.UpdateCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_category_active",
		Description: "Activate or deactivate a category (precedence order 0 = inactive)",
	}, categoryHandlers.SetCategoryActive)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_category",
		Description: "Delete a category (rejected while any contact still references it)",
	}, categoryHandlers.DeleteCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_outreach_queue",
		Description: "Classify contacts into due-today, due-this-week, overdue, and reconnect-priority buckets",
	}, outreachHandlers.OutreachQueue)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "assemble_email_prompt",
		Description: "Assemble the structured email-generation prompt for a contact",
	}, outreachHandlers.AssemblePrompt)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_draft",
		Description: "Generate a placeholder email draft (3 subject lines, 3 variants) for a contact",
	}, outreachHandlers.GenerateDraft)

	server.AddPrompt(&mcp.Prompt{
		Name:        "outreach-email",
		Description: "Full email-generation instruction document for one contact",
		Arguments: []*mcp.PromptArgument{
			{Name: "contact_id", Description: "Contact ID", Required: true},
			{Name: "content_sources", Description: "Comma-separated research source URLs"},
			{Name: "research_topics", Description: "Comma-separated research topics"},
		},
	}, promptHandlers.GetPrompt)

	server.AddPrompt(&mcp.Prompt{
		Name:        "reconnect-suggestions",
		Description: "Prioritized list of contacts that have gone longest without outreach",
	}, promptHandlers.GetPrompt)

	// Run server on stdio transport
	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
