// ABOUTME: Category MCP tool handlers
// ABOUTME: Implements add_category, list_categories, update_category, set_category_active, and delete_category tools
package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/nurture/models"
	"github.com/harperreed/nurture/store"
)

type CategoryHandlers struct {
	store *store.Store
}

func NewCategoryHandlers(s *store.Store) *CategoryHandlers {
	return &CategoryHandlers{store: s}
}

type AddCategoryInput struct {
	Name            string `json:"name" jsonschema:"Category name (required, unique)"`
	Description     string `json:"description,omitempty" jsonschema:"What this category is for"`
	InstructionText string `json:"instruction_text" jsonschema:"Tone/content rule applied to contacts in this category (required)"`
	PrecedenceOrder int    `json:"precedence_order,omitempty" jsonschema:"Priority when category rules conflict; higher wins, 0 = inactive"`
}

type CategoryOutput struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	InstructionText string `json:"instruction_text"`
	PrecedenceOrder int    `json:"precedence_order"`
	Active          bool   `json:"active"`
	UsageCount      int    `json:"usage_count"`
}

func (h *CategoryHandlers) AddCategory(_ context.Context, request *mcp.CallToolRequest, input AddCategoryInput) (*mcp.CallToolResult, CategoryOutput, error) {
	cat := &models.Category{
		Name:            input.Name,
		Description:     input.Description,
		InstructionText: input.InstructionText,
		PrecedenceOrder: input.PrecedenceOrder,
	}
	if err := h.store.AddCategory(cat); err != nil {
		return nil, CategoryOutput{}, fmt.Errorf("failed to create category: %w", err)
	}
	return nil, h.categoryToOutput(cat), nil
}

type ListCategoriesInput struct {
	ActiveOnly bool `json:"active_only,omitempty" jsonschema:"Only return categories with precedence order above 0"`
}

type ListCategoriesOutput struct {
	Categories []CategoryOutput `json:"categories"`
}

func (h *CategoryHandlers) ListCategories(_ context.Context, request *mcp.CallToolRequest, input ListCategoriesInput) (*mcp.CallToolResult, ListCategoriesOutput, error) {
	cats := h.store.ListCategories(input.ActiveOnly)
	out := make([]CategoryOutput, len(cats))
	for i := range cats {
		out[i] = h.categoryToOutput(&cats[i])
	}
	return nil, ListCategoriesOutput{Categories: out}, nil
}

type UpdateCategoryInput struct {
	ID              string `json:"id" jsonschema:"Category ID (required)"`
	Name            string `json:"name,omitempty" jsonschema:"Updated name"`
	Description     string `json:"description,omitempty" jsonschema:"Updated description"`
	InstructionText string `json:"instruction_text,omitempty" jsonschema:"Updated instruction text"`
	PrecedenceOrder *int   `json:"precedence_order,omitempty" jsonschema:"Updated precedence order"`
}

func (h *CategoryHandlers) UpdateCategory(_ context.Context, request *mcp.CallToolRequest, input UpdateCategoryInput) (*mcp.CallToolResult, CategoryOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, CategoryOutput{}, err
	}

	existing := h.store.GetCategory(id)
	if existing == nil {
		return nil, CategoryOutput{}, fmt.Errorf("category not found: %s", input.ID)
	}

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Description != "" {
		existing.Description = input.Description
	}
	if input.InstructionText != "" {
		existing.InstructionText = input.InstructionText
	}
	if input.PrecedenceOrder != nil {
		existing.PrecedenceOrder = *input.PrecedenceOrder
	}

	if err := h.store.UpdateCategory(id, existing); err != nil {
		return nil, CategoryOutput{}, fmt.Errorf("failed to update category: %w", err)
	}
	return nil, h.categoryToOutput(h.store.GetCategory(id)), nil
}

type SetCategoryActiveInput struct {
	ID     string `json:"id" jsonschema:"Category ID (required)"`
	Active bool   `json:"active" jsonschema:"true to activate (precedence 1 if currently 0), false to deactivate (precedence 0)"`
}

func (h *CategoryHandlers) SetCategoryActive(_ context.Context, request *mcp.CallToolRequest, input SetCategoryActiveInput) (*mcp.CallToolResult, CategoryOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, CategoryOutput{}, err
	}
	if err := h.store.SetCategoryActive(id, input.Active); err != nil {
		return nil, CategoryOutput{}, err
	}
	return nil, h.categoryToOutput(h.store.GetCategory(id)), nil
}

type DeleteCategoryInput struct {
	ID string `json:"id" jsonschema:"Category ID (required)"`
}

type DeleteCategoryOutput struct {
	Deleted bool `json:"deleted"`
}

func (h *CategoryHandlers) DeleteCategory(_ context.Context, request *mcp.CallToolRequest, input DeleteCategoryInput) (*mcp.CallToolResult, DeleteCategoryOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, DeleteCategoryOutput{}, err
	}
	if err := h.store.DeleteCategory(id); err != nil {
		var refErr *models.ReferentialIntegrityError
		if errors.As(err, &refErr) {
			return nil, DeleteCategoryOutput{}, fmt.Errorf("cannot delete: %d contact(s) still use this category", refErr.UsageCount)
		}
		return nil, DeleteCategoryOutput{}, err
	}
	return nil, DeleteCategoryOutput{Deleted: true}, nil
}

func (h *CategoryHandlers) categoryToOutput(cat *models.Category) CategoryOutput {
	return CategoryOutput{
		ID:              cat.ID.String(),
		Name:            cat.Name,
		Description:     cat.Description,
		InstructionText: cat.InstructionText,
		PrecedenceOrder: cat.PrecedenceOrder,
		Active:          cat.Active(),
		UsageCount:      h.store.UsageCount(cat.ID),
	}
}
