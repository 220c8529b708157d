// ABOUTME: Category CLI commands
// ABOUTME: Commands for managing categories and their precedence
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/harperreed/nurture/models"
	"github.com/harperreed/nurture/store"
)

// AddCategoryCommand adds a new category
func AddCategoryCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-category", flag.ExitOnError)
	name := fs.String("name", "", "Category name (required)")
	description := fs.String("description", "", "Category description")
	instructions := fs.String("instructions", "", "AI instruction text (required)")
	precedence := fs.Int("precedence", 1, "Precedence order; higher wins conflicts, 0 = inactive")
	_ = fs.Parse(args)

	cat := &models.Category{
		Name:            *name,
		Description:     *description,
		InstructionText: *instructions,
		PrecedenceOrder: *precedence,
	}
	if err := s.AddCategory(cat); err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}

	fmt.Printf("Added category %s (%s)\n", cat.Name, cat.ID)
	return nil
}

// ListCategoriesCommand lists categories by precedence
func ListCategoriesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-categories", flag.ExitOnError)
	activeOnly := fs.Bool("active-only", false, "Hide inactive categories (precedence 0)")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPRECEDENCE\tUSED BY\tINSTRUCTIONS")
	_, _ = fmt.Fprintln(w, "----\t----------\t-------\t------------")

	for _, cat := range s.ListCategories(*activeOnly) {
		label := fmt.Sprintf("%d", cat.PrecedenceOrder)
		if !cat.Active() {
			label = "inactive"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			cat.Name, label, s.UsageCount(cat.ID), truncate(cat.InstructionText, 60))
	}

	return w.Flush()
}

// DeleteCategoryCommand deletes a category if nothing references it
func DeleteCategoryCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-category", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("delete-category requires a category id")
	}
	id, err := uuid.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid category id: %w", err)
	}

	if err := s.DeleteCategory(id); err != nil {
		var refErr *models.ReferentialIntegrityError
		if errors.As(err, &refErr) {
			return fmt.Errorf("cannot delete: %d contact(s) still use this category", refErr.UsageCount)
		}
		return err
	}
	fmt.Println("Category deleted")
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
