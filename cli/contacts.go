// ABOUTME: Contact CLI commands
// ABOUTME: Commands for adding, listing, updating, and deleting contacts
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/harperreed/nurture/cadence"
	"github.com/harperreed/nurture/models"
	"github.com/harperreed/nurture/store"
)

// AddContactCommand adds a new contact
func AddContactCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-contact", flag.ExitOnError)
	name := fs.String("name", "", "Contact name (required)")
	email := fs.String("email", "", "Email address (required)")
	phone := fs.String("phone", "", "Phone number")
	categories := fs.String("categories", "", "Comma-separated category names")
	instructions := fs.String("instructions", "", "Contact-level AI instructions")
	frequency := fs.String("cadence", "monthly", "Cadence: weekly, monthly, quarterly, custom")
	websites := fs.String("websites", "", "Comma-separated research source URLs")
	keywords := fs.String("keywords", "", "Comma-separated research topics")
	_ = fs.Parse(args)

	contact := &models.Contact{
		Name:                 *name,
		Email:                *email,
		Phone:                *phone,
		PersonalInstructions: *instructions,
		CadenceFrequency:     models.CadenceFrequency(*frequency),
		RelevantWebsites:     splitCSV(*websites),
		Keywords:             splitCSV(*keywords),
	}

	for _, catName := range splitCSV(*categories) {
		cat := findCategoryByName(s, catName)
		if cat == nil {
			return fmt.Errorf("unknown category: %s", catName)
		}
		contact.CategoryIDs = append(contact.CategoryIDs, cat.ID)
	}

	if err := s.AddContact(contact); err != nil {
		return fmt.Errorf("failed to add contact: %w", err)
	}

	fmt.Printf("Added contact %s (%s)\n", contact.Name, contact.ID)
	fmt.Printf("Next outreach due: %s\n", contact.NextOutreachDate.Format("2006-01-02"))
	return nil
}

// ListContactsCommand lists contacts ordered by next outreach date
func ListContactsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-contacts", flag.ExitOnError)
	query := fs.String("query", "", "Search by name or email")
	limit := fs.Int("limit", 50, "Max results")
	_ = fs.Parse(args)

	contacts := s.ListContacts()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tCADENCE\tNEXT DUE\tLAST CONTACT\tCATEGORIES")
	_, _ = fmt.Fprintln(w, "----\t-----\t-------\t--------\t------------\t----------")

	shown := 0
	q := strings.ToLower(*query)
	for _, c := range contacts {
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}
		if shown >= *limit {
			break
		}

		last := "Never"
		if days, ok := cadence.DaysSince(c.LastContact, s.Now()); ok {
			last = fmt.Sprintf("%d days ago", days)
		}

		resolved, _ := s.ResolveCategories(&c)
		names := make([]string, len(resolved))
		for i, cat := range resolved {
			names[i] = cat.Name
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name, c.Email, c.CadenceFrequency,
			c.NextOutreachDate.Format("2006-01-02"), last, strings.Join(names, ", "))
		shown++
	}

	return w.Flush()
}

// LogOutreachCommand records an outreach to a contact
func LogOutreachCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("log-outreach", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("log-outreach requires a contact id")
	}
	id, err := uuid.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid contact id: %w", err)
	}

	if err := s.RecordOutreach(id, s.Now()); err != nil {
		return err
	}

	c := s.GetContact(id)
	fmt.Printf("Logged outreach to %s; next due %s\n", c.Name, c.NextOutreachDate.Format("2006-01-02"))
	return nil
}

// DeleteContactCommand deletes a contact
func DeleteContactCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-contact", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("delete-contact requires a contact id")
	}
	id, err := uuid.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid contact id: %w", err)
	}

	if err := s.DeleteContact(id); err != nil {
		return err
	}
	fmt.Println("Contact deleted")
	return nil
}

func findCategoryByName(s *store.Store, name string) *models.Category {
	for _, cat := range s.ListCategories(false) {
		if strings.EqualFold(cat.Name, name) {
			c := cat
			return &c
		}
	}
	return nil
}

func splitCSV(raw string) []string {
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
