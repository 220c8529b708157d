// ABOUTME: Outreach CLI commands
// ABOUTME: Commands for the due queue, prompt display, and draft generation
package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/harperreed/nurture/cadence"
	"github.com/harperreed/nurture/gen"
	"github.com/harperreed/nurture/models"
	"github.com/harperreed/nurture/prompt"
	"github.com/harperreed/nurture/store"
)

// DueCommand shows the outreach queue buckets
func DueCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("due", flag.ExitOnError)
	reconnectLimit := fs.Int("reconnect-limit", cadence.DefaultReconnectLimit, "How many reconnect-priority contacts to show")
	_ = fs.Parse(args)

	now := s.Now()
	buckets := cadence.Classify(s.ListContacts(), now, *reconnectLimit)

	printBucket := func(title string, contacts []models.Contact) {
		fmt.Printf("\n%s (%d)\n", title, len(contacts))
		if len(contacts) == 0 {
			fmt.Println("  (none)")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, c := range contacts {
			last := "Never"
			if days, ok := cadence.DaysSince(c.LastContact, now); ok {
				last = fmt.Sprintf("%d days ago", days)
			}
			_, _ = fmt.Fprintf(w, "  %s\t%s\tdue %s\tlast contact %s\n",
				c.Name, c.Email, c.NextOutreachDate.Format("2006-01-02"), last)
		}
		_ = w.Flush()
	}

	printBucket("DUE TODAY", buckets.DueToday)
	printBucket("DUE THIS WEEK", buckets.DueThisWeek)
	printBucket("OVERDUE", buckets.Overdue)
	printBucket("RECONNECT PRIORITY", buckets.ReconnectPriority)
	return nil
}

// ShowPromptCommand assembles and prints the generation prompt for a contact
func ShowPromptCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("show-prompt", flag.ExitOnError)
	sources := fs.String("sources", "", "Comma-separated research source URLs (default: contact's websites)")
	topics := fs.String("topics", "", "Comma-separated research topics (default: contact's keywords)")
	_ = fs.Parse(args)

	contact, err := contactFromArg(s, fs)
	if err != nil {
		return err
	}

	text, err := assembleFor(s, contact, splitCSV(*sources), splitCSV(*topics))
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

// DraftCommand generates a placeholder draft for a contact
func DraftCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("draft", flag.ExitOnError)
	_ = fs.Parse(args)

	contact, err := contactFromArg(s, fs)
	if err != nil {
		return err
	}

	text, err := assembleFor(s, contact, nil, nil)
	if err != nil {
		return err
	}

	req := gen.NewRequest(contact, text, s.Now())
	resolved, _ := s.ResolveCategories(contact)
	draft, err := gen.MockGenerator{}.Generate(req, contact, resolved)
	if err != nil {
		return fmt.Errorf("draft generation failed: %w", err)
	}

	fmt.Printf("Request %s\n\nSubject lines:\n", draft.RequestID)
	for i, subject := range draft.SubjectLines {
		fmt.Printf("  %d. %s\n", i+1, subject)
	}
	fmt.Printf("\n--- Short ---\n%s\n", draft.ShortEmail)
	fmt.Printf("\n--- Medium ---\n%s\n", draft.MediumEmail)
	fmt.Printf("\n--- Response-optimized ---\n%s\n", draft.ResponseOptimizedEmail)
	return nil
}

func contactFromArg(s *store.Store, fs *flag.FlagSet) (*models.Contact, error) {
	if fs.NArg() == 0 {
		return nil, fmt.Errorf("a contact id is required")
	}
	id, err := uuid.Parse(fs.Arg(0))
	if err != nil {
		return nil, fmt.Errorf("invalid contact id: %w", err)
	}
	contact := s.GetContact(id)
	if contact == nil {
		return nil, fmt.Errorf("contact not found: %s", fs.Arg(0))
	}
	return contact, nil
}

// assembleFor resolves categories (logging any dangling references) and
// runs the assembly engine with per-contact defaults for sources/topics.
func assembleFor(s *store.Store, contact *models.Contact, sources, topics []string) (string, error) {
	resolved, dangling := s.ResolveCategories(contact)
	for _, d := range dangling {
		log.Printf("warning: %s", d)
	}

	if len(sources) == 0 {
		sources = contact.RelevantWebsites
	}
	if len(topics) == 0 {
		topics = contact.Keywords
	}

	return prompt.Assemble(prompt.Input{
		Contact:        contact,
		Categories:     resolved,
		Settings:       s.Settings(),
		ContentSources: sources,
		ResearchTopics: topics,
	})
}
