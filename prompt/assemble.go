// ABOUTME: Prompt assembly engine for outreach email generation
// ABOUTME: Renders the fixed Step A-I instruction document for the LLM
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harperreed/nurture/models"
)

// Markers rendered when an optional input is empty. Every step appears in
// the output regardless, so the document schema stays stable for the
// downstream generation service.
const (
	noSourcesMarker      = "(no content sources configured)"
	noTopicsMarker       = "(no research topics configured)"
	noCategoriesMarker   = "No categories apply to this contact."
	noInstructionsMarker = "(none provided)"
)

// Input carries everything Assemble needs. Categories must already be
// resolved against the contact's category ids; Assemble performs no lookup.
type Input struct {
	Contact        *models.Contact
	Categories     []models.Category
	Settings       models.SystemSettings
	ContentSources []string
	ResearchTopics []string
	// Generation labels the pass, e.g. 1 for "Serious mode". Zero means 1.
	Generation int
	Mode       string
}

// Assemble renders the instruction document. It is a pure function of its
// input: identical inputs produce byte-identical output. Categories with
// precedence order 0 are excluded from the Step D enumeration. The contact
// must carry id, name, and email; everything else degrades to a placeholder.
func Assemble(in Input) (string, error) {
	if err := models.ValidateContact(in.Contact); err != nil {
		return "", err
	}

	gen := in.Generation
	if gen <= 0 {
		gen = 1
	}
	mode := in.Mode
	if mode == "" {
		mode = "Serious mode"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "HEADER: \"Prompt to send %s to LLM for example generations. This is generation %d: %s.\"\n\n",
		in.Contact.Name, gen, mode)

	fmt.Fprintf(&b, "SYSTEM META: Here is the current system prompt: %s This will be given to the LLM as the system prompt.\n\n",
		in.Settings.SystemPrompt)

	b.WriteString("CORE EMAIL CONTENT: Core Instructions for this generation.\n")

	fmt.Fprintf(&b, "--Step A: Scrape the most recent content from these URLs %s summarize and then set this data summary as context for the prompt that follows. (Prioritize timely new information over older information.)\n\n",
		listOrMarker(in.ContentSources, noSourcesMarker))

	fmt.Fprintf(&b, "--Step B: Search for the most authoritative 3 sources on %s and then go to those sources and scrape the most recent content, summarize and then set this data summary as context for the prompt that follows. (Prioritize timely new information over older information.)\n\n",
		listOrMarker(in.ResearchTopics, noTopicsMarker))

	b.WriteString("--Step C: Analyze 'All Notes' in the contact. Use this as context to make the email you write better. Pay attention to threads and continuity and tone and style of previous interactions.\n\n")

	writeStepD(&b, in.Categories)
	writeStepE(&b, in.Contact.PersonalInstructions)

	b.WriteString("--Step F: Using all of the generated context in A,B,C,D,E write 3 subject lines that will be highly likely to resonate with this contact and get them to open the email.\n\n")
	b.WriteString("--Step G: Using all of the generated context in A,B,C,D,E write a short, powerful email to the contact with timely information and value add content from the research notes. Make this email match in tone everything you know from context and history.\n\n")
	b.WriteString("--Step H: Using all of the generated context in A,B,C,D,E write a medium length, powerful email to the contact with timely information and value add content from the research notes. Make this email match in tone everything you know from context and history.\n\n")
	b.WriteString("--Step I: Using all of the generated context in A,B,C,D,E write a short length, powerful email that is optimized to get a response and add deep value to the relationship. Make this email match in tone everything you know from context and history.")

	return b.String(), nil
}

// writeStepD enumerates active categories, highest precedence first, and
// states the conflict rule explicitly: the downstream LLM has no other
// source of truth for it.
func writeStepD(b *strings.Builder, categories []models.Category) {
	active := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.Active() {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].PrecedenceOrder != active[j].PrecedenceOrder {
			return active[i].PrecedenceOrder > active[j].PrecedenceOrder
		}
		return active[i].Name < active[j].Name
	})

	b.WriteString("--Step D: Load all of the rules (LLM) instructions for the following categories that this contact belongs to.\n")

	if len(active) == 0 {
		b.WriteString(noCategoriesMarker)
		b.WriteString("\n\n")
		return
	}

	names := make([]string, len(active))
	for i, c := range active {
		names[i] = c.Name
	}
	fmt.Fprintf(b, "Categories (highest precedence first): %s\n", strings.Join(names, ", "))
	b.WriteString("Instructions:\n")
	for _, c := range active {
		fmt.Fprintf(b, "- %s (precedence %d): %s\n", c.Name, c.PrecedenceOrder, c.InstructionText)
	}
	b.WriteString("Summarize and synthesize these into a single LLM guidance. Where rules from two categories conflict, the category with the higher precedence order wins; apply the instructions in descending precedence order.\n\n")
}

// writeStepE embeds the contact-level override. Contact instructions beat
// category instructions on conflict; that is a hard rule, stated as such.
func writeStepE(b *strings.Builder, personalInstructions string) {
	instr := strings.TrimSpace(personalInstructions)
	if instr == "" {
		instr = noInstructionsMarker
	}
	b.WriteString("--Step E: Load all of the rules (LLM) instructions for this contact which is on the contact details page:\n")
	b.WriteString(instr)
	b.WriteString("\nAdd this to the LLM guidance from Step D. Where rules from categories conflict with the contact's own LLM instructions, the contact's instructions always take priority.\n\n")
}

func listOrMarker(items []string, marker string) string {
	if len(items) == 0 {
		return marker
	}
	return strings.Join(items, ", ")
}
