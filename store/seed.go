// ABOUTME: Placeholder data seeding for demo sessions
// ABOUTME: Stock categories and randomized contacts for exploring the tool
package store

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/harperreed/nurture/models"
)

var seedCategories = []models.Category{
	{
		Name:            "Real Estate Client",
		Description:     "Past and potential real estate clients",
		InstructionText: "Include local market updates and property value trends. End with 'Looking forward to helping you with your next real estate journey!'",
		PrecedenceOrder: 1,
	},
	{
		Name:            "Pickleball",
		Description:     "Pickleball playing partners",
		InstructionText: "Always include a PS about playing soon. Reference recent games or tournaments.",
		PrecedenceOrder: 2,
	},
	{
		Name:            "Business Referral",
		Description:     "Professional network and referral partners",
		InstructionText: "Maintain professional tone. Include recent business wins or industry news.",
		PrecedenceOrder: 3,
	},
	{
		Name:            "Local Business",
		Description:     "Local business owners and partners",
		InstructionText: "Reference local events and community news. Keep it community-focused.",
		PrecedenceOrder: 4,
	},
}

var seedNames = []string{
	"Jordan Ellis", "Priya Natarajan", "Marcus Webb", "Elena Vasquez",
	"Tom Okafor", "Dana Whitfield", "Sam Kowalski", "Ruth Ambrose",
	"Victor Hahn", "Maya Lindqvist",
}

var seedInstructions = []string{
	"",
	"Always mention our shared love of coffee",
	"Reference our last golf game",
	"Ask about their kids",
}

var seedKeywords = []string{"real estate", "local news", "pickleball", "business", "technology"}

var seedCadences = []models.CadenceFrequency{
	models.CadenceWeekly, models.CadenceMonthly,
	models.CadenceQuarterly, models.CadenceCustom,
}

// Seed fills an empty store with the stock categories and count randomized
// contacts. The rng seed makes a run reproducible for demos and tests.
func (s *Store) Seed(count int, rngSeed int64) error {
	rng := rand.New(rand.NewSource(rngSeed))
	now := s.Now()

	cats := make([]models.Category, len(seedCategories))
	for i, c := range seedCategories {
		cat := c
		if err := s.AddCategory(&cat); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
		cats[i] = cat
	}

	for i := 0; i < count; i++ {
		name := seedNames[i%len(seedNames)]
		if i >= len(seedNames) {
			name = fmt.Sprintf("%s %d", name, i/len(seedNames)+1)
		}

		// 1-3 categories per contact
		perm := rng.Perm(len(cats))
		n := 1 + rng.Intn(3)
		contact := models.Contact{
			Name:                 name,
			Email:                seedEmail(name),
			Phone:                fmt.Sprintf("555-01%02d", rng.Intn(100)),
			SpecialDates:         map[string]time.Time{"birthday": now.AddDate(-25-rng.Intn(55), 0, -rng.Intn(365))},
			PersonalInstructions: seedInstructions[rng.Intn(len(seedInstructions))],
			CadenceFrequency:     seedCadences[rng.Intn(len(seedCadences))],
			Keywords:             pickKeywords(rng),
		}
		sitePaths := []string{"blog", "news"}
		nSites := rng.Intn(3)
		for j := 0; j < nSites; j++ {
			contact.RelevantWebsites = append(contact.RelevantWebsites,
				fmt.Sprintf("https://%s.example.com/%s", strings.ToLower(strings.Fields(name)[0]), sitePaths[j]))
		}
		for _, p := range perm[:n] {
			contact.CategoryIDs = append(contact.CategoryIDs, cats[p].ID)
		}
		last := now.AddDate(0, 0, -(7 + rng.Intn(84)))
		contact.LastContact = &last

		if err := s.AddContact(&contact); err != nil {
			return fmt.Errorf("seed contact %q: %w", name, err)
		}
	}

	return nil
}

func seedEmail(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
}

func pickKeywords(rng *rand.Rand) []string {
	n := rng.Intn(4)
	if n == 0 {
		return nil
	}
	perm := rng.Perm(len(seedKeywords))
	out := make([]string, 0, n)
	for _, p := range perm[:n] {
		out = append(out, seedKeywords[p])
	}
	return out
}
