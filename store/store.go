// ABOUTME: In-memory repository for contacts, categories, and settings
// ABOUTME: Owns mutation, referential integrity, and category resolution
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/nurture/cadence"
	"github.com/harperreed/nurture/models"
)

// Store holds the live contact/category collections and the settings
// record. The engines never touch it directly; callers take snapshots and
// pass them in as plain values.
type Store struct {
	mu         sync.RWMutex
	contacts   map[uuid.UUID]*models.Contact
	categories map[uuid.UUID]*models.Category
	settings   models.SystemSettings

	// Now is the clock used for derived-date computation. Overridable in
	// tests.
	Now func() time.Time
}

func New() *Store {
	return &Store{
		contacts:   make(map[uuid.UUID]*models.Contact),
		categories: make(map[uuid.UUID]*models.Category),
		settings:   models.DefaultSettings(),
		Now:        time.Now,
	}
}

// --- Categories ---

// AddCategory validates and inserts a category, assigning an id when none
// is set. Names must be unique (case-insensitive) within the active set.
func (s *Store) AddCategory(cat *models.Category) error {
	if cat != nil && cat.ID == uuid.Nil {
		cat.ID = uuid.New()
	}
	if err := models.ValidateCategory(cat); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, cat.Name) {
			return &models.InvalidInputError{Entity: "category", Field: "name", Reason: "is already in use"}
		}
	}

	now := s.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	stored := *cat
	s.categories[cat.ID] = &stored
	return nil
}

// GetCategory returns a copy of the category, or nil if absent.
func (s *Store) GetCategory(id uuid.UUID) *models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cat, ok := s.categories[id]
	if !ok {
		return nil
	}
	c := *cat
	return &c
}

// ListCategories returns all categories sorted by precedence order
// descending, names ascending on ties. When activeOnly is set, categories
// with precedence order 0 are skipped.
func (s *Store) ListCategories(activeOnly bool) []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, 0, len(s.categories))
	for _, cat := range s.categories {
		if activeOnly && !cat.Active() {
			continue
		}
		out = append(out, *cat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PrecedenceOrder != out[j].PrecedenceOrder {
			return out[i].PrecedenceOrder > out[j].PrecedenceOrder
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// UpdateCategory replaces a category's mutable fields after validation.
func (s *Store) UpdateCategory(id uuid.UUID, updates *models.Category) error {
	if updates != nil {
		updates.ID = id
	}
	if err := models.ValidateCategory(updates); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cat, ok := s.categories[id]
	if !ok {
		return fmt.Errorf("category %s not found", id)
	}
	for _, existing := range s.categories {
		if existing.ID != id && strings.EqualFold(existing.Name, updates.Name) {
			return &models.InvalidInputError{Entity: "category", Field: "name", Reason: "is already in use"}
		}
	}

	cat.Name = updates.Name
	cat.Description = updates.Description
	cat.InstructionText = updates.InstructionText
	cat.PrecedenceOrder = updates.PrecedenceOrder
	cat.UpdatedAt = s.Now()
	return nil
}

// SetCategoryActive deactivates a category (precedence 0) or reactivates it
// at precedence 1. Reactivating an already-active category is a no-op.
func (s *Store) SetCategoryActive(id uuid.UUID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, ok := s.categories[id]
	if !ok {
		return fmt.Errorf("category %s not found", id)
	}
	if active {
		if cat.PrecedenceOrder == 0 {
			cat.PrecedenceOrder = 1
		}
	} else {
		cat.PrecedenceOrder = 0
	}
	cat.UpdatedAt = s.Now()
	return nil
}

// UsageCount reports how many contacts reference the category.
func (s *Store) UsageCount(id uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usageCountLocked(id)
}

func (s *Store) usageCountLocked(id uuid.UUID) int {
	count := 0
	for _, c := range s.contacts {
		if c.HasCategory(id) {
			count++
		}
	}
	return count
}

// DeleteCategory removes a category. Deletion is rejected with a
// ReferentialIntegrityError while any contact still references it.
func (s *Store) DeleteCategory(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return fmt.Errorf("category %s not found", id)
	}
	if n := s.usageCountLocked(id); n > 0 {
		return &models.ReferentialIntegrityError{CategoryID: id, UsageCount: n}
	}
	delete(s.categories, id)
	return nil
}

// --- Contacts ---

// AddContact validates and inserts a contact, assigning an id when none is
// set and computing the initial next outreach date from the cadence.
func (s *Store) AddContact(c *models.Contact) error {
	if c != nil {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		if c.CadenceFrequency == "" {
			c.CadenceFrequency = models.CadenceMonthly
		}
	}
	if err := models.ValidateContact(c); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	c.NextOutreachDate = cadence.NextOutreachDate(c.CadenceFrequency, c.LastContact, now)
	stored := cloneContact(c)
	s.contacts[c.ID] = stored
	*c = *cloneContact(stored)
	return nil
}

// GetContact returns a copy of the contact, or nil if absent.
func (s *Store) GetContact(id uuid.UUID) *models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contacts[id]
	if !ok {
		return nil
	}
	return cloneContact(c)
}

// ListContacts returns a snapshot of all contacts sorted by next outreach
// date ascending, soonest due first.
func (s *Store) ListContacts() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, *cloneContact(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].NextOutreachDate.Equal(out[j].NextOutreachDate) {
			return out[i].NextOutreachDate.Before(out[j].NextOutreachDate)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// UpdateContact replaces a contact's mutable fields after validation and
// recomputes the derived next outreach date.
func (s *Store) UpdateContact(id uuid.UUID, updates *models.Contact) error {
	if updates != nil {
		updates.ID = id
		if updates.CadenceFrequency == "" {
			updates.CadenceFrequency = models.CadenceMonthly
		}
	}
	if err := models.ValidateContact(updates); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return fmt.Errorf("contact %s not found", id)
	}

	created := c.CreatedAt
	last := c.LastContact
	if updates.LastContact != nil {
		last = updates.LastContact
	}
	*c = *cloneContact(updates)
	c.CreatedAt = created
	c.LastContact = last
	c.UpdatedAt = s.Now()
	c.NextOutreachDate = cadence.NextOutreachDate(c.CadenceFrequency, c.LastContact, s.Now())
	return nil
}

// DeleteContact removes a contact. Nothing references contacts, so
// deletion always succeeds when the id exists.
func (s *Store) DeleteContact(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[id]; !ok {
		return fmt.Errorf("contact %s not found", id)
	}
	delete(s.contacts, id)
	return nil
}

// RecordOutreach marks a contact as contacted at the given time and
// recomputes the next outreach date from the new last contact.
func (s *Store) RecordOutreach(id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return fmt.Errorf("contact %s not found", id)
	}
	c.LastContact = &at
	c.UpdatedAt = s.Now()
	c.NextOutreachDate = cadence.NextOutreachDate(c.CadenceFrequency, c.LastContact, s.Now())
	return nil
}

// SetCadence changes a contact's cadence frequency and recomputes the next
// outreach date.
func (s *Store) SetCadence(id uuid.UUID, f models.CadenceFrequency) error {
	if !models.ValidCadence(f) {
		return &models.InvalidInputError{Entity: "contact", Field: "cadence_frequency", Reason: "is not a known frequency"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return fmt.Errorf("contact %s not found", id)
	}
	c.CadenceFrequency = f
	c.UpdatedAt = s.Now()
	c.NextOutreachDate = cadence.NextOutreachDate(f, c.LastContact, s.Now())
	return nil
}

// ResolveCategories returns the category objects for a contact's category
// ids. Ids pointing at deleted categories are dropped and reported as
// dangling references; resolution never fails. Results are sorted by
// precedence order descending.
func (s *Store) ResolveCategories(contact *models.Contact) ([]models.Category, []models.DanglingReference) {
	if contact == nil {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var resolved []models.Category
	var dangling []models.DanglingReference
	for _, id := range contact.CategoryIDs {
		cat, ok := s.categories[id]
		if !ok {
			dangling = append(dangling, models.DanglingReference{ContactID: contact.ID, CategoryID: id})
			continue
		}
		resolved = append(resolved, *cat)
	}
	sort.Slice(resolved, func(i, j int) bool {
		if resolved[i].PrecedenceOrder != resolved[j].PrecedenceOrder {
			return resolved[i].PrecedenceOrder > resolved[j].PrecedenceOrder
		}
		return resolved[i].Name < resolved[j].Name
	})
	return resolved, dangling
}

// --- Settings ---

// Settings returns the current settings record.
func (s *Store) Settings() models.SystemSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ReplaceSettings swaps the settings record wholesale. An empty system
// prompt falls back to the default so the record never goes blank.
func (s *Store) ReplaceSettings(settings models.SystemSettings) {
	if strings.TrimSpace(settings.SystemPrompt) == "" {
		settings.SystemPrompt = models.DefaultSystemPrompt
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// cloneContact deep-copies a contact so snapshots never alias store state.
func cloneContact(c *models.Contact) *models.Contact {
	out := *c
	if c.SpecialDates != nil {
		out.SpecialDates = make(map[string]time.Time, len(c.SpecialDates))
		for k, v := range c.SpecialDates {
			out.SpecialDates[k] = v
		}
	}
	out.CategoryIDs = append([]uuid.UUID(nil), c.CategoryIDs...)
	out.RelevantWebsites = append([]string(nil), c.RelevantWebsites...)
	out.Keywords = append([]string(nil), c.Keywords...)
	if c.LastContact != nil {
		t := *c.LastContact
		out.LastContact = &t
	}
	return &out
}
