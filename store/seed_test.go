// ABOUTME: Tests for placeholder data seeding
// ABOUTME: Validates stock categories, contact counts, and reproducibility
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_StockCategoriesAndContacts(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Seed(10, 1))

	cats := s.ListCategories(false)
	require.Len(t, cats, 4)
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	assert.ElementsMatch(t, []string{"Real Estate Client", "Pickleball", "Business Referral", "Local Business"}, names)

	contacts := s.ListContacts()
	require.Len(t, contacts, 10)
	for _, c := range contacts {
		assert.NotEmpty(t, c.Email)
		assert.NotEmpty(t, c.CategoryIDs)
		require.NotNil(t, c.LastContact)
		_, dangling := s.ResolveCategories(&c)
		assert.Empty(t, dangling)
	}
}

func TestSeed_Reproducible(t *testing.T) {
	s1 := newTestStore()
	require.NoError(t, s1.Seed(5, 42))
	s2 := newTestStore()
	require.NoError(t, s2.Seed(5, 42))

	byName := func(s *Store) map[string]string {
		out := map[string]string{}
		for _, c := range s.ListContacts() {
			out[c.Name] = string(c.CadenceFrequency) + "|" + c.LastContact.String()
		}
		return out
	}
	assert.Equal(t, byName(s1), byName(s2))
}

func TestSeed_MoreContactsThanNames(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Seed(12, 7))
	assert.Len(t, s.ListContacts(), 12)
}
