// ABOUTME: Shared test fixtures for MCP tool handlers
// ABOUTME: Builds a deterministic store with known categories and contacts
package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harperreed/nurture/models"
	"github.com/harperreed/nurture/store"
)

var testNow = time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	s.Now = func() time.Time { return testNow }
	return s
}

func seedCategory(t *testing.T, s *store.Store, name string, precedence int) models.Category {
	t.Helper()
	cat := models.Category{
		Name:            name,
		InstructionText: "Rules for " + name,
		PrecedenceOrder: precedence,
	}
	require.NoError(t, s.AddCategory(&cat))
	return cat
}
