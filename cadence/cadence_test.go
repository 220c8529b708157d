// ABOUTME: Tests for the cadence engine
// ABOUTME: Validates outreach date arithmetic and due-bucket classification
package cadence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/nurture/models"
)

func TestNextOutreachDate_Offsets(t *testing.T) {
	last := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		frequency models.CadenceFrequency
		days      int
	}{
		{models.CadenceWeekly, 7},
		{models.CadenceMonthly, 30},
		{models.CadenceQuarterly, 90},
		{models.CadenceCustom, 30}, // custom falls back to monthly
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			// now must not influence the result when lastContact is set
			for _, now := range []time.Time{last, last.AddDate(1, 0, 0)} {
				got := NextOutreachDate(tt.frequency, &last, now)
				assert.Equal(t, last.AddDate(0, 0, tt.days), got)
			}
		})
	}
}

func TestNextOutreachDate_NeverContacted(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	got := NextOutreachDate(models.CadenceWeekly, nil, now)
	assert.Equal(t, now.AddDate(0, 0, 7), got)
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	days, ok := DaysSince(&last, now)
	require.True(t, ok)
	assert.Equal(t, 35, days)

	_, ok = DaysSince(nil, now)
	assert.False(t, ok)
}

func contactDue(name string, due time.Time) models.Contact {
	return models.Contact{
		ID:               uuid.New(),
		Name:             name,
		Email:            name + "@example.com",
		CadenceFrequency: models.CadenceMonthly,
		NextOutreachDate: due,
	}
}

func TestClassify_Buckets(t *testing.T) {
	now := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)

	today := contactDue("today", now.Add(2*time.Hour))
	inTwoDays := contactDue("soon", now.AddDate(0, 0, 2))
	nextWeekEdge := contactDue("edge", now.AddDate(0, 0, 7))
	farOut := contactDue("far", now.AddDate(0, 0, 12))
	late := contactDue("late", now.AddDate(0, 0, -3))

	b := Classify([]models.Contact{today, inTwoDays, nextWeekEdge, farOut, late}, now, 0)

	assert.Equal(t, []string{"today"}, names(b.DueToday))
	// due-this-week overlaps due-today and includes the 7-day edge
	assert.ElementsMatch(t, []string{"today", "soon", "edge"}, names(b.DueThisWeek))
	assert.Equal(t, []string{"late"}, names(b.Overdue))
}

func TestClassify_DueInTwoDaysIsNotToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	c := contactDue("soon", now.AddDate(0, 0, 2))

	b := Classify([]models.Contact{c}, now, 0)

	assert.Empty(t, b.DueToday)
	assert.Equal(t, []string{"soon"}, names(b.DueThisWeek))
	assert.Empty(t, b.Overdue)
}

func TestClassify_MonthlyScenario(t *testing.T) {
	last := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := contactDue("pat", NextOutreachDate(models.CadenceMonthly, &last, last))
	c.LastContact = &last

	require.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), c.NextOutreachDate)

	onDue := time.Date(2024, 1, 31, 15, 0, 0, 0, time.UTC)
	b := Classify([]models.Contact{c}, onDue, 0)
	assert.Equal(t, []string{"pat"}, names(b.DueToday))

	later := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	b = Classify([]models.Contact{c}, later, 0)
	assert.Equal(t, []string{"pat"}, names(b.Overdue))

	days, ok := DaysSince(c.LastContact, later)
	require.True(t, ok)
	assert.Equal(t, 35, days)
}

func TestClassify_ReconnectPriority(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	withLast := func(name string, daysAgo int) models.Contact {
		c := contactDue(name, now.AddDate(0, 0, 30))
		last := now.AddDate(0, 0, -daysAgo)
		c.LastContact = &last
		return c
	}

	oldest := withLast("oldest", 90)
	middle := withLast("middle", 45)
	newest := withLast("newest", 10)
	never := contactDue("never", now.AddDate(0, 0, 30))

	b := Classify([]models.Contact{newest, never, oldest, middle}, now, 2)

	// never-contacted contacts are excluded; oldest first; truncated to 2
	assert.Equal(t, []string{"oldest", "middle"}, names(b.ReconnectPriority))
}

func TestClassify_ReconnectTieBreaksByID(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	last := now.AddDate(0, 0, -30)

	a := contactDue("a", now.AddDate(0, 0, 5))
	a.LastContact = &last
	b := contactDue("b", now.AddDate(0, 0, 5))
	b.LastContact = &last

	buckets := Classify([]models.Contact{a, b}, now, 4)
	require.Len(t, buckets.ReconnectPriority, 2)
	assert.Less(t, buckets.ReconnectPriority[0].ID.String(), buckets.ReconnectPriority[1].ID.String())
}

func TestClassify_DefaultReconnectLimit(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	var contacts []models.Contact
	for i := 0; i < 6; i++ {
		c := contactDue(string(rune('a'+i)), now.AddDate(0, 0, 20))
		last := now.AddDate(0, 0, -(10 + i))
		c.LastContact = &last
		contacts = append(contacts, c)
	}

	b := Classify(contacts, now, 0)
	assert.Len(t, b.ReconnectPriority, DefaultReconnectLimit)
}

func names(contacts []models.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.Name
	}
	return out
}
