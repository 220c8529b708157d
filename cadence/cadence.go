// ABOUTME: Cadence engine for outreach scheduling
// ABOUTME: Computes next outreach dates and classifies contacts into due buckets
package cadence

import (
	"sort"
	"time"

	"github.com/harperreed/nurture/models"
)

// DefaultReconnectLimit is how many stale contacts the due queue surfaces.
const DefaultReconnectLimit = 4

// Offset returns the outreach interval for a cadence frequency. Custom has
// no stored interval and falls back to monthly.
func Offset(f models.CadenceFrequency) time.Duration {
	switch f {
	case models.CadenceWeekly:
		return 7 * 24 * time.Hour
	case models.CadenceQuarterly:
		return 90 * 24 * time.Hour
	default: // monthly and custom
		return 30 * 24 * time.Hour
	}
}

// NextOutreachDate computes when a contact is next due. A contact that was
// never contacted uses now as the base, so it becomes actionable
// immediately after one interval rather than deferred indefinitely.
func NextOutreachDate(f models.CadenceFrequency, lastContact *time.Time, now time.Time) time.Time {
	base := now
	if lastContact != nil {
		base = *lastContact
	}
	return base.Add(Offset(f))
}

// DaysSince returns whole days elapsed since the last contact. The second
// return is false when the contact was never contacted; callers render
// that as "Never".
func DaysSince(lastContact *time.Time, now time.Time) (int, bool) {
	if lastContact == nil {
		return 0, false
	}
	return int(now.Sub(*lastContact).Hours() / 24), true
}

// Buckets is the classification of a contact set for the presentation
// layer. DueThisWeek includes DueToday; the sets overlap and callers choose
// which view to render.
type Buckets struct {
	DueToday          []models.Contact
	DueThisWeek       []models.Contact
	Overdue           []models.Contact
	ReconnectPriority []models.Contact
}

// Classify buckets contacts by their next outreach date relative to now.
// ReconnectPriority ranks contacts with a recorded last contact by
// staleness, oldest first, ties broken by id, truncated to reconnectLimit
// (DefaultReconnectLimit when <= 0). Inputs are never mutated.
func Classify(contacts []models.Contact, now time.Time, reconnectLimit int) Buckets {
	if reconnectLimit <= 0 {
		reconnectLimit = DefaultReconnectLimit
	}

	today := dateOf(now)
	weekEnd := today.AddDate(0, 0, 7)

	var b Buckets
	for _, c := range contacts {
		due := dateOf(c.NextOutreachDate.In(now.Location()))
		switch {
		case due.Equal(today):
			b.DueToday = append(b.DueToday, c)
			b.DueThisWeek = append(b.DueThisWeek, c)
		case due.Before(today):
			b.Overdue = append(b.Overdue, c)
		case !due.After(weekEnd):
			b.DueThisWeek = append(b.DueThisWeek, c)
		}
	}

	var stale []models.Contact
	for _, c := range contacts {
		if c.LastContact != nil {
			stale = append(stale, c)
		}
	}
	sort.Slice(stale, func(i, j int) bool {
		if !stale[i].LastContact.Equal(*stale[j].LastContact) {
			return stale[i].LastContact.Before(*stale[j].LastContact)
		}
		return stale[i].ID.String() < stale[j].ID.String()
	})
	if len(stale) > reconnectLimit {
		stale = stale[:reconnectLimit]
	}
	b.ReconnectPriority = stale

	return b
}

// dateOf truncates a timestamp to its calendar date in its own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
