// Package booking is the decision core of the lending portal: the overlap
// predicate for booked date ranges and the borrow-request state machine
// coupled to inventory quantities. Everything here is pure; db.Repo wraps
// each decision in one transaction so the read-modify-write is atomic.
package booking

import (
	"time"

	"equipment_portal/apperr"
	"equipment_portal/models"
)

// Accepted layouts for caller-supplied booking dates, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Overlaps reports whether two inclusive date ranges share at least one
// instant: candStart <= exEnd AND exStart <= candEnd, so ranges touching at
// a boundary count as overlapping.
//
// An unparseable date reports no overlap. New input never reaches storage
// unparsed (ValidateRange rejects it at creation); the lenient path only
// applies to rows written before that check existed.
func Overlaps(candStart, candEnd, exStart, exEnd string) bool {
	a, ok := parseDate(candStart)
	if !ok {
		return false
	}
	b, ok := parseDate(candEnd)
	if !ok {
		return false
	}
	c, ok := parseDate(exStart)
	if !ok {
		return false
	}
	d, ok := parseDate(exEnd)
	if !ok {
		return false
	}
	return !a.After(d) && !c.After(b)
}

// ValidateRange checks caller-supplied booking dates before they are stored.
func ValidateRange(start, end string) error {
	if start == "" || end == "" {
		return apperr.NewValidation("startDate and endDate required")
	}
	s, ok := parseDate(start)
	if !ok {
		return apperr.NewValidation("startDate is not a valid date")
	}
	e, ok := parseDate(end)
	if !ok {
		return apperr.NewValidation("endDate is not a valid date")
	}
	if e.Before(s) {
		return apperr.NewValidation("endDate must not be before startDate")
	}
	return nil
}

// CheckConflicts rejects the candidate range when it overlaps any request in
// approved, skipping skipID (the request under decision itself).
func CheckConflicts(start, end string, approved []models.BorrowRequest, skipID string) error {
	for _, a := range approved {
		if a.ID == skipID {
			continue
		}
		if Overlaps(start, end, a.StartDate, a.EndDate) {
			return apperr.NewConflict("requested period overlaps with existing approved booking")
		}
	}
	return nil
}
