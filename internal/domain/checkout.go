package domain

import "time"

type Condition string

const (
	ConditionGood Condition = "good"
	ConditionFair Condition = "fair"
	ConditionPoor Condition = "poor"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// Checkout is one entry in the checkout ledger. An entry with a nil
// CheckedInAt is open: the equipment is currently out. At most one open
// entry exists per equipment item, and the equipment is in-use exactly
// while that entry exists.
type Checkout struct {
	ID                 int64      `json:"id"`
	EquipmentID        int64      `json:"equipment_id"`
	EquipmentName      string     `json:"equipment_name,omitempty"` // populated on joined reads
	CheckedOutBy       string     `json:"checked_out_by"`
	CheckedOutAt       time.Time  `json:"checked_out_at"`
	ExpectedReturnDate *time.Time `json:"expected_return_date,omitempty"`
	CheckedInAt        *time.Time `json:"checked_in_at,omitempty"`
	CheckedInBy        string     `json:"checked_in_by,omitempty"`
	ConditionOut       Condition  `json:"condition_out"`
	ConditionIn        Condition  `json:"condition_in,omitempty"`
	Notes              string     `json:"notes,omitempty"`
}

// Open reports whether the equipment is still out on this entry.
func (c *Checkout) Open() bool {
	return c.CheckedInAt == nil
}

// Overdue reports whether the entry is open and its expected return date
// has passed. The comparison is by calendar date in UTC on both sides, so
// an entry due today is not overdue until tomorrow regardless of
// time-of-day.
func (c *Checkout) Overdue(now time.Time) bool {
	if !c.Open() || c.ExpectedReturnDate == nil {
		return false
	}
	today := truncateToDate(now)
	due := truncateToDate(*c.ExpectedReturnDate)
	return today.After(due)
}

// DurationDays is the whole-day length of the checkout, truncated. Open
// entries are measured against now and therefore grow on each read.
func (c *Checkout) DurationDays(now time.Time) int {
	end := now
	if c.CheckedInAt != nil {
		end = *c.CheckedInAt
	}
	d := end.Sub(c.CheckedOutAt)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EquipmentUsage aggregates a single item's ledger for the usage report.
type EquipmentUsage struct {
	Equipment      Equipment `json:"equipment"`
	TotalCheckouts int64     `json:"total_checkouts"`
	TotalUsageDays int       `json:"total_usage_days"`
	ActiveCheckout *Checkout `json:"active_checkout,omitempty"`
}

// UsageReport is the full reporting payload: per-item usage ranked by
// checkout count plus checkout counts bucketed by calendar month.
type UsageReport struct {
	Equipment []EquipmentUsage `json:"equipment"`
	Monthly   map[string]int64 `json:"monthly"` // keyed "YYYY-MM"
}
