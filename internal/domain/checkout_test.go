package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCheckout_Open(t *testing.T) {
	co := &Checkout{CheckedOutAt: date(2026, 3, 1)}
	assert.True(t, co.Open())

	in := date(2026, 3, 5)
	co.CheckedInAt = &in
	assert.False(t, co.Open())
}

func TestCheckout_Overdue(t *testing.T) {
	due := date(2026, 3, 10)

	t.Run("NotOverdueBeforeDueDate", func(t *testing.T) {
		co := &Checkout{CheckedOutAt: date(2026, 3, 1), ExpectedReturnDate: &due}
		assert.False(t, co.Overdue(date(2026, 3, 9)))
	})

	t.Run("NotOverdueOnDueDate", func(t *testing.T) {
		co := &Checkout{CheckedOutAt: date(2026, 3, 1), ExpectedReturnDate: &due}
		// still the due date at 23:59, whatever the clock says
		assert.False(t, co.Overdue(time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)))
	})

	t.Run("OverdueDayAfter", func(t *testing.T) {
		co := &Checkout{CheckedOutAt: date(2026, 3, 1), ExpectedReturnDate: &due}
		assert.True(t, co.Overdue(time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)))
	})

	t.Run("ComparesUTCDates", func(t *testing.T) {
		co := &Checkout{CheckedOutAt: date(2026, 3, 1), ExpectedReturnDate: &due}
		// 2026-03-11 02:00 +05:00 is still 2026-03-10 in UTC
		local := time.FixedZone("UTC+5", 5*3600)
		assert.False(t, co.Overdue(time.Date(2026, 3, 11, 2, 0, 0, 0, local)))
	})

	t.Run("NeverOverdueWithoutDueDate", func(t *testing.T) {
		co := &Checkout{CheckedOutAt: date(2026, 3, 1)}
		assert.False(t, co.Overdue(date(2026, 12, 31)))
	})

	t.Run("NeverOverdueOnceClosed", func(t *testing.T) {
		in := date(2026, 3, 20)
		co := &Checkout{CheckedOutAt: date(2026, 3, 1), ExpectedReturnDate: &due, CheckedInAt: &in}
		assert.False(t, co.Overdue(date(2026, 3, 25)))
	})
}

func TestCheckout_DurationDays(t *testing.T) {
	out := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("TruncatesPartialDays", func(t *testing.T) {
		in := out.Add(2*24*time.Hour + 3*time.Hour)
		co := &Checkout{CheckedOutAt: out, CheckedInAt: &in}
		assert.Equal(t, 2, co.DurationDays(time.Now()))
	})

	t.Run("SameDayIsZero", func(t *testing.T) {
		in := out.Add(5 * time.Hour)
		co := &Checkout{CheckedOutAt: out, CheckedInAt: &in}
		assert.Equal(t, 0, co.DurationDays(time.Now()))
	})

	t.Run("OpenEntryMeasuresAgainstNow", func(t *testing.T) {
		co := &Checkout{CheckedOutAt: out}
		assert.Equal(t, 7, co.DurationDays(out.Add(7*24*time.Hour+30*time.Minute)))
	})

	t.Run("ClockSkewClampsToZero", func(t *testing.T) {
		co := &Checkout{CheckedOutAt: out}
		assert.Equal(t, 0, co.DurationDays(out.Add(-time.Hour)))
	})
}

func TestCondition_Valid(t *testing.T) {
	assert.True(t, ConditionGood.Valid())
	assert.True(t, ConditionFair.Valid())
	assert.True(t, ConditionPoor.Valid())
	assert.False(t, Condition("broken").Valid())
	assert.False(t, Condition("").Valid())
}
