package dashboard

import (
	"fmt"
	"math"
	"time"
)

// UptimeTickInterval is how often a live uptime advances on screen.
const UptimeTickInterval = time.Second

// UptimeAnchor is the last reported uptime and when it was received.
type UptimeAnchor struct {
	Reported   float64
	AnchoredAt time.Time
}

// Extrapolator keeps an uptime counting between server reports. It is owned
// by the Bubble Tea model and only touched from Update.
//
// Every anchor change bumps the generation. A tick carries the generation it
// was scheduled under; ticks from an older generation are ignored, which is
// how a replaced anchor cancels the previous timer.
type Extrapolator struct {
	anchor    *UptimeAnchor
	displayed float64
	gen       int
}

// Observe feeds a reported uptime in seconds. It returns the generation to
// tag the next tick with and whether the caller should start ticking.
//
// Values <= 0 mean unknown: the anchor is dropped and ticking stops.
// Resending the current value changes nothing.
func (e *Extrapolator) Observe(reported float64, now time.Time) (gen int, start bool) {
	if reported <= 0 {
		if e.anchor != nil {
			e.anchor = nil
			e.displayed = 0
			e.gen++
		}
		return e.gen, false
	}

	if e.anchor != nil && e.anchor.Reported == reported {
		return e.gen, false
	}

	e.gen++
	e.anchor = &UptimeAnchor{Reported: reported, AnchoredAt: now}
	e.displayed = reported
	return e.gen, true
}

// Tick advances the displayed value to now. It returns false, changing
// nothing, when gen is stale or there is no anchor; the caller should then
// stop rescheduling.
func (e *Extrapolator) Tick(gen int, now time.Time) bool {
	if gen != e.gen || e.anchor == nil {
		return false
	}
	elapsed := now.Sub(e.anchor.AnchoredAt).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	e.displayed = e.anchor.Reported + elapsed
	return true
}

// Stop tears the extrapolator down. In-flight ticks become stale.
func (e *Extrapolator) Stop() {
	e.anchor = nil
	e.displayed = 0
	e.gen++
}

// Displayed returns the current uptime in seconds, 0 when unknown.
func (e *Extrapolator) Displayed() float64 {
	if e == nil {
		return 0
	}
	return e.displayed
}

// Known reports whether there is an anchor to extrapolate from.
func (e *Extrapolator) Known() bool {
	return e != nil && e.anchor != nil
}

// Generation returns the live tick generation.
func (e *Extrapolator) Generation() int {
	return e.gen
}

// Anchor returns a copy of the current anchor.
func (e *Extrapolator) Anchor() (UptimeAnchor, bool) {
	if e == nil || e.anchor == nil {
		return UptimeAnchor{}, false
	}
	return *e.anchor, true
}

// UptimeRow is one line of the uptime breakdown.
type UptimeRow struct {
	Label string
	Value string
}

// UptimeLabel heads the first uptime row.
const UptimeLabel = "Up since"

// UptimeRows breaks seconds into days, hours, minutes and seconds. Leading
// zero units are dropped; once a unit is shown all smaller ones follow. The
// first row carries UptimeLabel. Zero collapses to a single "0 seconds" row.
func UptimeRows(seconds float64) []UptimeRow {
	total := int64(0)
	if seconds > 0 && !math.IsInf(seconds, 1) {
		total = int64(math.Floor(seconds))
	}

	units := []struct {
		amount int64
		name   string
	}{
		{total / 86400, "days"},
		{(total % 86400) / 3600, "hours"},
		{(total % 3600) / 60, "minutes"},
		{total % 60, "seconds"},
	}

	var rows []UptimeRow
	for _, u := range units {
		if len(rows) == 0 && u.amount == 0 {
			continue
		}
		rows = append(rows, UptimeRow{Value: fmt.Sprintf("%d %s", u.amount, u.name)})
	}

	if len(rows) == 0 {
		rows = append(rows, UptimeRow{Value: "0 seconds"})
	}
	rows[0].Label = UptimeLabel
	return rows
}
