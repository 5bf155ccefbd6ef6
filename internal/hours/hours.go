package hours

import (
	"time"

	"washradar/internal/models"
)

// Status is the resolved availability of a listing at one instant.
// OpensAt/ClosesAt are local "HH:MM" strings for the next boundary; both
// are nil for round-the-clock listings and for listings with no scheduled
// opening inside the override horizon.
type Status struct {
	IsOpenNow bool    `json:"is_open_now"`
	OpensAt   *string `json:"opens_at"`
	ClosesAt  *string `json:"closes_at"`
}

// overrideHorizonDays bounds the forward scan for the next opening.
const overrideHorizonDays = 14

const minutesPerDay = 24 * 60

// dayWindow is one day's effective opening window after holiday overrides
// are applied. openM/closeM are minutes since local midnight.
type dayWindow struct {
	closed   bool
	open24   bool
	openM    int
	closeM   int
	openStr  string
	closeStr string
}

// Resolve computes open/closed state and the next transition from a weekly
// schedule, holiday overrides and the listing's zone. Anything malformed
// (unknown zone, missing day entry, unparsable times) resolves closed,
// never open.
func Resolve(schedule []models.DayHours, overrides []models.HolidayOverride, timezone string, nowUTC time.Time) Status {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Status{}
	}
	local := nowUTC.In(loc)
	nowM := local.Hour()*60 + local.Minute()

	today := effectiveDay(schedule, overrides, local)

	if today.open24 {
		return Status{IsOpenNow: true}
	}
	if !today.closed {
		closeM := today.closeM
		if closeM <= today.openM {
			// window crosses midnight into tomorrow
			closeM += minutesPerDay
		}
		if nowM >= today.openM && nowM < closeM {
			return openStatus(today)
		}
	}

	// tail of yesterday's cross-midnight window
	yesterday := effectiveDay(schedule, overrides, local.AddDate(0, 0, -1))
	if !yesterday.closed && !yesterday.open24 && yesterday.closeM <= yesterday.openM && nowM < yesterday.closeM {
		return openStatus(yesterday)
	}

	return nextOpening(schedule, overrides, local, nowM)
}

func openStatus(w dayWindow) Status {
	opens, closes := w.openStr, w.closeStr
	return Status{IsOpenNow: true, OpensAt: &opens, ClosesAt: &closes}
}

// nextOpening scans forward for the first day with an opening the listing
// has not already passed.
func nextOpening(schedule []models.DayHours, overrides []models.HolidayOverride, local time.Time, nowM int) Status {
	for offset := 0; offset <= overrideHorizonDays; offset++ {
		w := effectiveDay(schedule, overrides, local.AddDate(0, 0, offset))
		if w.open24 {
			opens := "00:00"
			return Status{OpensAt: &opens}
		}
		if w.closed {
			continue
		}
		if offset == 0 && nowM >= w.openM {
			continue
		}
		opens, closes := w.openStr, w.closeStr
		return Status{OpensAt: &opens, ClosesAt: &closes}
	}
	return Status{}
}

// effectiveDay picks the window for one local date: a holiday override for
// that calendar date fully replaces the weekly entry.
func effectiveDay(schedule []models.DayHours, overrides []models.HolidayOverride, t time.Time) dayWindow {
	date := t.Format("2006-01-02")
	for _, o := range overrides {
		if o.Date != date {
			continue
		}
		if o.IsClosed {
			return dayWindow{closed: true}
		}
		return windowFromTimes(o.OpenTime, o.CloseTime)
	}

	dow := int(t.Weekday())
	for _, d := range schedule {
		if d.DayOfWeek != dow {
			continue
		}
		if d.IsClosed {
			return dayWindow{closed: true}
		}
		if d.Is24Hours {
			return dayWindow{open24: true}
		}
		return windowFromTimes(d.OpenTime, d.CloseTime)
	}

	// no entry for this day
	return dayWindow{closed: true}
}

func windowFromTimes(openTime, closeTime string) dayWindow {
	openM, okOpen := parseDailyMinutes(openTime)
	closeM, okClose := parseDailyMinutes(closeTime)
	if !okOpen || !okClose {
		return dayWindow{closed: true}
	}
	return dayWindow{openM: openM, closeM: closeM, openStr: openTime, closeStr: closeTime}
}

func parseDailyMinutes(value string) (int, bool) {
	layouts := []string{"15:04:05", "15:04"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}
