package hours

import (
	"testing"
	"time"

	"washradar/internal/models"
)

func weekdays(entries ...models.DayHours) []models.DayHours {
	return entries
}

func allWeek(open, close string) []models.DayHours {
	var schedule []models.DayHours
	for d := 0; d < 7; d++ {
		schedule = append(schedule, models.DayHours{DayOfWeek: d, OpenTime: open, CloseTime: close})
	}
	return schedule
}

// 2026-08-31 is a Monday; 16:59 EDT is 20:59 UTC.
var mondayAfternoon = time.Date(2026, 8, 31, 20, 59, 0, 0, time.UTC)

func TestResolveWeeklyWindow(t *testing.T) {
	schedule := weekdays(models.DayHours{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "17:00"})

	st := Resolve(schedule, nil, "America/New_York", mondayAfternoon)
	if !st.IsOpenNow {
		t.Fatal("expected open at 16:59 local")
	}
	if st.OpensAt == nil || *st.OpensAt != "09:00" {
		t.Fatalf("expected opensAt 09:00, got %v", st.OpensAt)
	}
	if st.ClosesAt == nil || *st.ClosesAt != "17:00" {
		t.Fatalf("expected closesAt 17:00, got %v", st.ClosesAt)
	}

	// 17:00 local is the exclusive end of the window
	atClose := mondayAfternoon.Add(time.Minute)
	st = Resolve(schedule, nil, "America/New_York", atClose)
	if st.IsOpenNow {
		t.Fatal("expected closed at 17:00 local")
	}
	// only Monday has hours, so the next opening is next Monday
	if st.OpensAt == nil || *st.OpensAt != "09:00" {
		t.Fatalf("expected next opening 09:00, got %v", st.OpensAt)
	}
}

func TestResolveHolidayClosedOverride(t *testing.T) {
	schedule := weekdays(models.DayHours{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "17:00"})
	overrides := []models.HolidayOverride{{Date: "2026-08-31", IsClosed: true}}

	st := Resolve(schedule, overrides, "America/New_York", mondayAfternoon)
	if st.IsOpenNow {
		t.Fatal("holiday closed override must win over weekly hours")
	}
}

func TestResolveHolidayHoursOverride(t *testing.T) {
	// weekly says closed Monday, override opens it
	schedule := weekdays(models.DayHours{DayOfWeek: 1, IsClosed: true})
	overrides := []models.HolidayOverride{{Date: "2026-08-31", OpenTime: "12:00", CloseTime: "20:00"}}

	st := Resolve(schedule, overrides, "America/New_York", mondayAfternoon)
	if !st.IsOpenNow {
		t.Fatal("holiday hours override must replace the weekly entry")
	}
	if st.ClosesAt == nil || *st.ClosesAt != "20:00" {
		t.Fatalf("expected closesAt 20:00, got %v", st.ClosesAt)
	}
}

func TestResolveOpen24(t *testing.T) {
	schedule := weekdays(models.DayHours{DayOfWeek: 1, Is24Hours: true})

	st := Resolve(schedule, nil, "America/New_York", mondayAfternoon)
	if !st.IsOpenNow {
		t.Fatal("expected 24h listing open")
	}
	if st.OpensAt != nil || st.ClosesAt != nil {
		t.Fatalf("24h listing has no boundaries, got %v %v", st.OpensAt, st.ClosesAt)
	}
}

func TestResolveCrossMidnight(t *testing.T) {
	schedule := allWeek("22:00", "02:00")

	cases := []struct {
		name string
		now  time.Time
		open bool
	}{
		{"inside evening half", time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC), true},
		{"inside morning tail", time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC), true},
		{"after tail", time.Date(2026, 8, 31, 3, 0, 0, 0, time.UTC), false},
		{"before opening", time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := Resolve(schedule, nil, "UTC", tc.now)
			if st.IsOpenNow != tc.open {
				t.Fatalf("expected open=%v got %v", tc.open, st.IsOpenNow)
			}
			if !tc.open && (st.OpensAt == nil || *st.OpensAt != "22:00") {
				t.Fatalf("expected next opening 22:00, got %v", st.OpensAt)
			}
		})
	}
}

func TestResolveMissingDayIsClosed(t *testing.T) {
	// schedule covers Tuesday only; Monday must fail safe to closed
	schedule := weekdays(models.DayHours{DayOfWeek: 2, OpenTime: "09:00", CloseTime: "17:00"})

	st := Resolve(schedule, nil, "America/New_York", mondayAfternoon)
	if st.IsOpenNow {
		t.Fatal("missing schedule entry must resolve closed")
	}
	if st.OpensAt == nil || *st.OpensAt != "09:00" {
		t.Fatalf("expected Tuesday opening, got %v", st.OpensAt)
	}
}

func TestResolveUnknownTimezone(t *testing.T) {
	schedule := allWeek("00:00", "23:59")

	st := Resolve(schedule, nil, "Mars/Olympus_Mons", mondayAfternoon)
	if st.IsOpenNow {
		t.Fatal("unknown timezone must resolve closed, never open")
	}
	if st.OpensAt != nil || st.ClosesAt != nil {
		t.Fatal("unknown timezone reports no transitions")
	}
}

func TestResolveNoOpeningWithinHorizon(t *testing.T) {
	var schedule []models.DayHours
	for d := 0; d < 7; d++ {
		schedule = append(schedule, models.DayHours{DayOfWeek: d, IsClosed: true})
	}

	st := Resolve(schedule, nil, "UTC", mondayAfternoon)
	if st.IsOpenNow || st.OpensAt != nil || st.ClosesAt != nil {
		t.Fatalf("permanently closed listing must report nothing, got %+v", st)
	}
}

func TestResolveOpensLaterToday(t *testing.T) {
	schedule := weekdays(models.DayHours{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "17:00"})
	earlyMonday := time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC) // 03:00 EDT

	st := Resolve(schedule, nil, "America/New_York", earlyMonday)
	if st.IsOpenNow {
		t.Fatal("expected closed before opening")
	}
	if st.OpensAt == nil || *st.OpensAt != "09:00" {
		t.Fatalf("expected opening later today, got %v", st.OpensAt)
	}
}
