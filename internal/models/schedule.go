package models

// DayHours is one weekly schedule entry. DayOfWeek follows time.Weekday
// numbering, 0 = Sunday. Times are local wall-clock "HH:MM" strings; a
// close time at or before the open time means the window crosses midnight.
type DayHours struct {
	DayOfWeek int    `json:"day_of_week"`
	IsClosed  bool   `json:"is_closed"`
	Is24Hours bool   `json:"is_24_hours"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
}

// HolidayOverride replaces the weekly entry for one local calendar date.
// Date is "2006-01-02" in the listing's zone; no time component.
type HolidayOverride struct {
	Date      string `json:"date"`
	IsClosed  bool   `json:"is_closed"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
}
