package portal

import (
	"fmt"
	"strings"
	"time"
)

var (
	monthsLong = [12]string{
		"yanvar", "fevral", "mart", "aprel", "may", "iyun",
		"iyul", "avgust", "sentabr", "oktabr", "noyabr", "dekabr",
	}
	monthsShort = [12]string{
		"yan", "fev", "mar", "apr", "may", "iyn",
		"iyl", "avg", "sen", "okt", "noy", "dek",
	}
)

// DayMonth formats a date as "20-may".
func DayMonth(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d-%s", t.Day(), monthsShort[t.Month()-1])
}

// LongDate formats a date as "20-may, 2024".
func LongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d-%s, %d", t.Day(), monthsLong[t.Month()-1], t.Year())
}

// DateInput renders the date-only value used by date form inputs.
func DateInput(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func FullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func (e Employee) FullName() string {
	return FullName(e.FirstName, e.LastName)
}

func (e HonoraryEmployee) FullName() string {
	return FullName(e.FirstName, e.LastName)
}

// WorkPeriodLabel returns the explicit work period when set, otherwise the
// "startYear - endYear" range.
func (e HonoraryEmployee) WorkPeriodLabel() string {
	if e.WorkPeriod != "" {
		return e.WorkPeriod
	}
	return fmt.Sprintf("%d - %d", e.StartDate.Year(), e.EndDate.Year())
}

func (a Announcement) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && !a.ExpiresAt.After(now)
}

// IsBirthdayOn reports whether birth falls on the month and day of day,
// regardless of year. Birth dates are calendar dates stored at UTC midnight,
// so birth is read in UTC while day keeps the calendar date of its own zone.
func IsBirthdayOn(birth, day time.Time) bool {
	_, bm, bd := birth.UTC().Date()
	_, dm, dd := day.Date()
	return bm == dm && bd == dd
}

func Birthdays(list []Employee, day time.Time) []Employee {
	return Filter(list, func(e Employee) bool {
		return IsBirthdayOn(e.BirthDate, day)
	})
}

// EventPhotos flattens the first maxEvents events into one entry per photo,
// keeping at most maxPhotos photos of each event in their stored order.
func EventPhotos(events []Event, maxEvents, maxPhotos int) []EventPhoto {
	if maxEvents > 0 && len(events) > maxEvents {
		events = events[:maxEvents]
	}

	var result []EventPhoto
	for _, e := range events {
		photos := e.PhotoURLs
		if maxPhotos > 0 && len(photos) > maxPhotos {
			photos = photos[:maxPhotos]
		}
		for _, p := range photos {
			result = append(result, EventPhoto{
				PhotoURL:   p,
				Title:      e.Title,
				EventDate:  e.EventDate,
				PhotoCount: len(e.PhotoURLs),
			})
		}
	}
	return result
}
