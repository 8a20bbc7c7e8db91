// Package civil represents instants as a pair of a linear day number and a
// seconds-of-day count. The pair describes a calendar reading in a single
// frame (UTC or local wall clock) without committing to a concrete time
// type, which keeps consumers independent of time.Time and time.Location.
package civil

import (
	"fmt"
	"time"

	"github.com/ngrash/go-tzstring/internal/gregorian"
)

// SecondsPerDay is the length of a calendar day in seconds.
// Leap seconds are not counted; a reading of 23:59:60 clamps to 23:59:59.
const SecondsPerDay = 86400

// Instant is a calendar reading: a proleptic Gregorian day number
// (day 1 = 0001-01-01) and the seconds elapsed since midnight of that day.
// Sec is in [0, SecondsPerDay).
type Instant struct {
	Day int64
	Sec int
}

// FromDate builds an Instant from a civil date and time of day.
func FromDate(year, month, day, hour, min, sec int) Instant {
	return Instant{
		Day: gregorian.ToDayNumber(year, month, day),
		Sec: hour*3600 + min*60 + sec,
	}
}

// FromTimeUTC returns the UTC calendar reading of t.
func FromTimeUTC(t time.Time) Instant {
	return FromTimeWall(t.UTC())
}

// FromTimeWall returns the wall-clock calendar reading of t in its own
// location. Two times representing the same instant in different locations
// yield different wall readings.
func FromTimeWall(t time.Time) Instant {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return FromDate(year, int(month), day, hour, min, sec)
}

// AddSeconds returns the instant s seconds later, carrying across day
// boundaries as needed. s may be negative.
func (i Instant) AddSeconds(s int) Instant {
	total := int64(i.Sec) + int64(s)
	days := total / SecondsPerDay
	rem := total % SecondsPerDay
	if rem < 0 {
		days--
		rem += SecondsPerDay
	}
	return Instant{Day: i.Day + days, Sec: int(rem)}
}

// Date returns the civil date of the instant.
func (i Instant) Date() (year, month, day int) {
	return gregorian.FromDayNumber(i.Day)
}

// Clock returns the time of day of the instant.
func (i Instant) Clock() (hour, min, sec int) {
	return i.Sec / 3600, i.Sec / 60 % 60, i.Sec % 60
}

// Time returns the instant interpreted as a UTC reading.
func (i Instant) Time() time.Time {
	year, month, day := i.Date()
	hour, min, sec := i.Clock()
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
}

// Before reports whether i is earlier than o.
func (i Instant) Before(o Instant) bool {
	return i.Day < o.Day || (i.Day == o.Day && i.Sec < o.Sec)
}

func (i Instant) String() string {
	year, month, day := i.Date()
	hour, min, sec := i.Clock()
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", year, month, day, hour, min, sec)
}
