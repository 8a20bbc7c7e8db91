package tzstring

import (
	"fmt"

	"github.com/ngrash/go-tzstring/civil"
	"github.com/ngrash/go-tzstring/internal/gregorian"
)

// maxRuleSearchYears bounds the backward search for the most recent
// transition. Rules accepted by Parse produce a transition every year, so
// the search converges after at most two steps; exhausting the bound means
// the zone holds a rule Parse never produced.
const maxRuleSearchYears = 400

// NonexistentTimeError is returned by OffsetForLocal for a local reading
// that no UTC instant maps to, i.e. one skipped by a transition into
// daylight saving time.
type NonexistentTimeError struct {
	// Zone is the display name of the zone.
	Zone string
	// Day and Sec are the rejected local reading.
	Day int64
	Sec int
}

func (e *NonexistentTimeError) Error() string {
	local := civil.Instant{Day: e.Day, Sec: e.Sec}
	return fmt.Sprintf("local time %s does not exist in zone %s", local, e.Zone)
}

// IsDST reports whether daylight saving time is in effect at the given UTC
// instant. It is always false for fixed-offset zones.
func (z *Zone) IsDST(utc civil.Instant) bool {
	if z.dst == nil {
		return false
	}
	return z.isDST(utc.Day, clampSec(utc.Sec))
}

// OffsetAt returns the offset in seconds east of universal time that is in
// effect at the given UTC instant.
func (z *Zone) OffsetAt(utc civil.Instant) int {
	if z.IsDST(utc) {
		return z.dst.offset
	}
	return z.std.offset
}

// AbbrevAt returns the designation in effect at the given UTC instant.
func (z *Zone) AbbrevAt(utc civil.Instant) string {
	if z.IsDST(utc) {
		return z.dst.abbrev
	}
	return z.std.abbrev
}

// OffsetForLocal returns the offset in seconds east of universal time for
// a local wall-clock reading.
//
// Near the end of daylight saving time a local reading can be valid under
// both offsets; the numerically smaller offset wins. This is a fixed
// tie-break, not always standard time: a zone whose daylight offset is
// smaller than its standard offset resolves in favor of daylight time.
//
// A reading inside the gap skipped at the start of daylight saving time
// exists under neither offset and yields a *NonexistentTimeError.
func (z *Zone) OffsetForLocal(local civil.Instant) (int, error) {
	sec := clampSec(local.Sec)
	if z.dst == nil {
		return z.std.offset, nil
	}

	// Try both offsets and keep the ones that are self-consistent: assuming
	// the standard offset must land on a UTC instant outside daylight
	// saving time, assuming the daylight offset must land inside it.
	reading := civil.Instant{Day: local.Day, Sec: sec}
	stdUTC := reading.AddSeconds(-z.std.offset)
	dstUTC := reading.AddSeconds(-z.dst.offset)
	stdOK := !z.isDST(stdUTC.Day, stdUTC.Sec)
	dstOK := z.isDST(dstUTC.Day, dstUTC.Sec)

	switch {
	case stdOK && dstOK:
		return min(z.std.offset, z.dst.offset), nil
	case stdOK:
		return z.std.offset, nil
	case dstOK:
		return z.dst.offset, nil
	default:
		return 0, &NonexistentTimeError{Zone: z.name, Day: local.Day, Sec: sec}
	}
}

// Transitions returns the UTC instants at which daylight saving time
// starts and ends in the given year. ok is false for fixed-offset zones.
func (z *Zone) Transitions(year int) (start, end civil.Instant, ok bool) {
	if z.dst == nil {
		return civil.Instant{}, civil.Instant{}, false
	}
	return occurrenceIn(z.dst.start, year), occurrenceIn(z.dst.end, year), true
}

// occurrenceIn resolves a change rule to its UTC instant in a given year.
// The trigger can carry the instant across a day or, for rules near the
// turn of the year, a year boundary.
func occurrenceIn(r changeRule, year int) civil.Instant {
	day := gregorian.ToDayNumber(year, 1, 1) + int64(r.day.dayOfYear(year)-1)
	return civil.Instant{Day: day}.AddSeconds(r.trigger)
}

// isDST implements the transition determination for a UTC instant given as
// day number and pre-clamped seconds-of-day.
//
// For each of the two rules independently it finds the most recent
// transition at or before the instant, searching backward from the year
// after the instant's. Daylight saving time is in effect exactly when the
// most recent transition of either kind was a start transition.
func (z *Zone) isDST(day int64, sec int) bool {
	year, doy := gregorian.YearAndDay(day)
	// Seconds since the start of the instant's year. Only used for
	// comparisons within this search, where both sides use the same
	// coordinate, so the year's own start is an arbitrary zero.
	soy := int64(doy-1)*civil.SecondsPerDay + int64(sec)

	start := latestOccurrence(z.dst.start, year, soy)
	end := latestOccurrence(z.dst.end, year, soy)
	return start > end
}

// latestOccurrence returns, in the seconds-since-start-of-year coordinate
// of the base year, the most recent occurrence of the rule at or before
// soy. The search starts one year ahead because a trigger can push an
// occurrence past its calendar year.
func latestOccurrence(r changeRule, year int, soy int64) int64 {
	y := year + 1
	shift := int64(gregorian.YearLength(year)) // days from start of year to start of y
	for i := 0; i < maxRuleSearchYears; i++ {
		v := (shift+int64(r.day.dayOfYear(y)-1))*civil.SecondsPerDay + int64(r.trigger)
		if v <= soy {
			return v
		}
		y--
		shift -= int64(gregorian.YearLength(y))
	}
	panic(fmt.Sprintf("tzstring: internal: no occurrence of rule %s within %d years", r.day, maxRuleSearchYears))
}

// dayOfYear resolves the rule to a 1-based day of the given year.
func (r DayRule) dayOfYear(year int) int {
	switch r.Form {
	case JulianDay:
		if r.Num < 60 {
			return r.Num
		}
		// Skip the leap day: in leap years everything from March 1
		// on shifts by one.
		return gregorian.YearLength(year) - 365 + r.Num
	case ZeroBasedDay:
		return r.Num + 1
	case MonthWeekDay:
		// First candidate day of the selected week, then advance to
		// the first matching weekday at or after it. Week 5 selects
		// from the last seven days of the month.
		var first int
		if r.Week == 5 {
			first = gregorian.DaysInMonth(year, r.Month) - 6
		} else {
			first = (r.Week-1)*7 + 1
		}
		wd := gregorian.Weekday(year, r.Month, first)
		day := first + (r.Weekday-wd+7)%7
		return gregorian.DayOfYear(year, r.Month, day)
	default:
		panic(fmt.Sprintf("tzstring: invalid day rule form: %d", r.Form))
	}
}

// clampSec clamps a seconds-of-day reading to the last representable
// second of the day. A reading of 86400 denotes a leap second, which the
// evaluation model folds into 23:59:59.
func clampSec(sec int) int {
	if sec >= civil.SecondsPerDay {
		return civil.SecondsPerDay - 1
	}
	return sec
}
