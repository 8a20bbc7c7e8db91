// Package tzstring parses POSIX TZ environment strings such as
// "EST5EDT,M3.2.0,M11.1.0" and evaluates the resulting zones: for any UTC
// instant or local wall-clock reading it answers which offset applies, its
// abbreviation and whether daylight saving time is in effect.
//
// The accepted syntax is the one specified for the TZ environment variable
// in Section 8.3 of the "Base Definitions" volume of POSIX, restricted to
// zones with at most one daylight saving period per year. Historical zone
// databases are out of scope; see the TZif footer of RFC8536 for where
// these strings appear in compiled zone data.
package tzstring

import "fmt"

// Zone is a timezone parsed from a TZ string. It either has a fixed offset
// from universal time or alternates between a standard and a daylight
// saving offset once per year.
//
// A Zone is immutable. Any number of goroutines may query the same Zone
// concurrently without synchronization.
type Zone struct {
	tz   string // the TZ string the zone was parsed from
	name string // display name, defaults to tz
	std  variant
	dst  *dstRules // nil for fixed-offset zones
}

// variant is one of the two offsets a zone can apply.
type variant struct {
	abbrev string
	offset int // seconds east of universal time
}

// dstRules describes the daylight saving variant of a zone and the two
// rules governing when it begins and ends.
type dstRules struct {
	variant
	start changeRule
	end   changeRule
}

// changeRule is a yearly transition: a day rule plus the time of day the
// change happens at.
type changeRule struct {
	day   DayRule
	clock int // local seconds-of-day stated in the TZ string, default 02:00:00
	// trigger is the transition time as UTC seconds relative to midnight
	// of the rule day. It is precomputed as clock minus the offset that
	// prevails immediately before the change.
	trigger int
}

// DayRuleForm is the form of a DayRule.
type DayRuleForm int

const (
	// JulianDay is the "Jn" form: day n of the year, 1 <= n <= 365,
	// with February 29 never counted. Day 59 is February 28 in all years.
	JulianDay DayRuleForm = iota
	// ZeroBasedDay is the "n" form: zero-based day n of the year,
	// 0 <= n <= 365, with February 29 counted in leap years.
	ZeroBasedDay
	// MonthWeekDay is the "Mm.w.d" form: weekday d of week w of month m.
	// Week 5 stands for the last d of the month.
	MonthWeekDay
)

func (f DayRuleForm) String() string {
	switch f {
	case JulianDay:
		return "JulianDay"
	case ZeroBasedDay:
		return "ZeroBasedDay"
	case MonthWeekDay:
		return "MonthWeekDay"
	default:
		return "<UNDEFINED>"
	}
}

// DayRule selects one day of a given year.
type DayRule struct {
	// Form is the form of the rule and decides which of the
	// remaining fields are meaningful.
	Form DayRuleForm
	// Num is the day number for the JulianDay and ZeroBasedDay forms.
	Num int
	// Month (1-12), Week (1-5) and Weekday (0=Sunday) describe the
	// MonthWeekDay form.
	Month, Week, Weekday int
}

// String renders the rule in TZ string syntax, e.g. "J59" or "M3.2.0".
func (r DayRule) String() string {
	switch r.Form {
	case JulianDay:
		return fmt.Sprintf("J%d", r.Num)
	case ZeroBasedDay:
		return fmt.Sprintf("%d", r.Num)
	case MonthWeekDay:
		return fmt.Sprintf("M%d.%d.%d", r.Month, r.Week, r.Weekday)
	default:
		return "<UNDEFINED>"
	}
}

// ChangeRule is the public view of a yearly transition rule.
type ChangeRule struct {
	// Day selects the day of the year the transition happens on.
	Day DayRule
	// Clock is the local time of day the transition happens at, in
	// seconds since midnight, interpreted in the offset that prevails
	// immediately before the change.
	Clock int
}

// String returns the TZ string the zone was parsed from.
func (z *Zone) String() string {
	return z.tz
}

// Name returns the display name of the zone.
// It defaults to the TZ string unless overridden with WithName.
func (z *Zone) Name() string {
	return z.name
}

// WithName returns a copy of the zone with the display name replaced.
func (z *Zone) WithName(name string) *Zone {
	c := *z
	c.name = name
	return &c
}

// HasDST reports whether the zone observes daylight saving time.
func (z *Zone) HasDST() bool {
	return z.dst != nil
}

// StdAbbrev returns the abbreviation of standard time, e.g. "EST".
func (z *Zone) StdAbbrev() string {
	return z.std.abbrev
}

// StdOffset returns the standard time offset in seconds east of
// universal time.
func (z *Zone) StdOffset() int {
	return z.std.offset
}

// DSTAbbrev returns the abbreviation of daylight saving time.
// The second return value is false for fixed-offset zones.
func (z *Zone) DSTAbbrev() (string, bool) {
	if z.dst == nil {
		return "", false
	}
	return z.dst.abbrev, true
}

// DSTOffset returns the daylight saving time offset in seconds east of
// universal time. The second return value is false for fixed-offset zones.
func (z *Zone) DSTOffset() (int, bool) {
	if z.dst == nil {
		return 0, false
	}
	return z.dst.offset, true
}

// ChangeRules returns the rules governing the start and end of daylight
// saving time. ok is false for fixed-offset zones.
func (z *Zone) ChangeRules() (start, end ChangeRule, ok bool) {
	if z.dst == nil {
		return ChangeRule{}, ChangeRule{}, false
	}
	start = ChangeRule{Day: z.dst.start.day, Clock: z.dst.start.clock}
	end = ChangeRule{Day: z.dst.end.day, Clock: z.dst.end.clock}
	return start, end, true
}

// FormatOffset renders an offset in seconds east of universal time as
// [+-]hh, [+-]hh:mm or [+-]hh:mm:ss, using the shortest form that does
// not lose information.
func FormatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	switch {
	case s != 0:
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	case m != 0:
		return fmt.Sprintf("%s%02d:%02d", sign, h, m)
	default:
		return fmt.Sprintf("%s%02d", sign, h)
	}
}
