package tzstring

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Parse, wrapped with detail, when a TZ string
// does not match the grammar. The whole string is rejected; there is no
// partial recovery.
var ErrInvalid = errors.New("invalid TZ string")

const (
	// maxOffsetSeconds is the largest offset magnitude, 24:59:59.
	maxOffsetSeconds = 24*3600 + 59*60 + 59

	// defaultRuleClock is the time of day a change rule applies at if the
	// TZ string does not state one, 02:00:00 local time.
	defaultRuleClock = 2 * 3600
)

// Default change rules applied when a TZ string names a daylight saving
// variant but states no rules: last Sunday of April until last Sunday of
// October. This long-standing default predates the current US rules and is
// kept as-is for compatibility.
var (
	defaultStartRule = DayRule{Form: MonthWeekDay, Month: 4, Week: 5, Weekday: 0}
	defaultEndRule   = DayRule{Form: MonthWeekDay, Month: 10, Week: 5, Weekday: 0}
)

// Parse parses a TZ string into a Zone.
//
// The spec says:
//
//	If TZ is of the [expanded] form, it specifies a geographical timezone:
//
//	    stdoffset[dst[offset][,start[/time],end[/time]]]
//
//	Where: std and dst indicate no less than three, nor more than
//	{TZNAME_MAX}, bytes that are the designation for the standard (std) or
//	the alternative (dst - such as Daylight Savings Time) timezone. [...]
//	If preceded by a '<', all characters up to a '>' are used; otherwise
//	only alphabetic characters are allowed.
//
// The returned error wraps ErrInvalid if the string does not match the
// grammar in its entirety.
func Parse(tz string) (*Zone, error) {
	p := &parser{input: tz}
	z, err := p.zone()
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalid, tz, err)
	}
	return z, nil
}

// parser is a cursor over a TZ string. All parse methods consume from pos.
type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) expect(c byte) error {
	if p.eof() || p.input[p.pos] != c {
		return fmt.Errorf("expected %q at position %d", string(c), p.pos)
	}
	p.pos++
	return nil
}

// zone parses the entire TZ string.
func (p *parser) zone() (*Zone, error) {
	z := &Zone{tz: p.input, name: p.input}

	var err error
	if z.std.abbrev, err = p.abbrev(); err != nil {
		return nil, fmt.Errorf("standard designation: %w", err)
	}
	if z.std.offset, err = p.offset(); err != nil {
		return nil, fmt.Errorf("standard offset: %w", err)
	}
	if p.eof() {
		return z, nil // fixed-offset zone
	}

	dst := &dstRules{}
	if dst.abbrev, err = p.abbrev(); err != nil {
		return nil, fmt.Errorf("daylight saving designation: %w", err)
	}
	if c := p.peek(); c == '+' || c == '-' || isDigit(c) {
		if dst.offset, err = p.offset(); err != nil {
			return nil, fmt.Errorf("daylight saving offset: %w", err)
		}
	} else {
		// The spec says: "If no offset follows dst, the alternative
		// time is assumed to be one hour ahead of standard time."
		dst.offset = z.std.offset + 3600
	}

	if p.eof() {
		dst.start = newChangeRule(defaultStartRule, defaultRuleClock, z.std.offset)
		dst.end = newChangeRule(defaultEndRule, defaultRuleClock, dst.offset)
		z.dst = dst
		return z, nil
	}

	if err := p.expect(','); err != nil {
		return nil, err
	}
	if dst.start, err = p.changeRule(z.std.offset); err != nil {
		return nil, fmt.Errorf("start rule: %w", err)
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	if dst.end, err = p.changeRule(dst.offset); err != nil {
		return nil, fmt.Errorf("end rule: %w", err)
	}
	if !p.eof() {
		return nil, fmt.Errorf("trailing characters at position %d", p.pos)
	}
	z.dst = dst
	return z, nil
}

// newChangeRule precomputes the transition trigger: the stated clock time
// is interpreted in the offset in effect just before the change, so the
// trigger in UTC seconds relative to midnight of the rule day is the clock
// time minus that offset.
func newChangeRule(day DayRule, clock, prevailingOffset int) changeRule {
	return changeRule{day: day, clock: clock, trigger: clock - prevailingOffset}
}

// abbrev parses a timezone designation: either at least three alphabetic
// characters, or, bracketed by '<' and '>', at least three characters from
// the set of alphanumerics, '+' and '-'.
func (p *parser) abbrev() (string, error) {
	if p.peek() == '<' {
		p.pos++
		start := p.pos
		for !p.eof() && p.input[p.pos] != '>' {
			if !isAbbrevChar(p.input[p.pos]) {
				return "", fmt.Errorf("invalid character %q in quoted designation", string(p.input[p.pos]))
			}
			p.pos++
		}
		if p.eof() {
			return "", fmt.Errorf("unterminated quoted designation")
		}
		a := p.input[start:p.pos]
		p.pos++ // consume '>'
		if len(a) < 3 {
			return "", fmt.Errorf("designation %q shorter than three characters", a)
		}
		return a, nil
	}

	start := p.pos
	for !p.eof() && isAlpha(p.input[p.pos]) {
		p.pos++
	}
	a := p.input[start:p.pos]
	if len(a) < 3 {
		return "", fmt.Errorf("designation %q shorter than three characters", a)
	}
	return a, nil
}

// offset parses a signed offset of the form [+-]hh[:mm[:ss]] and returns
// seconds east of universal time.
//
// The spec says:
//
//	Indicates the value added to the local time to arrive at Coordinated
//	Universal Time. [...] If preceded by a '-', the timezone shall be
//	east of the Prime Meridian; otherwise, it shall be west (which may be
//	indicated by an optional preceding '+').
//
// A TZ offset therefore has its sign inverted relative to the returned
// east-of-UT convention: "EST5" yields -18000.
func (p *parser) offset() (int, error) {
	east := false
	switch p.peek() {
	case '-':
		east = true
		p.pos++
	case '+':
		p.pos++
	}
	secs, err := p.timeOfDay()
	if err != nil {
		return 0, err
	}
	if east {
		return secs, nil
	}
	return -secs, nil // normalizes "-0" and "+0" alike to 0
}

// timeOfDay parses hh[:mm[:ss]] with hours in 0..24 and minutes and
// seconds in 0..59, bounding the total at 24:59:59.
func (p *parser) timeOfDay() (int, error) {
	h, err := p.number(0, 24, "hours")
	if err != nil {
		return 0, err
	}
	secs := h * 3600
	if p.peek() != ':' {
		return secs, nil
	}
	p.pos++
	m, err := p.number(0, 59, "minutes")
	if err != nil {
		return 0, err
	}
	secs += m * 60
	if p.peek() != ':' {
		return secs, nil
	}
	p.pos++
	s, err := p.number(0, 59, "seconds")
	if err != nil {
		return 0, err
	}
	secs += s
	if secs > maxOffsetSeconds {
		return 0, fmt.Errorf("time %d out of range", secs)
	}
	return secs, nil
}

// changeRule parses a day rule with an optional "/time" suffix.
// prevailingOffset is the offset in effect just before the change.
func (p *parser) changeRule(prevailingOffset int) (changeRule, error) {
	day, err := p.dayRule()
	if err != nil {
		return changeRule{}, err
	}
	clock := defaultRuleClock
	if p.peek() == '/' {
		p.pos++
		clock, err = p.timeOfDay()
		if err != nil {
			return changeRule{}, err
		}
	}
	return newChangeRule(day, clock, prevailingOffset), nil
}

// dayRule parses one of the three day rule forms.
//
// The spec says:
//
//	Jn   The Julian day n (1 <= n <= 365). Leap days shall not be
//	     counted. That is, in all years - including leap years - February
//	     28 is day 59 and March 1 is day 60. It is impossible to refer
//	     explicitly to the occasional February 29.
//
//	n    The zero-based Julian day (0 <= n <= 365). Leap days shall be
//	     counted, and it is possible to refer to February 29.
//
//	Mm.n.d
//	     The d'th day (0 <= d <= 6) of week n of month m of the year
//	     (1 <= n <= 5, 1 <= m <= 12, where week 5 means "the last d day
//	     in month m" which may occur in either the fourth or the fifth
//	     week). Week 1 is the first week in which the d'th day occurs.
//	     Day zero is Sunday.
func (p *parser) dayRule() (DayRule, error) {
	switch {
	case p.peek() == 'J':
		p.pos++
		n, err := p.number(1, 365, "Julian day")
		if err != nil {
			return DayRule{}, err
		}
		return DayRule{Form: JulianDay, Num: n}, nil
	case p.peek() == 'M':
		p.pos++
		m, err := p.number(1, 12, "month")
		if err != nil {
			return DayRule{}, err
		}
		if err := p.expect('.'); err != nil {
			return DayRule{}, err
		}
		w, err := p.number(1, 5, "week")
		if err != nil {
			return DayRule{}, err
		}
		if err := p.expect('.'); err != nil {
			return DayRule{}, err
		}
		d, err := p.number(0, 6, "weekday")
		if err != nil {
			return DayRule{}, err
		}
		return DayRule{Form: MonthWeekDay, Month: m, Week: w, Weekday: d}, nil
	case isDigit(p.peek()):
		n, err := p.number(0, 365, "day")
		if err != nil {
			return DayRule{}, err
		}
		return DayRule{Form: ZeroBasedDay, Num: n}, nil
	default:
		return DayRule{}, fmt.Errorf("expected day rule at position %d", p.pos)
	}
}

// number parses an unsigned decimal integer and checks it against the
// inclusive range [min, max].
func (p *parser) number(min, max int, what string) (int, error) {
	start := p.pos
	n := 0
	for !p.eof() && isDigit(p.input[p.pos]) {
		n = n*10 + int(p.input[p.pos]-'0')
		if n > 1<<24 {
			return 0, fmt.Errorf("%s out of range", what)
		}
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected %s at position %d", what, p.pos)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%s %d out of range %d..%d", what, n, min, max)
	}
	return n, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAbbrevChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '+' || c == '-'
}
