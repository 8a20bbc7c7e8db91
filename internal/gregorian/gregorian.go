// Package gregorian implements calendar math for the proleptic Gregorian
// calendar: leap years, month lengths, weekdays, day-of-year numbering and
// conversions between civil dates and linear day numbers.
//
// Day numbers count days since the calendar epoch, with day 1 being
// 0001-01-01 (Rata Die). Day-of-year numbering is 1-based, with day 1
// being January 1.
package gregorian

// IsLeap determines if the year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// YearLength returns the number of days in the year, 365 or 366.
func YearLength(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in a given month for a specific year.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if IsLeap(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// daysBeforeMonth[m-1] is the number of days in a non-leap year
// before the first day of month m.
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DayOfYear returns the 1-based day of the year for a given date.
func DayOfYear(year, month, day int) int {
	doy := daysBeforeMonth[month-1] + day
	if month > 2 && IsLeap(year) {
		doy++
	}
	return doy
}

// Weekday calculates the day of the week for a given date,
// where 0=Sunday, 1=Monday, ..., 6=Saturday.
func Weekday(year, month, day int) int {
	// Zeller's Congruence algorithm adjustment for Gregorian calendar
	if month < 3 {
		month += 12
		year -= 1
	}
	k := year % 100
	j := year / 100
	h := (day + ((13 * (month + 1)) / 5) + k + (k / 4) + (j / 4) + (5 * j)) % 7
	// Adjust result to fit Sunday=0, Monday=1, ..., Saturday=6
	return (h + 6) % 7
}

const (
	daysPer400Years = 365*400 + 97

	// Offset between the era-based day count used below, which is
	// relative to 0000-03-01, and Rata Die day numbers.
	eraToRataDie = -305
)

// ToDayNumber converts a civil date to its day number.
// The calculation shifts the year to start in March so that the leap day,
// if any, is the last day of the shifted year.
func ToDayNumber(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	mp := month + 9
	if month > 2 {
		mp = month - 3
	}
	doy := int64((153*mp+2)/5 + day - 1)      // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy    // [0, 146096]
	return era*daysPer400Years + doe + eraToRataDie
}

// FromDayNumber converts a day number back to its civil date.
func FromDayNumber(n int64) (year, month, day int) {
	z := n - eraToRataDie
	era := floorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years                                   // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365           // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)                         // [0, 365]
	mp := (5*doy + 2) / 153                                          // [0, 11]
	day = int(doy - (153*mp+2)/5 + 1)
	month = int(mp) + 3
	if mp >= 10 {
		month = int(mp) - 9
	}
	if month <= 2 {
		y++
	}
	return int(y), month, day
}

// YearAndDay returns the year a day number falls in
// and its 1-based day of that year.
func YearAndDay(n int64) (year, doy int) {
	y, m, d := FromDayNumber(n)
	return y, DayOfYear(y, m, d)
}

// floorDiv divides a by b, rounding towards negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
