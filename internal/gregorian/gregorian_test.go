package gregorian

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsLeap(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{1999, false},
		{2000, true}, // divisible by 400
		{2020, true},
		{2021, false},
		{1900, false}, // divisible by 100 but not 400
		{2400, true},
		{4, true},
		{1, false},
	}
	for _, c := range cases {
		if got := IsLeap(c.year); got != c.want {
			t.Errorf("IsLeap(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month int
		want        int
	}{
		{2020, 2, 29},
		{2021, 2, 28},
		{2021, 1, 31},
		{2021, 4, 30},
		{2021, 12, 31},
		{1900, 2, 28},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	cases := []struct {
		year, month, day int
		want             int
	}{
		{2020, 3, 8, 0},   // Sunday
		{2020, 11, 1, 0},  // Sunday
		{2020, 2, 29, 6},  // Saturday
		{2021, 1, 1, 5},   // Friday
		{2000, 1, 1, 6},   // Saturday
		{1970, 1, 1, 4},   // Thursday
		{1, 1, 1, 1},      // Monday, proleptic
	}
	for _, c := range cases {
		if got := Weekday(c.year, c.month, c.day); got != c.want {
			t.Errorf("Weekday(%d, %d, %d) = %d, want %d", c.year, c.month, c.day, got, c.want)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	cases := []struct {
		year, month, day int
		want             int
	}{
		{2021, 1, 1, 1},
		{2021, 2, 28, 59},
		{2021, 3, 1, 60},
		{2020, 2, 28, 59},
		{2020, 2, 29, 60},
		{2020, 3, 1, 61},
		{2020, 12, 31, 366},
		{2021, 12, 31, 365},
	}
	for _, c := range cases {
		if got := DayOfYear(c.year, c.month, c.day); got != c.want {
			t.Errorf("DayOfYear(%d, %d, %d) = %d, want %d", c.year, c.month, c.day, got, c.want)
		}
	}
}

func TestDayNumberConversions(t *testing.T) {
	type date struct {
		Year, Month, Day int
	}
	cases := []struct {
		date date
		num  int64
	}{
		{date{1, 1, 1}, 1}, // epoch
		{date{1970, 1, 1}, 719163},
		{date{2000, 3, 1}, 730180},
		{date{2020, 3, 8}, 737492},
		{date{2020, 11, 1}, 737730},
	}
	for _, c := range cases {
		if got := ToDayNumber(c.date.Year, c.date.Month, c.date.Day); got != c.num {
			t.Errorf("ToDayNumber(%+v) = %d, want %d", c.date, got, c.num)
		}
		y, m, d := FromDayNumber(c.num)
		if diff := cmp.Diff(c.date, date{y, m, d}); diff != "" {
			t.Errorf("FromDayNumber(%d) mismatch (-want +got):\n%s", c.num, diff)
		}
	}
}

func TestDayNumberRoundTrip(t *testing.T) {
	// Walk a leap year boundary day by day and make sure the conversions
	// agree in both directions.
	n := ToDayNumber(2019, 12, 1)
	for i := 0; i < 500; i++ {
		y, m, d := FromDayNumber(n)
		if got := ToDayNumber(y, m, d); got != n {
			t.Fatalf("round trip of day %d gave %d (%04d-%02d-%02d)", n, got, y, m, d)
		}
		if m == 1 && d == 1 {
			if doy := DayOfYear(y, 1, 1); doy != 1 {
				t.Fatalf("DayOfYear(%d, 1, 1) = %d, want 1", y, doy)
			}
		}
		n++
	}
}

func TestYearAndDay(t *testing.T) {
	cases := []struct {
		num      int64
		year, doy int
	}{
		{ToDayNumber(2020, 1, 1), 2020, 1},
		{ToDayNumber(2020, 12, 31), 2020, 366},
		{ToDayNumber(2021, 12, 31), 2021, 365},
		{ToDayNumber(2020, 3, 8), 2020, 68},
		{ToDayNumber(2020, 11, 1), 2020, 306},
	}
	for _, c := range cases {
		y, doy := YearAndDay(c.num)
		if y != c.year || doy != c.doy {
			t.Errorf("YearAndDay(%d) = (%d, %d), want (%d, %d)", c.num, y, doy, c.year, c.doy)
		}
	}
}
