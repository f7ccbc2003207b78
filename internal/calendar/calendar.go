// Package calendar converts dates between the Gregorian (AD) and Bikram
// Sambat (BS) calendars.
//
// BS month lengths follow no formula, so conversion walks a fixed table that
// covers BS 2000–2090. Both directions count whole days from a single
// reference pair: 1943-04-14 AD is 2000-01-01 BS.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinBSYear = 2000
	MaxBSYear = 2090
	MinADYear = 1943
	MaxADYear = 2033
)

var (
	// Epoch is the Gregorian side of the reference pair.
	Epoch = GregorianDate{Year: 1943, Month: 4, Day: 14}
	// EpochBS is the BS side of the reference pair.
	EpochBS = BSDate{Year: MinBSYear, Month: 1, Day: 1}
)

// epochOffset is the number of days from 1943-01-01 to Epoch.
const epochOffset = 103

var (
	ErrOutOfRange = errors.New("date out of supported range")
	ErrInvalidDay = errors.New("invalid day for month")
)

// DateError records the input that a conversion rejected.
type DateError struct {
	Op       string
	Calendar string
	Year     int
	Month    int
	Day      int
	Err      error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("calendar: %s %s %04d-%02d-%02d: %v", e.Op, e.Calendar, e.Year, e.Month, e.Day, e.Err)
}

func (e *DateError) Unwrap() error { return e.Err }

type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// FromTime takes the calendar date of t in t's location.
func FromTime(t time.Time) GregorianDate {
	return GregorianDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d GregorianDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d GregorianDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

type BSDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d BSDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Weekday is the day of the week the BS date falls on.
func (d BSDate) Weekday() (time.Weekday, error) {
	ad, err := ToGregorian(d)
	if err != nil {
		return 0, err
	}
	return ad.Weekday(), nil
}

// IsLeapYear applies the Gregorian leap-year rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInGregorianMonth returns 0 for a month outside 1..12.
func DaysInGregorianMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return gregorianMonthDays[month-1]
}

// DaysInMonth returns the length of a BS month from the table.
func DaysInMonth(year, month int) (int, error) {
	if year < MinBSYear || year > MaxBSYear || month < 1 || month > 12 {
		return 0, &DateError{Op: "DaysInMonth", Calendar: "BS", Year: year, Month: month, Err: ErrOutOfRange}
	}
	return int(monthDays[year-MinBSYear][month-1]), nil
}

// DaysInYear sums the twelve month lengths of a BS year.
func DaysInYear(year int) (int, error) {
	if year < MinBSYear || year > MaxBSYear {
		return 0, &DateError{Op: "DaysInYear", Calendar: "BS", Year: year, Err: ErrOutOfRange}
	}
	total := 0
	for _, n := range monthDays[year-MinBSYear] {
		total += int(n)
	}
	return total, nil
}

// ToBS converts a Gregorian date to BS. Dates outside 1943-04-14..2033-12-31
// fail with ErrOutOfRange; an impossible day of month fails with ErrInvalidDay.
func ToBS(d GregorianDate) (BSDate, error) {
	fail := func(err error) (BSDate, error) {
		return BSDate{}, &DateError{Op: "ToBS", Calendar: "AD", Year: d.Year, Month: d.Month, Day: d.Day, Err: err}
	}

	if d.Year < MinADYear || d.Year > MaxADYear || d.Month < 1 || d.Month > 12 {
		return fail(ErrOutOfRange)
	}
	if d.Day < 1 || d.Day > DaysInGregorianMonth(d.Year, d.Month) {
		return fail(ErrInvalidDay)
	}

	remaining := daysSinceADStart(d) - epochOffset
	if remaining < 0 {
		// The table starts at the epoch; earlier 1943 dates have no BS year.
		return fail(ErrOutOfRange)
	}

	year, month := MinBSYear, 1
	for {
		length := int(monthDays[year-MinBSYear][month-1])
		if remaining < length {
			break
		}
		remaining -= length
		month++
		if month > 12 {
			month = 1
			year++
		}
		if year > MaxBSYear {
			return fail(ErrOutOfRange)
		}
	}

	return BSDate{Year: year, Month: month, Day: remaining + 1}, nil
}

// ToGregorian converts a BS date in the table range to its Gregorian date.
func ToGregorian(d BSDate) (GregorianDate, error) {
	fail := func(err error) (GregorianDate, error) {
		return GregorianDate{}, &DateError{Op: "ToGregorian", Calendar: "BS", Year: d.Year, Month: d.Month, Day: d.Day, Err: err}
	}

	if d.Year < MinBSYear || d.Year > MaxBSYear || d.Month < 1 || d.Month > 12 {
		return fail(ErrOutOfRange)
	}
	if d.Day < 1 || d.Day > int(monthDays[d.Year-MinBSYear][d.Month-1]) {
		return fail(ErrInvalidDay)
	}

	offset := daysSinceBSStart(d)
	t := time.Date(Epoch.Year, time.Month(Epoch.Month), Epoch.Day+offset, 0, 0, 0, 0, time.UTC)
	return FromTime(t), nil
}

// daysSinceADStart counts days from 1943-01-01 to d.
func daysSinceADStart(d GregorianDate) int {
	total := 0
	for y := MinADYear; y < d.Year; y++ {
		if IsLeapYear(y) {
			total += 366
		} else {
			total += 365
		}
	}
	for m := 1; m < d.Month; m++ {
		total += DaysInGregorianMonth(d.Year, m)
	}
	return total + d.Day - 1
}

// daysSinceBSStart counts days from EpochBS to d. d must be valid.
func daysSinceBSStart(d BSDate) int {
	total := 0
	for y := MinBSYear; y < d.Year; y++ {
		for _, n := range monthDays[y-MinBSYear] {
			total += int(n)
		}
	}
	for m := 1; m < d.Month; m++ {
		total += int(monthDays[d.Year-MinBSYear][m-1])
	}
	return total + d.Day - 1
}
