package calendar

import (
	"time"
	_ "time/tzdata"
)

// Cell is one day in a BS month grid.
type Cell struct {
	BS      BSDate
	AD      GregorianDate
	Weekday time.Weekday
}

// IsHoliday reports the weekly public holiday (Saturday).
func (c Cell) IsHoliday() bool {
	return c.Weekday == time.Saturday
}

// MonthGrid lays a BS month out in Sunday-first weeks. Nil cells pad the
// first and last week.
type MonthGrid struct {
	Year  int
	Month int
	Weeks [][]*Cell
}

func BuildMonthGrid(year, month int) (MonthGrid, error) {
	days, err := DaysInMonth(year, month)
	if err != nil {
		return MonthGrid{}, err
	}

	first, err := ToGregorian(BSDate{Year: year, Month: month, Day: 1})
	if err != nil {
		return MonthGrid{}, err
	}
	start := first.Time()
	lead := int(start.Weekday())

	grid := MonthGrid{Year: year, Month: month}
	week := make([]*Cell, lead, 7)
	for day := 1; day <= days; day++ {
		t := start.AddDate(0, 0, day-1)
		week = append(week, &Cell{
			BS:      BSDate{Year: year, Month: month, Day: day},
			AD:      FromTime(t),
			Weekday: t.Weekday(),
		})
		if len(week) == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = make([]*Cell, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, nil)
		}
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid, nil
}

// NextMonth steps one BS month forward within the table.
func NextMonth(year, month int) (int, int, error) {
	if _, err := DaysInMonth(year, month); err != nil {
		return 0, 0, err
	}
	month++
	if month > 12 {
		month = 1
		year++
	}
	if year > MaxBSYear {
		return 0, 0, &DateError{Op: "NextMonth", Calendar: "BS", Year: year, Month: month, Err: ErrOutOfRange}
	}
	return year, month, nil
}

// PrevMonth steps one BS month back within the table.
func PrevMonth(year, month int) (int, int, error) {
	if _, err := DaysInMonth(year, month); err != nil {
		return 0, 0, err
	}
	month--
	if month < 1 {
		month = 12
		year--
	}
	if year < MinBSYear {
		return 0, 0, &DateError{Op: "PrevMonth", Calendar: "BS", Year: year, Month: month, Err: ErrOutOfRange}
	}
	return year, month, nil
}

var nepalLocation = loadNepalLocation()

func loadNepalLocation() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kathmandu"); err == nil {
		return loc
	}
	return time.UTC
}

// Today returns the date in Nepal at instant now in both calendars.
func Today(now time.Time) (GregorianDate, BSDate, error) {
	ad := FromTime(now.In(nepalLocation))
	bs, err := ToBS(ad)
	if err != nil {
		return ad, BSDate{}, err
	}
	return ad, bs, nil
}
