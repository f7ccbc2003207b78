package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestEpochIsFixedPoint(t *testing.T) {
	bs, err := ToBS(Epoch)
	if err != nil {
		t.Fatalf("ToBS(epoch): %v", err)
	}
	if bs != EpochBS {
		t.Errorf("ToBS(epoch) = %v, want %v", bs, EpochBS)
	}

	ad, err := ToGregorian(EpochBS)
	if err != nil {
		t.Fatalf("ToGregorian(epoch): %v", err)
	}
	if ad != Epoch {
		t.Errorf("ToGregorian(epoch) = %v, want %v", ad, Epoch)
	}
}

func TestKnownDates(t *testing.T) {
	tests := []struct {
		ad GregorianDate
		bs BSDate
	}{
		{GregorianDate{2023, 4, 14}, BSDate{2080, 1, 1}},
		{GregorianDate{2024, 4, 13}, BSDate{2081, 1, 1}},
		{GregorianDate{2025, 9, 17}, BSDate{2082, 6, 1}},
		{GregorianDate{1943, 4, 15}, BSDate{2000, 1, 2}},
	}

	for _, tt := range tests {
		got, err := ToBS(tt.ad)
		if err != nil {
			t.Errorf("ToBS(%v): %v", tt.ad, err)
			continue
		}
		if got != tt.bs {
			t.Errorf("ToBS(%v) = %v, want %v", tt.ad, got, tt.bs)
		}

		back, err := ToGregorian(tt.bs)
		if err != nil {
			t.Errorf("ToGregorian(%v): %v", tt.bs, err)
			continue
		}
		if back != tt.ad {
			t.Errorf("ToGregorian(%v) = %v, want %v", tt.bs, back, tt.ad)
		}
	}
}

func TestBSRoundTripWholeTable(t *testing.T) {
	for year := MinBSYear; year <= MaxBSYear; year++ {
		for month := 1; month <= 12; month++ {
			days, err := DaysInMonth(year, month)
			if err != nil {
				t.Fatalf("DaysInMonth(%d, %d): %v", year, month, err)
			}
			for day := 1; day <= days; day++ {
				bs := BSDate{year, month, day}
				ad, err := ToGregorian(bs)
				if err != nil {
					t.Fatalf("ToGregorian(%v): %v", bs, err)
				}
				if ad.Year > MaxADYear {
					// The last BS year runs past the Gregorian range.
					continue
				}
				back, err := ToBS(ad)
				if err != nil {
					t.Fatalf("ToBS(%v): %v", ad, err)
				}
				if back != bs {
					t.Fatalf("round trip %v -> %v -> %v", bs, ad, back)
				}
			}
		}
	}
}

func TestADRoundTripAndContinuity(t *testing.T) {
	start := Epoch.Time()
	end := time.Date(MaxADYear, 12, 31, 0, 0, 0, 0, time.UTC)

	var prev BSDate
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		ad := FromTime(cur)
		bs, err := ToBS(ad)
		if err != nil {
			t.Fatalf("ToBS(%v): %v", ad, err)
		}
		back, err := ToGregorian(bs)
		if err != nil {
			t.Fatalf("ToGregorian(%v): %v", bs, err)
		}
		if back != ad {
			t.Fatalf("round trip %v -> %v -> %v", ad, bs, back)
		}

		if cur.After(start) {
			want := prev
			want.Day++
			length, _ := DaysInMonth(prev.Year, prev.Month)
			if want.Day > length {
				want.Day = 1
				want.Month++
				if want.Month > 12 {
					want.Month = 1
					want.Year++
				}
			}
			if bs != want {
				t.Fatalf("day after %v is %v, want %v", prev, bs, want)
			}
		}
		prev = bs
	}
}

func TestRangeRejection(t *testing.T) {
	adTests := []struct {
		date GregorianDate
		want error
	}{
		{GregorianDate{1942, 12, 31}, ErrOutOfRange},
		{GregorianDate{1943, 1, 1}, ErrOutOfRange},
		{GregorianDate{1943, 4, 13}, ErrOutOfRange},
		{GregorianDate{2034, 1, 1}, ErrOutOfRange},
		{GregorianDate{2000, 13, 1}, ErrOutOfRange},
		{GregorianDate{2000, 0, 1}, ErrOutOfRange},
		{GregorianDate{2023, 2, 29}, ErrInvalidDay},
		{GregorianDate{2023, 4, 31}, ErrInvalidDay},
		{GregorianDate{2023, 4, 0}, ErrInvalidDay},
	}
	for _, tt := range adTests {
		_, err := ToBS(tt.date)
		if !errors.Is(err, tt.want) {
			t.Errorf("ToBS(%v) error = %v, want %v", tt.date, err, tt.want)
		}
	}

	bsTests := []struct {
		date BSDate
		want error
	}{
		{BSDate{1999, 12, 30}, ErrOutOfRange},
		{BSDate{2091, 1, 1}, ErrOutOfRange},
		{BSDate{2080, 13, 1}, ErrOutOfRange},
		{BSDate{2080, 1, 32}, ErrInvalidDay},
		{BSDate{2080, 1, 0}, ErrInvalidDay},
	}
	for _, tt := range bsTests {
		_, err := ToGregorian(tt.date)
		if !errors.Is(err, tt.want) {
			t.Errorf("ToGregorian(%v) error = %v, want %v", tt.date, err, tt.want)
		}
	}
}

func TestDateErrorCarriesInput(t *testing.T) {
	_, err := ToGregorian(BSDate{2080, 1, 32})
	var de *DateError
	if !errors.As(err, &de) {
		t.Fatalf("error %T is not *DateError", err)
	}
	if de.Calendar != "BS" || de.Year != 2080 || de.Day != 32 {
		t.Errorf("unexpected DateError fields: %+v", de)
	}
}

func TestGregorianHelpers(t *testing.T) {
	leap := map[int]bool{1900: false, 2000: true, 2023: false, 2024: true}
	for year, want := range leap {
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
	if got := DaysInGregorianMonth(2024, 2); got != 29 {
		t.Errorf("DaysInGregorianMonth(2024, 2) = %d, want 29", got)
	}
	if got := DaysInGregorianMonth(2024, 13); got != 0 {
		t.Errorf("DaysInGregorianMonth(2024, 13) = %d, want 0", got)
	}
}

func TestDaysInYear(t *testing.T) {
	for year := MinBSYear; year <= MaxBSYear; year++ {
		n, err := DaysInYear(year)
		if err != nil {
			t.Fatalf("DaysInYear(%d): %v", year, err)
		}
		if n < 365 || n > 366 {
			t.Errorf("DaysInYear(%d) = %d", year, n)
		}
	}
	if _, err := DaysInYear(MaxBSYear + 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("DaysInYear(%d) error = %v", MaxBSYear+1, err)
	}
}

func TestBSWeekday(t *testing.T) {
	wd, err := BSDate{2080, 1, 1}.Weekday()
	if err != nil {
		t.Fatal(err)
	}
	if wd != time.Friday {
		t.Errorf("weekday of 2080-01-01 BS = %v, want Friday", wd)
	}
}
