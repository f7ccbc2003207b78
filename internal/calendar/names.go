package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var BSMonthNames = [12]string{
	"Baishakh", "Jestha", "Ashadh", "Shrawan", "Bhadra", "Ashwin",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

var BSMonthNamesNepali = [12]string{
	"बैशाख", "जेठ", "असार", "श्रावण", "भदौ", "आश्विन",
	"कार्तिक", "मंसिर", "पुष", "माघ", "फाल्गुन", "चैत्र",
}

var ADMonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Short weekday labels, Sunday first.
var (
	WeekdayNames       = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	WeekdayNamesNepali = [7]string{"आइत", "सोम", "मंगल", "बुध", "बिही", "शुक्र", "शनि"}
)

func BSMonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return BSMonthNames[month-1]
}

func BSMonthNameNepali(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return BSMonthNamesNepali[month-1]
}

func ADMonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return ADMonthNames[month-1]
}

func WeekdayNepali(w time.Weekday) string {
	return WeekdayNamesNepali[int(w)%7]
}

const devanagariZero = '०'

// NepaliDigits renders n with Devanagari numerals.
func NepaliDigits(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		if r >= '0' && r <= '9' {
			b.WriteRune(devanagariZero + (r - '0'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Text formats d as "2080 Baishakh 1".
func (d BSDate) Text() string {
	return fmt.Sprintf("%d %s %d", d.Year, BSMonthName(d.Month), d.Day)
}

// Text formats d as "14 April 1943".
func (d GregorianDate) Text() string {
	return fmt.Sprintf("%d %s %d", d.Day, ADMonthName(d.Month), d.Year)
}

// FormatNepali renders d in Devanagari, e.g. "२०८० बैशाख १".
func FormatNepali(d BSDate) string {
	return NepaliDigits(d.Year) + " " + BSMonthNameNepali(d.Month) + " " + NepaliDigits(d.Day)
}
