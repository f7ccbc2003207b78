package models

type ConvertDateRequest struct {
	Year  int `json:"year" validate:"required"`
	Month int `json:"month" validate:"required,min=1,max=12"`
	Day   int `json:"day" validate:"required,min=1,max=32"`
}

type DateParts struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthName string `json:"month_name"`
	Weekday   string `json:"weekday"`
	ISO       string `json:"iso"`
}

type BSDateParts struct {
	DateParts
	MonthNameNepali string `json:"month_name_ne"`
	WeekdayNepali   string `json:"weekday_ne"`
	Nepali          string `json:"nepali"`
}

type DateResponse struct {
	AD   DateParts   `json:"ad"`
	BS   BSDateParts `json:"bs"`
	Text string      `json:"text"`
}

type CalendarCell struct {
	BSDay     int    `json:"bs_day"`
	ADDate    string `json:"ad_date"`
	Weekday   int    `json:"weekday"`
	IsHoliday bool   `json:"is_holiday"`
}

type MonthGridResponse struct {
	Year            int               `json:"year"`
	Month           int               `json:"month"`
	MonthName       string            `json:"month_name"`
	MonthNameNepali string            `json:"month_name_ne"`
	Weekdays        []string          `json:"weekdays"`
	Weeks           [][]*CalendarCell `json:"weeks"`
	Prev            *YearMonth        `json:"prev,omitempty"`
	Next            *YearMonth        `json:"next,omitempty"`
}

type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}
