package calendar

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/nepal-utilities/backend/internal/models"
)

const (
	msgADRange    = "Date out of range. Please select a date between 1943-04-14 and 2033-12-31."
	msgADInvalid  = "Invalid day for the given month and year."
	msgBSRange    = "Date out of range. Please select a Nepali date between 2000 and 2090."
	msgBSInvalid  = "Invalid day for the given Nepali month and year."
	msgBadRequest = "Invalid request body"
)

type Handler struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewHandler() *Handler {
	return &Handler{validate: validator.New(), now: time.Now}
}

func (h *Handler) ConvertToBS(w http.ResponseWriter, r *http.Request) {
	var req models.ConvertDateRequest
	if !h.decode(w, r, &req) {
		return
	}

	ad := GregorianDate{Year: req.Year, Month: req.Month, Day: req.Day}
	bs, err := ToBS(ad)
	if err != nil {
		writeDateError(w, err, msgADRange, msgADInvalid)
		return
	}

	writeJSON(w, http.StatusOK, dateResponse(ad, bs, bs.Text()))
}

func (h *Handler) ConvertToAD(w http.ResponseWriter, r *http.Request) {
	var req models.ConvertDateRequest
	if !h.decode(w, r, &req) {
		return
	}

	bs := BSDate{Year: req.Year, Month: req.Month, Day: req.Day}
	ad, err := ToGregorian(bs)
	if err != nil {
		writeDateError(w, err, msgBSRange, msgBSInvalid)
		return
	}

	writeJSON(w, http.StatusOK, dateResponse(ad, bs, ad.Text()))
}

func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	ad, bs, err := Today(h.now())
	if err != nil {
		log.Printf("[calendar] today outside table: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Today's date is outside the supported calendar range"})
		return
	}
	writeJSON(w, http.StatusOK, dateResponse(ad, bs, bs.Text()))
}

func (h *Handler) MonthGrid(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err1 := strconv.Atoi(vars["year"])
	month, err2 := strconv.Atoi(vars["month"])
	if err1 != nil || err2 != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid year or month"})
		return
	}

	grid, err := BuildMonthGrid(year, month)
	if err != nil {
		writeDateError(w, err, msgBSRange, msgBSInvalid)
		return
	}

	resp := models.MonthGridResponse{
		Year:            grid.Year,
		Month:           grid.Month,
		MonthName:       BSMonthName(grid.Month),
		MonthNameNepali: BSMonthNameNepali(grid.Month),
		Weekdays:        WeekdayNames[:],
		Weeks:           make([][]*models.CalendarCell, 0, len(grid.Weeks)),
	}
	for _, week := range grid.Weeks {
		row := make([]*models.CalendarCell, len(week))
		for i, c := range week {
			if c == nil {
				continue
			}
			row[i] = &models.CalendarCell{
				BSDay:     c.BS.Day,
				ADDate:    c.AD.String(),
				Weekday:   int(c.Weekday),
				IsHoliday: c.IsHoliday(),
			}
		}
		resp.Weeks = append(resp.Weeks, row)
	}
	if y, m, err := PrevMonth(year, month); err == nil {
		resp.Prev = &models.YearMonth{Year: y, Month: m}
	}
	if y, m, err := NextMonth(year, month); err == nil {
		resp.Next = &models.YearMonth{Year: y, Month: m}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgBadRequest})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid date: " + err.Error()})
		return false
	}
	return true
}

func dateResponse(ad GregorianDate, bs BSDate, text string) models.DateResponse {
	adWeekday := ad.Weekday()
	return models.DateResponse{
		AD: models.DateParts{
			Year:      ad.Year,
			Month:     ad.Month,
			Day:       ad.Day,
			MonthName: ADMonthName(ad.Month),
			Weekday:   adWeekday.String(),
			ISO:       ad.String(),
		},
		BS: models.BSDateParts{
			DateParts: models.DateParts{
				Year:      bs.Year,
				Month:     bs.Month,
				Day:       bs.Day,
				MonthName: BSMonthName(bs.Month),
				Weekday:   adWeekday.String(),
				ISO:       bs.String(),
			},
			MonthNameNepali: BSMonthNameNepali(bs.Month),
			WeekdayNepali:   WeekdayNepali(adWeekday),
			Nepali:          FormatNepali(bs),
		},
		Text: text,
	}
}

func writeDateError(w http.ResponseWriter, err error, rangeMsg, dayMsg string) {
	switch {
	case errors.Is(err, ErrInvalidDay):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: dayMsg})
	case errors.Is(err, ErrOutOfRange):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: rangeMsg})
	default:
		log.Printf("[calendar] conversion error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Conversion failed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
