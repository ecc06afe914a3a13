package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/config"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
	"github.com/zapponejosh/lunar-calendar-api/internal/i18n"
)

const (
	defaultPageLimit      = 50
	maxPageLimit          = 100
	defaultOccurrenceSpan = 10
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db          *database.DB
	cfg         *config.Config
	logger      *slog.Logger
	defaultLang language.Tag
	now         func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	lang, ok := i18n.ParseTag(cfg.DefaultLang)
	if !ok {
		lang = i18n.Default()
	}
	return &Handlers{
		db:          db,
		cfg:         cfg,
		logger:      logger,
		defaultLang: lang,
		now:         time.Now,
	}
}

func (h *Handlers) localizer(r *http.Request) *i18n.Localizer {
	return i18n.NewLocalizer(i18n.ResolveTag(r, h.defaultLang))
}

func (h *Handlers) today() calendar.SolarDate {
	return calendar.SolarDateOf(h.now().UTC())
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]any{
		"status":      "healthy",
		"first_solar": calendar.FirstSolarDate(),
		"last_solar":  calendar.LastSolarDate(),
	})
}

// =============================================================================
// Conversion
// =============================================================================

// ConvertSolar handles GET /api/v1/convert/solar/{date}
func (h *Handlers) ConvertSolar(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.ParseDateString(chi.URLParam(r, "date"))
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	info, err := calendar.Describe(date)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, h.localizer(r).Day(info))
}

// ConvertLunar handles GET /api/v1/convert/lunar?year=&month=&day=&leap=
func (h *Handlers) ConvertLunar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := requiredInt(q.Get("year"), "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	month, err := requiredInt(q.Get("month"), "month")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	day, err := requiredInt(q.Get("day"), "day")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	leap, err := optionalBool(q.Get("leap"), "leap")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	info, err := calendar.DescribeLunar(calendar.LunarDate{Year: year, Month: month, Day: day, IsLeapMonth: leap})
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, h.localizer(r).Day(info))
}

// =============================================================================
// Days
// =============================================================================

// GetToday handles GET /api/v1/days/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	info, err := calendar.Describe(h.today())
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, h.localizer(r).Day(info))
}

// GetRange handles GET /api/v1/days/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := calendar.ParseDateString(startStr)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}
	end, err := calendar.ParseDateString(endStr)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	if days := start.DaysUntil(end) + 1; days > h.cfg.MaxRangeDays {
		WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Date range cannot exceed %d days", h.cfg.MaxRangeDays), CodeRangeTooLarge)
		return
	}

	infos, err := calendar.DescribeRange(start, end)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]any{
		"start": start,
		"end":   end,
		"days":  h.localizer(r).Days(infos),
	})
}

// =============================================================================
// Years and months
// =============================================================================

// GetYear handles GET /api/v1/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	year, err := requiredInt(chi.URLParam(r, "year"), "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	info, err := calendar.DescribeYear(year)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, h.localizer(r).Year(info))
}

// GetYearFestivals handles GET /api/v1/years/{year}/festivals
func (h *Handlers) GetYearFestivals(w http.ResponseWriter, r *http.Request) {
	year, err := requiredInt(chi.URLParam(r, "year"), "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	festivals, err := calendar.Festivals(year)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]any{
		"year":      year,
		"festivals": h.localizer(r).Festivals(festivals),
	})
}

// GetMonth handles GET /api/v1/months/{year}/{month}
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, err := requiredInt(chi.URLParam(r, "year"), "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	month, err := requiredInt(chi.URLParam(r, "month"), "month")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	infos, err := calendar.DescribeMonth(year, month)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]any{
		"year":  year,
		"month": month,
		"days":  h.localizer(r).Days(infos),
	})
}

// =============================================================================
// Options and reference data
// =============================================================================

// GetYearOptions handles GET /api/v1/options/years
func (h *Handlers) GetYearOptions(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, calendar.YearOptions())
}

// GetMonthOptions handles GET /api/v1/options/months
func (h *Handlers) GetMonthOptions(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, calendar.MonthOptions())
}

// GetDayOptions handles GET /api/v1/options/days?year=&month=&leap=
func (h *Handlers) GetDayOptions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := requiredInt(q.Get("year"), "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	month, err := requiredInt(q.Get("month"), "month")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	leap, err := optionalBool(q.Get("leap"), "leap")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	opts, err := calendar.DayOptions(year, month, leap)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, opts)
}

// GetReference handles GET /api/v1/reference
func (h *Handlers) GetReference(w http.ResponseWriter, r *http.Request) {
	loc := h.localizer(r)

	months := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, calendar.MonthName(m, false))
	}

	WriteSuccess(w, map[string]any{
		"language":         loc.Tag().String(),
		"heavenly_stems":   calendar.HeavenlyStems(),
		"earthly_branches": calendar.EarthlyBranches(),
		"zodiac_animals":   loc.Strings(calendar.ZodiacAnimals()),
		"month_names":      loc.Strings(months),
		"min_year":         calendar.MinYear,
		"max_year":         calendar.MaxYear,
	})
}

// =============================================================================
// Birthdays
// =============================================================================

// birthdayRequest is the POST /api/v1/birthdays body. Exactly one of
// SolarDate and Lunar must be set.
type birthdayRequest struct {
	Name      string              `json:"name"`
	Notes     string              `json:"notes,omitempty"`
	SolarDate string              `json:"solar_date,omitempty"`
	Lunar     *calendar.LunarDate `json:"lunar,omitempty"`
}

// Occurrence is a birthday's date in one lunar year.
type Occurrence struct {
	LunarYear int                `json:"lunar_year"`
	Lunar     calendar.LunarDate `json:"lunar"`
	Solar     calendar.SolarDate `json:"solar"`
	Weekday   string             `json:"weekday"`
}

// ListBirthdays handles GET /api/v1/birthdays
func (h *Handlers) ListBirthdays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(r)

	limit, offset := pagination(r)

	birthdays, err := h.db.ListBirthdays(ctx, userID, limit, offset)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list birthdays", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve birthdays")
		return
	}

	total, err := h.db.CountBirthdays(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to count birthdays", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve birthdays")
		return
	}

	WriteSuccess(w, database.BirthdayPage{
		Birthdays: birthdays,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	})
}

// CreateBirthday handles POST /api/v1/birthdays
func (h *Handlers) CreateBirthday(w http.ResponseWriter, r *http.Request) {
	var req birthdayRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		WriteBadRequest(w, "name is required")
		return
	}
	if (req.SolarDate == "") == (req.Lunar == nil) {
		WriteBadRequest(w, "exactly one of solar_date or lunar is required")
		return
	}

	var lunar calendar.LunarDate
	if req.Lunar != nil {
		lunar = *req.Lunar
	} else {
		solar, err := calendar.ParseDateString(req.SolarDate)
		if err != nil {
			WriteCalendarError(w, r, err)
			return
		}
		if lunar, err = calendar.SolarToLunarDate(solar); err != nil {
			WriteCalendarError(w, r, err)
			return
		}
	}

	b, err := database.NewBirthday(GetUserID(r), req.Name, lunar, req.Notes)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	if err := h.db.CreateBirthday(r.Context(), b); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			WriteError(w, http.StatusConflict, "A birthday with that name already exists", CodeDuplicate)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to create birthday", slog.Any("error", err))
		WriteInternalError(w, "Failed to save birthday")
		return
	}

	WriteCreated(w, b)
}

// GetBirthday handles GET /api/v1/birthdays/{id}
func (h *Handlers) GetBirthday(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookupBirthday(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, b)
}

// DeleteBirthday handles DELETE /api/v1/birthdays/{id}
func (h *Handlers) DeleteBirthday(w http.ResponseWriter, r *http.Request) {
	err := h.db.DeleteBirthday(r.Context(), GetUserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Birthday not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to delete birthday", slog.Any("error", err))
		WriteInternalError(w, "Failed to delete birthday")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Birthday deleted"})
}

// GetBirthdayOccurrences handles GET /api/v1/birthdays/{id}/occurrences?from=&to=
//
// from and to are lunar years; by default the ten years starting with the
// current lunar year are listed.
func (h *Handlers) GetBirthdayOccurrences(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookupBirthday(w, r)
	if !ok {
		return
	}

	from, to, err := h.occurrenceYears(r)
	if err != nil {
		if calendar.IsInputError(err) {
			WriteCalendarError(w, r, err)
			return
		}
		WriteBadRequest(w, err.Error())
		return
	}

	dates, err := calendar.Anniversaries(b.LunarMonth, b.LunarDay, b.IsLeapMonth, from, to)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	loc := h.localizer(r)
	occurrences := make([]Occurrence, 0, len(dates))
	for _, d := range dates {
		lunar, err := calendar.SolarToLunarDate(d)
		if err != nil {
			WriteCalendarError(w, r, err)
			return
		}
		occurrences = append(occurrences, Occurrence{
			LunarYear: lunar.Year,
			Lunar:     lunar,
			Solar:     d,
			Weekday:   loc.T(d.Weekday().String()),
		})
	}

	WriteSuccess(w, map[string]any{
		"birthday":    b,
		"occurrences": occurrences,
	})
}

func (h *Handlers) lookupBirthday(w http.ResponseWriter, r *http.Request) (*database.Birthday, bool) {
	b, err := h.db.GetBirthday(r.Context(), GetUserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Birthday not found")
			return nil, false
		}
		h.logger.ErrorContext(r.Context(), "failed to get birthday", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve birthday")
		return nil, false
	}
	return b, true
}

func (h *Handlers) occurrenceYears(r *http.Request) (from, to int, err error) {
	q := r.URL.Query()

	if v := q.Get("from"); v != "" {
		if from, err = requiredInt(v, "from"); err != nil {
			return 0, 0, err
		}
	} else {
		current, err := calendar.SolarToLunarDate(h.today())
		if err != nil {
			return 0, 0, err
		}
		from = current.Year
	}

	if v := q.Get("to"); v != "" {
		if to, err = requiredInt(v, "to"); err != nil {
			return 0, 0, err
		}
	} else {
		to = min(from+defaultOccurrenceSpan-1, calendar.MaxYear)
	}

	if from > to {
		return 0, 0, fmt.Errorf("from %d is after to %d", from, to)
	}
	return from, to, nil
}

// =============================================================================
// Request helpers
// =============================================================================

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func requiredInt(s, name string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%s parameter is required", name)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	return n, nil
}

func optionalBool(s, name string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", name, s)
	}
	return b, nil
}

func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageLimit

	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= maxPageLimit {
		limit = l
	}
	if o, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && o >= 0 {
		offset = o
	}
	return limit, offset
}
