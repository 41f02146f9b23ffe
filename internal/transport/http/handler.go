package http

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"meetbook/backend/internal/availability"
	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/ical"
	"meetbook/backend/internal/service/intake"
	"meetbook/backend/internal/service/meetings"
)

const readyTimeout = 2 * time.Second

type meetingsService interface {
	Book(ctx context.Context, in meetings.BookInput) (meetings.BookResult, error)
	Cancel(ctx context.Context, id uuid.UUID) (domain.Meeting, error)
	Complete(ctx context.Context, id uuid.UUID) (domain.Meeting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RetrySync(ctx context.Context, id uuid.UUID) (meetings.BookResult, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Meeting, error)
	List(ctx context.Context, in meetings.ListInput) ([]domain.Meeting, error)
	DaySchedule(ctx context.Context, date domain.Date, minutes int) (availability.Day, error)
	Location() *time.Location
}

type intakeService interface {
	SubmitLead(ctx context.Context, in intake.Input) (domain.Lead, error)
	SubmitContact(ctx context.Context, in intake.Input) (domain.Contact, error)
	AdvanceLead(ctx context.Context, id uuid.UUID, next string) (domain.Lead, error)
	AdvanceContact(ctx context.Context, id uuid.UUID, next string) (domain.Contact, error)
	ListLeads(ctx context.Context, limit int) ([]domain.Lead, error)
	ListContacts(ctx context.Context, limit int) ([]domain.Contact, error)
}

type Handler struct {
	meetings meetingsService
	intake   intakeService
	log      *slog.Logger
	now      func() time.Time
	ready    func(ctx context.Context) error
}

type HandlerOption func(*Handler)

// WithReadiness makes /readyz report check, typically a database ping.
func WithReadiness(check func(ctx context.Context) error) HandlerOption {
	return func(h *Handler) { h.ready = check }
}

func NewHandler(m meetingsService, in intakeService, log *slog.Logger, opts ...HandlerOption) *Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{
		meetings: m,
		intake:   in,
		log:      log.With(slog.String("component", "http")),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the API on e. limit guards the public write endpoints and
// may be nil.
func (h *Handler) Register(e *echo.Echo, limit echo.MiddlewareFunc) {
	var guarded []echo.MiddlewareFunc
	if limit != nil {
		guarded = append(guarded, limit)
	}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/readyz", h.readiness)

	api := e.Group("/api")
	api.GET("/availability", h.availability)
	api.POST("/meetings", h.bookMeeting, guarded...)
	api.GET("/meetings/:id", h.getMeeting)
	api.GET("/meetings/:id/ics", h.meetingICS)
	api.POST("/meetings/:id/cancel", h.cancelMeeting, guarded...)
	api.POST("/leads", h.submitLead, guarded...)
	api.POST("/contacts", h.submitContact, guarded...)

	admin := api.Group("/admin")
	admin.GET("/meetings", h.listMeetings)
	admin.DELETE("/meetings/:id", h.deleteMeeting)
	admin.POST("/meetings/:id/complete", h.completeMeeting)
	admin.POST("/meetings/:id/retry-sync", h.retrySync)
	admin.GET("/leads", h.listLeads)
	admin.PATCH("/leads/:id", h.advanceLead)
	admin.GET("/contacts", h.listContacts)
	admin.PATCH("/contacts/:id", h.advanceContact)
}

func (h *Handler) readiness(c echo.Context) error {
	if h.ready != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
		defer cancel()
		if err := h.ready(ctx); err != nil {
			h.log.Warn("not ready", slog.Any("err", err))
			return c.JSON(http.StatusServiceUnavailable, errorBody{Error: "not_ready", Message: err.Error()})
		}
	}
	return c.String(http.StatusOK, "ready")
}

func (h *Handler) availability(c echo.Context) error {
	log := h.log.With(slog.String("route", "availability"))

	date, err := domain.ParseDate(c.QueryParam("date"))
	if err != nil {
		return badRequest(log, "date must be YYYY-MM-DD")
	}
	minutes, err := optionalInt(c.QueryParam("duration"))
	if err != nil {
		return badRequest(log, "duration must be a number of minutes")
	}
	day, err := h.meetings.DaySchedule(c.Request().Context(), date, minutes)
	if err != nil {
		return errorFor(log, "availability", err)
	}
	return c.JSON(http.StatusOK, toDayJSON(day))
}

type bookRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Service  string `json:"service"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

func (h *Handler) bookMeeting(c echo.Context) error {
	log := h.log.With(slog.String("route", "book_meeting"))

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(log, "request body must be JSON")
	}
	res, err := h.meetings.Book(c.Request().Context(), meetings.BookInput{
		Name:           req.Name,
		Email:          req.Email,
		Company:        req.Company,
		Phone:          req.Phone,
		Message:        req.Message,
		Service:        req.Service,
		Date:           req.Date,
		Time:           req.Time,
		Duration:       req.Duration,
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get("Idempotency-Key")),
	})
	if err != nil {
		return errorFor(log, "meeting book", err, slog.String("date", req.Date), slog.String("time", req.Time))
	}

	log.Info("meeting booked",
		slog.String("meeting_id", res.Meeting.ID.String()),
		slog.String("outcome", string(res.Outcome)),
	)
	code := http.StatusCreated
	if res.Resumed {
		code = http.StatusOK
	}
	return c.JSON(code, toBookJSON(res))
}

func (h *Handler) getMeeting(c echo.Context) error {
	log := h.log.With(slog.String("route", "get_meeting"))

	id, err := pathID(c)
	if err != nil {
		return badRequest(log, "id must be a UUID")
	}
	m, err := h.meetings.Get(c.Request().Context(), id)
	if err != nil {
		return errorFor(log, "meeting get", err, slog.String("meeting_id", id.String()))
	}
	return c.JSON(http.StatusOK, toMeetingJSON(m))
}

func (h *Handler) meetingICS(c echo.Context) error {
	log := h.log.With(slog.String("route", "meeting_ics"))

	id, err := pathID(c)
	if err != nil {
		return badRequest(log, "id must be a UUID")
	}
	m, err := h.meetings.Get(c.Request().Context(), id)
	if err != nil {
		return errorFor(log, "meeting ics", err, slog.String("meeting_id", id.String()))
	}

	var buf bytes.Buffer
	if err := ical.Encode(&buf, m, h.meetings.Location(), h.now()); err != nil {
		return errorFor(log, "meeting ics", err, slog.String("meeting_id", id.String()))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="meeting-`+id.String()+`.ics"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func (h *Handler) cancelMeeting(c echo.Context) error {
	return h.transition(c, "cancel_meeting", "meeting cancelled", h.meetings.Cancel)
}

func (h *Handler) completeMeeting(c echo.Context) error {
	return h.transition(c, "complete_meeting", "meeting completed", h.meetings.Complete)
}

func (h *Handler) transition(c echo.Context, route, done string, fn func(context.Context, uuid.UUID) (domain.Meeting, error)) error {
	log := h.log.With(slog.String("route", route))

	id, err := pathID(c)
	if err != nil {
		return badRequest(log, "id must be a UUID")
	}
	m, err := fn(c.Request().Context(), id)
	if err != nil {
		return errorFor(log, route, err, slog.String("meeting_id", id.String()))
	}
	log.Info(done, slog.String("meeting_id", id.String()))
	return c.JSON(http.StatusOK, toMeetingJSON(m))
}

func (h *Handler) deleteMeeting(c echo.Context) error {
	log := h.log.With(slog.String("route", "delete_meeting"))

	id, err := pathID(c)
	if err != nil {
		return badRequest(log, "id must be a UUID")
	}
	if err := h.meetings.Delete(c.Request().Context(), id); err != nil {
		return errorFor(log, "meeting delete", err, slog.String("meeting_id", id.String()))
	}
	log.Info("meeting deleted", slog.String("meeting_id", id.String()))
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) retrySync(c echo.Context) error {
	log := h.log.With(slog.String("route", "retry_sync"))

	id, err := pathID(c)
	if err != nil {
		return badRequest(log, "id must be a UUID")
	}
	res, err := h.meetings.RetrySync(c.Request().Context(), id)
	if err != nil {
		return errorFor(log, "meeting sync", err, slog.String("meeting_id", id.String()))
	}
	return c.JSON(http.StatusOK, toBookJSON(res))
}

func (h *Handler) listMeetings(c echo.Context) error {
	log := h.log.With(slog.String("route", "list_meetings"))

	limit, err := optionalInt(c.QueryParam("limit"))
	if err != nil {
		return badRequest(log, "limit must be a number")
	}
	list, err := h.meetings.List(c.Request().Context(), meetings.ListInput{
		From:   c.QueryParam("from"),
		To:     c.QueryParam("to"),
		Status: c.QueryParam("status"),
		Email:  c.QueryParam("email"),
		Limit:  limit,
	})
	if err != nil {
		return errorFor(log, "meetings list", err)
	}
	out := make([]meetingJSON, 0, len(list))
	for _, m := range list {
		out = append(out, toMeetingJSON(m))
	}
	return c.JSON(http.StatusOK, map[string]any{"meetings": out})
}

type intakeRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

func (r intakeRequest) input() intake.Input {
	return intake.Input{Name: r.Name, Email: r.Email, Company: r.Company, Phone: r.Phone, Message: r.Message, Source: r.Source}
}

func (h *Handler) submitLead(c echo.Context) error {
	log := h.log.With(slog.String("route", "submit_lead"))

	var req intakeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(log, "request body must be JSON")
	}
	lead, err := h.intake.SubmitLead(c.Request().Context(), req.input())
	if err != nil {
		return errorFor(log, "lead submit", err)
	}
	return c.JSON(http.StatusCreated, toLeadJSON(lead))
}

func (h *Handler) submitContact(c echo.Context) error {
	log := h.log.With(slog.String("route", "submit_contact"))

	var req intakeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(log, "request body must be JSON")
	}
	contact, err := h.intake.SubmitContact(c.Request().Context(), req.input())
	if err != nil {
		return errorFor(log, "contact submit", err)
	}
	return c.JSON(http.StatusCreated, toContactJSON(contact))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) advanceLead(c echo.Context) error {
	log := h.log.With(slog.String("route", "advance_lead"))

	id, err := pathID(c)
	if err != nil {
		return badRequest(log, "id must be a UUID")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(log, "request body must be JSON")
	}
	lead, err := h.intake.AdvanceLead(c.Request().Context(), id, req.Status)
	if err != nil {
		return errorFor(log, "lead advance", err, slog.String("lead_id", id.String()))
	}
	return c.JSON(http.StatusOK, toLeadJSON(lead))
}

func (h *Handler) advanceContact(c echo.Context) error {
	log := h.log.With(slog.String("route", "advance_contact"))

	id, err := pathID(c)
	if err != nil {
		return badRequest(log, "id must be a UUID")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(log, "request body must be JSON")
	}
	contact, err := h.intake.AdvanceContact(c.Request().Context(), id, req.Status)
	if err != nil {
		return errorFor(log, "contact advance", err, slog.String("contact_id", id.String()))
	}
	return c.JSON(http.StatusOK, toContactJSON(contact))
}

func (h *Handler) listLeads(c echo.Context) error {
	log := h.log.With(slog.String("route", "list_leads"))

	limit, err := optionalInt(c.QueryParam("limit"))
	if err != nil {
		return badRequest(log, "limit must be a number")
	}
	leads, err := h.intake.ListLeads(c.Request().Context(), limit)
	if err != nil {
		return errorFor(log, "leads list", err)
	}
	out := make([]leadJSON, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadJSON(l))
	}
	return c.JSON(http.StatusOK, map[string]any{"leads": out})
}

func (h *Handler) listContacts(c echo.Context) error {
	log := h.log.With(slog.String("route", "list_contacts"))

	limit, err := optionalInt(c.QueryParam("limit"))
	if err != nil {
		return badRequest(log, "limit must be a number")
	}
	contacts, err := h.intake.ListContacts(c.Request().Context(), limit)
	if err != nil {
		return errorFor(log, "contacts list", err)
	}
	out := make([]contactJSON, 0, len(contacts))
	for _, ct := range contacts {
		out = append(out, toContactJSON(ct))
	}
	return c.JSON(http.StatusOK, map[string]any{"contacts": out})
}

func pathID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
