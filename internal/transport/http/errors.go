package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"meetbook/backend/internal/availability"
	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/service/intake"
	"meetbook/backend/internal/service/meetings"
	"meetbook/backend/internal/store"
)

type errorBody struct {
	Error          string     `json:"error"`
	Message        string     `json:"message"`
	MeetingID      string     `json:"meeting_id,omitempty"`
	SuggestedSlots []slotJSON `json:"suggested_slots,omitempty"`
}

// apiError is returned by handlers and rendered by ErrorHandler.
type apiError struct {
	status int
	body   errorBody
}

func (e *apiError) Error() string {
	return e.body.Message
}

func badRequest(log *slog.Logger, msg string) error {
	log.Warn("invalid request", slog.String("reason", msg))
	return &apiError{status: http.StatusBadRequest, body: errorBody{Error: "invalid_request", Message: msg}}
}

func errorFor(log *slog.Logger, op string, err error, attrs ...any) error {
	var (
		conflict *meetings.ConflictError
		vErr     *meetings.ValidationError
		terminal *meetings.AlreadyTerminalError
	)
	args := append([]any{slog.Any("err", err)}, attrs...)

	switch {
	case errors.As(err, &conflict):
		log.Info(op+" conflict", args...)
		body := errorBody{Error: "slot_taken", Message: "That time is no longer available. Pick a different slot."}
		if conflict.MeetingID != uuid.Nil {
			body.MeetingID = conflict.MeetingID.String()
		}
		body.SuggestedSlots = make([]slotJSON, 0, len(conflict.Suggested))
		for _, s := range conflict.Suggested {
			body.SuggestedSlots = append(body.SuggestedSlots, toSlotJSON(s))
		}
		return &apiError{status: http.StatusConflict, body: body}
	case errors.Is(err, store.ErrIdempotencyConflict):
		log.Info(op+" idempotency conflict", args...)
		return &apiError{status: http.StatusConflict, body: errorBody{Error: "idempotency_conflict", Message: "This request key was already used for a different booking."}}
	case errors.As(err, &vErr), intake.IsValidation(err), errors.Is(err, availability.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidTime):
		log.Warn("invalid request", args...)
		return &apiError{status: http.StatusBadRequest, body: errorBody{Error: "invalid_request", Message: err.Error()}}
	case errors.Is(err, availability.ErrOutOfWindow):
		log.Info(op+" out of window", args...)
		return &apiError{status: http.StatusUnprocessableEntity, body: errorBody{Error: "out_of_window", Message: err.Error()}}
	case errors.Is(err, store.ErrNotFound):
		log.Info("not found", args...)
		return &apiError{status: http.StatusNotFound, body: errorBody{Error: "not_found", Message: "not found"}}
	case errors.As(err, &terminal), errors.Is(err, store.ErrInvalidTransition):
		log.Info(op+" rejected", args...)
		return &apiError{status: http.StatusConflict, body: errorBody{Error: "invalid_transition", Message: err.Error()}}
	}
	log.Error(op+" failed", args...)
	return &apiError{status: http.StatusInternalServerError, body: errorBody{Error: "internal", Message: "internal error"}}
}

// ErrorHandler renders apiError values and echo's own routing errors as JSON.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var (
		aErr *apiError
		hErr *echo.HTTPError
	)
	status := http.StatusInternalServerError
	body := errorBody{Error: "internal", Message: "internal error"}
	switch {
	case errors.As(err, &aErr):
		status, body = aErr.status, aErr.body
	case errors.As(err, &hErr):
		status = hErr.Code
		body = errorBody{Error: "http_error", Message: http.StatusText(hErr.Code)}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}
