package grpc

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"meetbook/backend/internal/availability"
	"meetbook/backend/internal/domain"
	meetbookv1 "meetbook/backend/internal/gen/proto/meetbook/v1"
	"meetbook/backend/internal/service/meetings"
	"meetbook/backend/internal/store"
)

type MeetingsServer struct {
	meetbookv1.UnimplementedMeetingsServiceServer

	svc meetingsService
	log *slog.Logger
}

type meetingsService interface {
	Book(ctx context.Context, in meetings.BookInput) (meetings.BookResult, error)
	Cancel(ctx context.Context, id uuid.UUID) (domain.Meeting, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Meeting, error)
	AvailableSlots(ctx context.Context, date domain.Date, minutes int) (iter.Seq[domain.Slot], error)
	RetrySync(ctx context.Context, id uuid.UUID) (meetings.BookResult, error)
}

func NewMeetingsServer(svc meetingsService, log *slog.Logger) *MeetingsServer {
	if log == nil {
		log = slog.Default()
	}
	return &MeetingsServer{
		svc: svc,
		log: log.With(slog.String("component", "grpc.meetings")),
	}
}

func (s *MeetingsServer) BookMeeting(ctx context.Context, req *meetbookv1.BookMeetingRequest) (*meetbookv1.BookMeetingResponse, error) {
	log := s.log.With(slog.String("rpc", "BookMeeting"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	res, err := s.svc.Book(ctx, meetings.BookInput{
		Name:           req.Name,
		Email:          req.Email,
		Company:        req.Company,
		Phone:          req.Phone,
		Message:        req.Message,
		Service:        req.Service,
		Date:           req.Date,
		Time:           req.Time,
		Duration:       int(req.Duration),
		IdempotencyKey: idempotencyKey(ctx),
	})
	if err != nil {
		return nil, statusFor(log, "meeting book", err, slog.String("date", req.Date), slog.String("time", req.Time))
	}

	log.Info(
		"meeting booked",
		slog.String("meeting_id", res.Meeting.ID.String()),
		slog.String("outcome", string(res.Outcome)),
		slog.Bool("resumed", res.Resumed),
	)
	return &meetbookv1.BookMeetingResponse{
		Meeting: toProtoMeeting(res.Meeting),
		Outcome: string(res.Outcome),
		Warning: res.Warning,
		Resumed: res.Resumed,
	}, nil
}

func (s *MeetingsServer) CancelMeeting(ctx context.Context, req *meetbookv1.CancelMeetingRequest) (*meetbookv1.CancelMeetingResponse, error) {
	log := s.log.With(slog.String("rpc", "CancelMeeting"))

	id, err := meetingID(log, req.GetMeetingId())
	if err != nil {
		return nil, err
	}
	m, err := s.svc.Cancel(ctx, id)
	if err != nil {
		return nil, statusFor(log, "meeting cancel", err, slog.String("meeting_id", id.String()))
	}

	log.Info("meeting cancelled", slog.String("meeting_id", id.String()))
	return &meetbookv1.CancelMeetingResponse{Meeting: toProtoMeeting(m)}, nil
}

func (s *MeetingsServer) GetMeeting(ctx context.Context, req *meetbookv1.GetMeetingRequest) (*meetbookv1.GetMeetingResponse, error) {
	log := s.log.With(slog.String("rpc", "GetMeeting"))

	id, err := meetingID(log, req.GetMeetingId())
	if err != nil {
		return nil, err
	}
	m, err := s.svc.Get(ctx, id)
	if err != nil {
		return nil, statusFor(log, "meeting get", err, slog.String("meeting_id", id.String()))
	}
	return &meetbookv1.GetMeetingResponse{Meeting: toProtoMeeting(m)}, nil
}

func (s *MeetingsServer) ListAvailableSlots(ctx context.Context, req *meetbookv1.ListAvailableSlotsRequest) (*meetbookv1.ListAvailableSlotsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListAvailableSlots"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_date"), slog.String("date", req.Date))
		return nil, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
	}

	slots, err := s.svc.AvailableSlots(ctx, date, int(req.Duration))
	if err != nil {
		return nil, statusFor(log, "slots list", err, slog.String("date", req.Date))
	}

	out := &meetbookv1.ListAvailableSlotsResponse{Date: date.String(), Slots: []*meetbookv1.Slot{}}
	for sl := range slots {
		out.Slots = append(out.Slots, &meetbookv1.Slot{Start: sl.Start.String(), End: sl.End.String()})
	}

	log.Debug("slots listed", slog.String("date", req.Date), slog.Int("count", len(out.Slots)))
	return out, nil
}

func (s *MeetingsServer) RetrySync(ctx context.Context, req *meetbookv1.RetrySyncRequest) (*meetbookv1.RetrySyncResponse, error) {
	log := s.log.With(slog.String("rpc", "RetrySync"))

	id, err := meetingID(log, req.GetMeetingId())
	if err != nil {
		return nil, err
	}
	res, err := s.svc.RetrySync(ctx, id)
	if err != nil {
		return nil, statusFor(log, "meeting sync", err, slog.String("meeting_id", id.String()))
	}

	log.Info("meeting sync retried", slog.String("meeting_id", id.String()), slog.String("outcome", string(res.Outcome)))
	return &meetbookv1.RetrySyncResponse{
		Meeting: toProtoMeeting(res.Meeting),
		Outcome: string(res.Outcome),
		Warning: res.Warning,
	}, nil
}

// meetingID parses the meeting_id of a request. Getters are nil-safe, so a
// nil request fails here too.
func meetingID(log *slog.Logger, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return uuid.Nil, status.Error(codes.InvalidArgument, "meeting_id must be a UUID")
	}
	return id, nil
}

func idempotencyKey(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("idempotency-key")
	if len(values) == 0 {
		values = md.Get("x-idempotency-key")
	}
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// statusFor maps service errors onto gRPC codes. Unknown errors are logged
// and hidden behind codes.Internal.
func statusFor(log *slog.Logger, op string, err error, attrs ...any) error {
	var (
		conflict *meetings.ConflictError
		vErr     *meetings.ValidationError
		terminal *meetings.AlreadyTerminalError
	)
	args := append([]any{slog.Any("err", err)}, attrs...)

	switch {
	case errors.As(err, &conflict):
		log.Info(op+" conflict", args...)
		return conflictStatus(conflict)
	case errors.Is(err, store.ErrIdempotencyConflict):
		log.Info(op+" idempotency conflict", args...)
		return status.Error(codes.FailedPrecondition, "This request key was already used for a different booking. Try again.")
	case errors.As(err, &vErr), errors.Is(err, availability.ErrInvalidDuration), errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidTime):
		log.Warn("invalid request", args...)
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, availability.ErrOutOfWindow):
		log.Info(op+" out of window", args...)
		return status.Error(codes.OutOfRange, err.Error())
	case errors.Is(err, store.ErrNotFound):
		log.Info("meeting not found", args...)
		return status.Error(codes.NotFound, "meeting not found")
	case errors.As(err, &terminal), errors.Is(err, store.ErrInvalidTransition):
		log.Info(op+" rejected", args...)
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	log.Error(op+" failed", args...)
	return status.Error(codes.Internal, "internal error")
}

func conflictStatus(c *meetings.ConflictError) error {
	st := status.New(codes.AlreadyExists, "That time is no longer available. Pick a different slot.")
	suggested := make([]string, 0, len(c.Suggested))
	for _, sl := range c.Suggested {
		suggested = append(suggested, sl.Start.String())
	}
	info := &errdetails.ErrorInfo{
		Reason: "SLOT_TAKEN",
		Domain: "meetbook",
		Metadata: map[string]string{
			"suggested": strings.Join(suggested, ","),
		},
	}
	if c.MeetingID != uuid.Nil {
		info.Metadata["meeting_id"] = c.MeetingID.String()
	}
	withInfo, err := st.WithDetails(info)
	if err != nil {
		return st.Err()
	}
	return withInfo.Err()
}

var protoStatus = map[domain.MeetingStatus]meetbookv1.MeetingStatus{
	domain.MeetingStatusPending:   meetbookv1.MeetingStatus_MEETING_STATUS_PENDING,
	domain.MeetingStatusConfirmed: meetbookv1.MeetingStatus_MEETING_STATUS_CONFIRMED,
	domain.MeetingStatusCancelled: meetbookv1.MeetingStatus_MEETING_STATUS_CANCELLED,
	domain.MeetingStatusCompleted: meetbookv1.MeetingStatus_MEETING_STATUS_COMPLETED,
}

func toProtoMeeting(m domain.Meeting) *meetbookv1.Meeting {
	return &meetbookv1.Meeting{
		Id:            m.ID.String(),
		Name:          m.Name,
		Email:         m.Email,
		Company:       m.Company,
		Phone:         m.Phone,
		Message:       m.Message,
		Service:       m.Service,
		Date:          m.Date.String(),
		Time:          m.Time.String(),
		Duration:      int32(m.Duration),
		Status:        protoStatus[m.Status],
		GoogleEventId: m.EventID(),
		StartsAt:      timestamppb.New(m.StartsAt),
		EndsAt:        timestamppb.New(m.EndsAt),
		CreatedAt:     timestamppb.New(m.CreatedAt),
		UpdatedAt:     timestamppb.New(m.UpdatedAt),
	}
}
