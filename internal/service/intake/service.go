package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/store"
)

const defaultLeadSource = "Website Form"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

type Service struct {
	repo   store.LeadRepository
	logger *slog.Logger
}

func NewService(repo store.LeadRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger.With(slog.String("component", "intake"))}
}

type Input struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Message string
	Source  string
}

func (in Input) normalize() (Input, error) {
	out := Input{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Company: strings.TrimSpace(in.Company),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
		Source:  strings.TrimSpace(in.Source),
	}
	if out.Name == "" {
		return Input{}, validationError("name is required")
	}
	if out.Email == "" {
		return Input{}, validationError("email is required")
	}
	if !emailPattern.MatchString(out.Email) {
		return Input{}, validationError("email is invalid")
	}
	return out, nil
}

func (s *Service) SubmitLead(ctx context.Context, in Input) (domain.Lead, error) {
	n, err := in.normalize()
	if err != nil {
		return domain.Lead{}, err
	}
	if n.Source == "" {
		n.Source = defaultLeadSource
	}
	lead, err := s.repo.CreateLead(ctx, domain.Lead{
		Name:    n.Name,
		Email:   n.Email,
		Company: n.Company,
		Phone:   n.Phone,
		Message: n.Message,
		Source:  n.Source,
		Status:  domain.LeadStatusLead,
	})
	if err != nil {
		return domain.Lead{}, err
	}
	s.logger.Info("lead submitted", slog.String("lead_id", lead.ID.String()), slog.String("source", lead.Source))
	return lead, nil
}

func (s *Service) SubmitContact(ctx context.Context, in Input) (domain.Contact, error) {
	n, err := in.normalize()
	if err != nil {
		return domain.Contact{}, err
	}
	if n.Message == "" {
		return domain.Contact{}, validationError("message is required")
	}
	c, err := s.repo.CreateContact(ctx, domain.Contact{
		Name:    n.Name,
		Email:   n.Email,
		Company: n.Company,
		Phone:   n.Phone,
		Message: n.Message,
		Status:  domain.ContactStatusNew,
	})
	if err != nil {
		return domain.Contact{}, err
	}
	s.logger.Info("contact submitted", slog.String("contact_id", c.ID.String()))
	return c, nil
}

func (s *Service) AdvanceLead(ctx context.Context, id uuid.UUID, next string) (domain.Lead, error) {
	to, err := domain.ParseLeadStatus(strings.ToUpper(strings.TrimSpace(next)))
	if err != nil {
		return domain.Lead{}, validationError("invalid lead status")
	}
	current, err := s.repo.GetLead(ctx, id)
	if err != nil {
		return domain.Lead{}, err
	}
	if !current.Status.CanTransitionTo(to) {
		return domain.Lead{}, fmt.Errorf("lead %s from %s to %s: %w", id, current.Status, to, store.ErrInvalidTransition)
	}
	return s.repo.UpdateLeadStatus(ctx, id, current.Status, to)
}

func (s *Service) AdvanceContact(ctx context.Context, id uuid.UUID, next string) (domain.Contact, error) {
	to, err := domain.ParseContactStatus(strings.ToUpper(strings.TrimSpace(next)))
	if err != nil {
		return domain.Contact{}, validationError("invalid contact status")
	}
	current, err := s.repo.GetContact(ctx, id)
	if err != nil {
		return domain.Contact{}, err
	}
	if !current.Status.CanTransitionTo(to) {
		return domain.Contact{}, fmt.Errorf("contact %s from %s to %s: %w", id, current.Status, to, store.ErrInvalidTransition)
	}
	return s.repo.UpdateContactStatus(ctx, id, current.Status, to)
}

func (s *Service) ListLeads(ctx context.Context, limit int) ([]domain.Lead, error) {
	if limit < 0 || limit > 500 {
		return nil, validationError("limit must be between 0 and 500")
	}
	return s.repo.ListLeads(ctx, limit)
}

func (s *Service) ListContacts(ctx context.Context, limit int) ([]domain.Contact, error) {
	if limit < 0 || limit > 500 {
		return nil, validationError("limit must be between 0 and 500")
	}
	return s.repo.ListContacts(ctx, limit)
}

// IsValidation reports whether err is an input error from this package.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
