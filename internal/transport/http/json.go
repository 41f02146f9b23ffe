package http

import (
	"time"

	"meetbook/backend/internal/availability"
	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/service/meetings"
)

type meetingJSON struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Company       string    `json:"company,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Message       string    `json:"message,omitempty"`
	Service       string    `json:"service,omitempty"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Duration      int       `json:"duration"`
	Status        string    `json:"status"`
	GoogleEventID string    `json:"googleEventId,omitempty"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toMeetingJSON(m domain.Meeting) meetingJSON {
	return meetingJSON{
		ID:            m.ID.String(),
		Name:          m.Name,
		Email:         m.Email,
		Company:       m.Company,
		Phone:         m.Phone,
		Message:       m.Message,
		Service:       m.Service,
		Date:          m.Date.String(),
		Time:          m.Time.String(),
		Duration:      m.Duration,
		Status:        string(m.Status),
		GoogleEventID: m.EventID(),
		StartsAt:      m.StartsAt.UTC(),
		EndsAt:        m.EndsAt.UTC(),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

type bookJSON struct {
	Meeting meetingJSON `json:"meeting"`
	Outcome string      `json:"outcome"`
	Warning string      `json:"warning,omitempty"`
	Resumed bool        `json:"resumed,omitempty"`
}

func toBookJSON(res meetings.BookResult) bookJSON {
	return bookJSON{
		Meeting: toMeetingJSON(res.Meeting),
		Outcome: string(res.Outcome),
		Warning: res.Warning,
		Resumed: res.Resumed,
	}
}

type slotJSON struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available *bool  `json:"available,omitempty"`
}

func toSlotJSON(s domain.Slot) slotJSON {
	return slotJSON{Start: s.Start.String(), End: s.End.String()}
}

type dayJSON struct {
	Date    string     `json:"date"`
	Open    bool       `json:"open"`
	Message string     `json:"message,omitempty"`
	Slots   []slotJSON `json:"slots"`
}

func toDayJSON(d availability.Day) dayJSON {
	out := dayJSON{Date: d.Date.String(), Open: d.Open, Message: d.Message, Slots: make([]slotJSON, 0, len(d.Slots))}
	for _, st := range d.Slots {
		s := toSlotJSON(st.Slot)
		available := st.Available
		s.Available = &available
		out.Slots = append(out.Slots, s)
	}
	return out
}

type leadJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message,omitempty"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toLeadJSON(l domain.Lead) leadJSON {
	return leadJSON{
		ID:        l.ID.String(),
		Name:      l.Name,
		Email:     l.Email,
		Company:   l.Company,
		Phone:     l.Phone,
		Message:   l.Message,
		Source:    l.Source,
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt.UTC(),
		UpdatedAt: l.UpdatedAt.UTC(),
	}
}

type contactJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toContactJSON(c domain.Contact) contactJSON {
	return contactJSON{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Company:   c.Company,
		Phone:     c.Phone,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}
