package ical

import (
	"io"
	"time"

	goical "github.com/emersion/go-ical"

	"meetbook/backend/internal/domain"
)

const productID = "-//meetbook//meetings//EN"

// Encode writes m as a single-event VCALENDAR.
func Encode(w io.Writer, m domain.Meeting, loc *time.Location, stamp time.Time) error {
	cal := goical.NewCalendar()
	cal.Props.SetText(goical.PropVersion, "2.0")
	cal.Props.SetText(goical.PropProductID, productID)
	cal.Props.SetText(goical.PropMethod, "PUBLISH")

	start := m.Date.At(m.Time, loc).UTC()
	end := start.Add(time.Duration(m.Duration) * time.Minute)

	ev := goical.NewEvent()
	ev.Props.SetText(goical.PropUID, m.ID.String()+"@meetbook")
	ev.Props.SetDateTime(goical.PropDateTimeStamp, stamp.UTC())
	ev.Props.SetDateTime(goical.PropDateTimeStart, start)
	ev.Props.SetDateTime(goical.PropDateTimeEnd, end)

	summary := "Consultation with " + m.Name
	if m.Service != "" {
		summary = m.Service + " with " + m.Name
	}
	ev.Props.SetText(goical.PropSummary, summary)
	if m.Message != "" {
		ev.Props.SetText(goical.PropDescription, m.Message)
	}
	ev.Props.SetText(goical.PropStatus, eventStatus(m.Status))

	attendee := goical.NewProp(goical.PropAttendee)
	attendee.Value = "mailto:" + m.Email
	if m.Name != "" {
		attendee.Params.Set(goical.ParamCommonName, m.Name)
	}
	ev.Props.Set(attendee)

	cal.Children = append(cal.Children, ev.Component)
	return goical.NewEncoder(w).Encode(cal)
}

func eventStatus(s domain.MeetingStatus) string {
	switch s {
	case domain.MeetingStatusCancelled:
		return "CANCELLED"
	case domain.MeetingStatusPending:
		return "TENTATIVE"
	default:
		return "CONFIRMED"
	}
}
