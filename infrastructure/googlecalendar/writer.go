package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jrazmi/dashboard/core/calendarsync"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

// Writer inserts and patches events in one calendar.
type Writer struct {
	events     *calendar.EventsService
	calendarID string
}

// NewWriter returns a Writer for calendarID.
func NewWriter(srv *calendar.Service, calendarID string) *Writer {
	return &Writer{
		events:     srv.Events,
		calendarID: calendarID,
	}
}

func toEvent(ev calendarsync.Event) *calendar.Event {
	return &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &calendar.EventDateTime{Date: ev.StartDate},
		End:         &calendar.EventDateTime{Date: ev.EndDate},
	}
}

// Insert creates the event and returns its id.
func (w *Writer) Insert(ctx context.Context, ev calendarsync.Event) (string, error) {
	created, err := w.events.Insert(w.calendarID, toEvent(ev)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	return created.Id, nil
}

// Patch updates an existing event. A deleted or unknown event is reported
// as calendarsync.ErrEventGone.
func (w *Writer) Patch(ctx context.Context, eventID string, ev calendarsync.Event) (string, error) {
	updated, err := w.events.Patch(w.calendarID, eventID, toEvent(ev)).Context(ctx).Do()
	if err != nil {
		if isGone(err) {
			return "", fmt.Errorf("patch event %s: %w", eventID, calendarsync.ErrEventGone)
		}
		return "", fmt.Errorf("patch event %s: %w", eventID, err)
	}
	if updated.Status == "cancelled" {
		return "", fmt.Errorf("patch event %s: %w", eventID, calendarsync.ErrEventGone)
	}
	return updated.Id, nil
}

func isGone(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone
}
