package services

import (
	"testing"
	"time"

	"hunter-fitness-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvent(t *testing.T, svc *EventService, title string, start, end time.Time) *models.Event {
	t.Helper()
	event, err := svc.Create(&models.EventCreateRequest{
		Title:       title,
		Description: "d",
		StartDate:   &start,
		EndDate:     &end,
		Type:        "rankup",
	})
	require.NoError(t, err)
	return event
}

func TestListActiveEvents(t *testing.T) {
	svc := NewEventService(newTestDB(t))
	now := time.Now()

	makeEvent(t, svc, "past", now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	live := makeEvent(t, svc, "live", now.Add(-time.Hour), now.Add(time.Hour))
	makeEvent(t, svc, "future", now.Add(24*time.Hour), now.Add(48*time.Hour))

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, live.ID, active[0].ID)
}

func TestEventWindow(t *testing.T) {
	now := time.Now()
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)

	event := &models.Event{StartDate: &start, EndDate: &end}
	assert.True(t, event.IsActive(now))
	assert.False(t, event.IsActive(now.Add(2*time.Hour)))

	open := &models.Event{StartDate: &start}
	assert.False(t, open.IsActive(now))
}
