package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/circulo-sport/courtdesk/api"
	mock_api "github.com/circulo-sport/courtdesk/api/mocks"
	"github.com/circulo-sport/courtdesk/events"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEventStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_api.NewMockEventSource(ctrl)

	ch := make(chan events.Event, 2)
	ch <- events.Event{Type: events.BookingSaved, Payload: "b1"}
	ch <- events.Event{Type: events.LedgerPosted, Payload: "e1"}
	close(ch)

	unsubscribed := false
	var recv <-chan events.Event = ch
	source.EXPECT().Subscribe().Return(recv, func() { unsubscribed = true }).Times(1)

	router := newEngine()
	api.NewEventsHandler(source).Register(router.Group("/api/v1"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/events", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/event-stream"))
	assert.Contains(t, w.Body.String(), "event:booking.saved\n")
	assert.Contains(t, w.Body.String(), "event:ledger.posted\n")
	assert.Contains(t, w.Body.String(), `"payload":"e1"`)
	assert.True(t, unsubscribed)
}
