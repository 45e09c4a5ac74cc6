package api

import (
	"net/http"

	"github.com/circulo-sport/courtdesk/events"
	"github.com/gin-gonic/gin"
)

type EventSource interface {
	Subscribe() (<-chan events.Event, func())
}

// EventsHandler streams change notifications as server-sent events so that
// open screens refresh when another one writes.
type EventsHandler struct {
	source EventSource
}

func NewEventsHandler(source EventSource) *EventsHandler {
	return &EventsHandler{source: source}
}

func (h *EventsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/events", h.Stream)
}

func (h *EventsHandler) Stream(c *gin.Context) {
	ch, cancel := h.source.Subscribe()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	c.Header("Content-Type", "text/event-stream")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}

			c.SSEvent(string(ev.Type), ev)
			c.Writer.Flush()
		}
	}
}
