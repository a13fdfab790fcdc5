package handlers

import (
	"bufio"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/store"
)

// keepAliveInterval bounds how long the stream stays silent so proxies do not
// drop the connection.
const keepAliveInterval = 25 * time.Second

// EventsHandler pushes change notifications to connected clients over
// server-sent events. Each event names the collection that changed; clients
// refetch the data they care about.
type EventsHandler struct {
	store *store.Store
}

// NewEventsHandler constructs EventsHandler.
func NewEventsHandler(st *store.Store) *EventsHandler {
	return &EventsHandler{store: st}
}

// Stream subscribes the client to collection change events.
func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	changes, cancel := h.store.Hub().Subscribe()

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()

		for {
			select {
			case change, ok := <-changes:
				if !ok {
					return
				}
				fmt.Fprintf(w, "event: change\ndata: {\"collection\":%q}\n\n", change.Collection)
			case <-keepAlive.C:
				fmt.Fprint(w, ": keep-alive\n\n")
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	})

	return nil
}
