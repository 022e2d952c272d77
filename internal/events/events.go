// Package events fans change notifications out to connected browsers.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type Topic string

const (
	TopicClients     Topic = "clients"
	TopicZones       Topic = "zones"
	TopicInventory   Topic = "inventory"
	TopicAdjustments Topic = "adjustments"
	TopicCollection  Topic = "collection"
	TopicClosing     Topic = "closing"
	TopicShipments   Topic = "shipments"
	TopicExpenses    Topic = "expenses"
	TopicUsers       Topic = "users"
)

type Event struct {
	Topic Topic     `json:"topic"`
	At    time.Time `json:"at"`
}

const (
	bufferSize        = 16
	heartbeatInterval = 25 * time.Second
)

// Broker delivers each published event at most once to every subscriber.
// A subscriber whose buffer is full misses the event.
type Broker struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
	now  func() time.Time
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[chan Event]struct{}), now: time.Now}
}

// Subscribe registers a listener. The returned func unsubscribes and closes
// the channel.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, bufferSize)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
}

func (b *Broker) Publish(topic Topic) {
	ev := Event{Topic: topic, At: b.now()}

	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs)
}

// ServeHTTP streams events as server-sent events until the client goes away.
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// The stream outlives the server's write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	events, cancel := b.Subscribe()
	defer cancel()

	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case ev := <-events:
			data, err := json.Marshal(ev)
			if err != nil {
				slog.Error("failed to encode event", "error", err)
				continue
			}

			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Topic, data)
			flusher.Flush()
		}
	}
}

// Notify publishes topics after every successful mutating request.
func (b *Broker) Notify(topics ...Topic) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			if status := ww.Status(); status == 0 || status < http.StatusBadRequest {
				for _, topic := range topics {
					b.Publish(topic)
				}
			}
		})
	}
}
