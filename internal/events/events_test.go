package events_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mikropanel/internal/events"
)

func TestBroker_PublishInOrder(t *testing.T) {
	b := events.NewBroker()

	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(events.TopicClients)
	b.Publish(events.TopicInventory)

	assert.Equal(t, events.TopicClients, (<-ch).Topic)
	assert.Equal(t, events.TopicInventory, (<-ch).Topic)
}

func TestBroker_SlowSubscriberDrops(t *testing.T) {
	b := events.NewBroker()

	ch, cancel := b.Subscribe()
	defer cancel()

	for range 100 {
		b.Publish(events.TopicClosing)
	}

	assert.Equal(t, 16, len(ch))
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := events.NewBroker()

	ch, cancel := b.Subscribe()
	assert.Equal(t, 1, b.Subscribers())

	cancel()
	cancel()

	assert.Equal(t, 0, b.Subscribers())

	_, open := <-ch
	assert.False(t, open)
}

func TestBroker_Notify(t *testing.T) {
	type testCase struct {
		name        string
		method      string
		status      int
		wantPublish bool
	}

	tests := []testCase{
		{name: "SuccessfulPost", method: http.MethodPost, status: http.StatusCreated, wantPublish: true},
		{name: "ImplicitOK", method: http.MethodDelete, status: 0, wantPublish: true},
		{name: "FailedWrite", method: http.MethodPut, status: http.StatusConflict, wantPublish: false},
		{name: "Read", method: http.MethodGet, status: http.StatusOK, wantPublish: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := events.NewBroker()

			ch, cancel := b.Subscribe()
			defer cancel()

			h := b.Notify(events.TopicShipments)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, "/", nil))

			if tt.wantPublish {
				require.Len(t, ch, 1)
				assert.Equal(t, events.TopicShipments, (<-ch).Topic)
			} else {
				assert.Empty(t, ch)
			}
		})
	}
}

func TestBroker_ServeHTTP(t *testing.T) {
	b := events.NewBroker()

	srv := httptest.NewServer(b)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)

	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, ": connected\n", line)

	require.Eventually(t, func() bool { return b.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	b.Publish(events.TopicExpenses)

	var got []string

	for len(got) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)

		if line = strings.TrimSpace(line); line != "" {
			got = append(got, line)
		}
	}

	assert.Equal(t, "event: expenses", got[0])
	assert.True(t, strings.HasPrefix(got[1], `data: {"topic":"expenses","at":`))
}
