package bored

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/bored/internal/core/config"
)

const sampleActivity = `{
	"activity": "Learn how to play a new sport",
	"type": "recreational",
	"participants": 3,
	"price": 0.1,
	"link": "https://example.com/sports",
	"key": "5808228",
	"accessibility": 0.2
}`

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTPClient_GetActivity(t *testing.T) {
	ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/activity", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("participants"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "bored-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleActivity))
	})

	client := NewHTTPClient(ts.URL+"/api", WithUserAgent("bored-test"))

	got, err := client.GetActivity(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, &Activity{
		Activity:      "Learn how to play a new sport",
		Type:          "recreational",
		Participants:  3,
		Price:         0.1,
		Link:          "https://example.com/sports",
		Key:           "5808228",
		Accessibility: 0.2,
	}, got)
}

func TestHTTPClient_GetActivity_Absent(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops", wantErr: ErrUnavailable},
		{name: "not found", status: http.StatusNotFound, body: "", wantErr: ErrUnavailable},
		{name: "rate limited", status: http.StatusTooManyRequests, body: "", wantErr: ErrUnavailable},
		{name: "error payload", status: http.StatusOK, body: `{"error":"No activity found with the specified parameters"}`, wantErr: ErrUnavailable},
		{name: "invalid json", status: http.StatusOK, body: `{"activity":`, wantErr: ErrMalformed},
		{name: "wrong shape", status: http.StatusOK, body: `["not", "an", "object"]`, wantErr: ErrMalformed},
		{name: "wrong field type", status: http.StatusOK, body: `{"participants":"three","key":"1"}`, wantErr: ErrMalformed},
		{name: "missing key", status: http.StatusOK, body: `{"activity":"something"}`, wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			client := NewHTTPClient(ts.URL)

			got, err := client.GetActivity(context.Background(), 2)
			assert.Nil(t, got)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsAbsent(err))
		})
	}
}

func TestHTTPClient_GetActivity_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := ts.URL
	ts.Close()

	client := NewHTTPClient(addr)

	got, err := client.GetActivity(context.Background(), 1)
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsAbsent(err))
}

func TestHTTPClient_GetActivity_InvalidParticipants(t *testing.T) {
	var calls atomic.Int32
	ts := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(sampleActivity))
	})

	client := NewHTTPClient(ts.URL)

	for _, n := range []int{0, -1, -50} {
		got, err := client.GetActivity(context.Background(), n)
		assert.Nil(t, got)
		require.ErrorIs(t, err, ErrInvalidParticipants)
		assert.False(t, IsAbsent(err))
	}

	assert.Zero(t, calls.Load(), "no request should be made")
}

func TestHTTPClient_GetActivity_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	client := NewHTTPClient(ts.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	got, err := client.GetActivity(ctx, 2)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, IsAbsent(err), "a cancelled request is a fault, not an absent activity")
}

func TestHTTPClient_BaseURLWithTrailingSlash(t *testing.T) {
	ts := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activity", r.URL.Path)
		_, _ = w.Write([]byte(sampleActivity))
	})

	client := NewHTTPClient(ts.URL + "/api/")

	_, err := client.GetActivity(context.Background(), 3)
	require.NoError(t, err)
}

func TestNew_SelectsImplementation(t *testing.T) {
	log := zerolog.Nop()

	mock := New(config.BoredClient{UseMock: true}, log)
	assert.IsType(t, &MockClient{}, mock)

	httpClient := New(config.BoredClient{BaseURL: "http://localhost"}, log)
	require.IsType(t, &HTTPClient{}, httpClient)
	assert.Equal(t, "http://localhost", httpClient.(*HTTPClient).baseURL)
}
