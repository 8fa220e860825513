package festapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"altranzfest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_ListEvents(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/events", r.URL.Path)
		gotQuery = r.URL.Query().Get("type")
		_, _ = w.Write([]byte(`[{"id":7,"name":"Web Dev Workshop","type":"Workshop","fee":250}]`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", srv.Client())
	events, err := c.ListEvents(context.Background(), domain.EventTypeNonTechnical)
	require.NoError(t, err)
	assert.Equal(t, "Non-Technical", gotQuery)
	require.Len(t, events, 1)
	assert.Equal(t, domain.Event{ID: 7, Name: "Web Dev Workshop", Type: domain.EventTypeWorkshop, Fee: 250}, events[0])
}

func TestHTTPClient_Submit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var sub domain.RegistrationSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, "TXN123", sub.TransactionID)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Registration successful (MOCK)","data":[{"id":"mock-1","fullName":"Asha"}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.Client())
	receipt, err := c.Submit(context.Background(), &domain.RegistrationSubmission{FullName: "Asha", TransactionID: "TXN123"})
	require.NoError(t, err)
	assert.Equal(t, "Registration successful (MOCK)", receipt.Message)
	assert.Equal(t, "mock-1", receipt.RegistrationID)
}

func TestHTTPClient_Submit_ServerError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"validation", http.StatusBadRequest, `{"error":"phone is required"}`, "phone is required"},
		{"server", http.StatusInternalServerError, `{"error":"Server error during registration"}`, "Server error during registration"},
		{"no envelope", http.StatusBadGateway, `<html>bad gateway</html>`, "Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewHTTPClient(srv.URL, srv.Client()).Submit(context.Background(), &domain.RegistrationSubmission{})
			var serr *domain.ServerError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.status, serr.StatusCode)
			assert.Equal(t, tt.wantMsg, serr.Message)
		})
	}
}

func TestHTTPClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, nil).Submit(context.Background(), &domain.RegistrationSubmission{})
	var terr *domain.TransportError
	require.ErrorAs(t, err, &terr)

	_, err = NewHTTPClient(url, nil).ListEvents(context.Background(), "")
	require.ErrorAs(t, err, &terr)
}
