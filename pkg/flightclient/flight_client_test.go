package flightclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripar/internal/flight"
	"tripar/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.Client(), srv.URL+"/", logger.NewWithWriter("test", io.Discard))
}

var roundTrip = flight.SearchCriteria{
	From:       "Mumbai",
	To:         "del",
	Departure:  "2024-01-15",
	ReturnDate: "2024-01-20",
	TripType:   flight.TripTypeRoundTrip,
}

func TestFetchFlights_SendsQueryContract(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	})

	flights, err := c.FetchFlights(context.Background(), roundTrip)
	require.NoError(t, err)
	assert.Empty(t, flights)

	assert.Equal(t, "/flights/flights", gotPath)
	assert.Equal(t, []string{"MUMBAI"}, gotQuery["from"])
	assert.Equal(t, []string{"DEL"}, gotQuery["to"])
	assert.Equal(t, []string{"2024-01-15"}, gotQuery["departure"])
	assert.Equal(t, []string{"2024-01-20"}, gotQuery["return"])
}

func TestFetchFlights_OneWayOmitsReturn(t *testing.T) {
	var hasReturn bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hasReturn = r.URL.Query().Has("return")
		_, _ = w.Write([]byte(`[]`))
	})

	oneWay := roundTrip
	oneWay.TripType = flight.TripTypeOneWay
	_, err := c.FetchFlights(context.Background(), oneWay)
	require.NoError(t, err)
	assert.False(t, hasReturn)
}

func TestFetchFlights_DecodesAndToleratesMalformedElements(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"airline":{"name":"IndiGo"},"flight":{"iata":"6E202"},
			 "departure":{"airport":"Mumbai (BOM)","scheduled":"2024-01-15T11:15:00+00:00"},
			 "arrival":{"airport":"Delhi (DEL)","scheduled":"2024-01-15T13:20:00+00:00"},
			 "flight_status":"scheduled","distance":{"km":"N/A"},"price":{"amount":7200,"currency":"INR"}},
			42,
			{"airline":"not-an-object","flight":{"iata":"XX1"}}
		]`))
	})

	flights, err := c.FetchFlights(context.Background(), roundTrip)
	require.NoError(t, err)
	require.Len(t, flights, 3)

	assert.Equal(t, "IndiGo", flights[0].Airline.Name)
	assert.Equal(t, uint64(7200), flights[0].Price.Amount)
	assert.False(t, flights[0].Distance.Km.Known)

	assert.Equal(t, flight.RawFlight{}, flights[1])

	require.NotNil(t, flights[2].Airline)
	assert.Empty(t, flights[2].Airline.Name)
	require.NotNil(t, flights[2].Flight)
	assert.Equal(t, "XX1", flights[2].Flight.IATA)
}

func TestFetchFlights_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "object instead of array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error":"Missing required parameters"}`))
			},
		},
		{
			name: "truncated body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"airline":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			_, err := c.FetchFlights(context.Background(), roundTrip)
			assert.Error(t, err)
		})
	}
}

func TestFetchFlights_RespectsDeadline(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.FetchFlights(ctx, roundTrip)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
