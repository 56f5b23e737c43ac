package flight

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := new(MockFlightClient)
	client.On("FetchFlights", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	r := gin.New()
	NewFlightHandler(newTestService(client), NewCatalog(nil)).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const mumbaiDelhi = `"from":"Mumbai","to":"Delhi","departure":"2024-01-15","tripType":"ONE_WAY","travellers":2,"travelClass":"ECONOMY"`

func TestSearchFlightsHandler(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/flights/search", "{"+mumbaiDelhi+"}")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, SourceFallback, resp.Metadata.Source)
	assert.Len(t, resp.Flights, 3)
}

func TestSearchFlightsHandler_MissingCriteria(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/flights/search", `{"from":"Mumbai"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(ErrorCodeMissingCriteria), errorBody(t, rec)["code"])
}

func TestSearchFlightsHandler_MalformedBody(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/flights/search", `{"from":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(ErrorCodeValidation), errorBody(t, rec)["code"])
}

func TestFilterFlightsHandler_DefaultsMissingPanel(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/flights/filter",
		`{`+mumbaiDelhi+`,"filters":{"airlines":["IndiGo"]},"sortBy":"departure","selectedOutbound":"AI101","promoCode":"SAVE10"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ResultsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"6E202"}, codes(resp.Outbound), "price ceiling defaults to the maximum")
	assert.Equal(t, SortByDeparture, resp.SortBy)
	assert.Equal(t, uint64((8500-500)*2), resp.Fare.TotalFare)
	assert.True(t, resp.Fare.BookingReady)
}

func TestFilterFlightsHandler_UnknownSlot(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/flights/filter",
		`{`+mumbaiDelhi+`,"filters":{"depTime":["dawn"]}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, string(ErrorCodeValidation), errorBody(t, rec)["code"])
}

func TestBookNowHandler(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/flights/book", `{`+mumbaiDelhi+`}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Please select a flight.", errorBody(t, rec)["error"])

	rec = doJSON(t, r, http.MethodPost, "/v1/flights/book", `{`+mumbaiDelhi+`,"outbound":"UK805"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload BookingPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotNil(t, payload.Flight)
	assert.Equal(t, uint64(9500*2), payload.TotalFare)

	rec = doJSON(t, r, http.MethodPost, "/v1/flights/book", `{`+mumbaiDelhi+`,"outbound":"ZZ1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidateCacheHandler(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/flights/cache/invalidate", `{`+mumbaiDelhi+`}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCatalogHandlers(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/flights/flights?from=bom&to=del&departure=2024-01-15&return=2024-01-20", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var flights []FlightRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flights))
	assert.Len(t, flights, 10)

	rec = doJSON(t, r, http.MethodGet, "/api/flights/flights?from=bom", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing required parameters: to, departure", errorBody(t, rec)["error"])

	rec = doJSON(t, r, http.MethodGet, "/api/flights/flights/UK805", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/flights/flights/NOPE", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(ErrorCodeNotFound), errorBody(t, rec)["code"])

	rec = doJSON(t, r, http.MethodGet, "/api/flights/search?from=bom&to=del&departure=2024-01-15&passengers=3&class=FIRST&airline=vistara", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var priced []PricedFlight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &priced))
	require.Len(t, priced, 1)
	assert.Equal(t, 9500.0*4*3, priced[0].Price.Amount)
}
