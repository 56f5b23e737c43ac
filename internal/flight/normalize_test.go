package flight

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNormalizer(rate int) *Normalizer {
	return &Normalizer{onTimeRate: func() int { return rate }}
}

func TestCalculateDuration(t *testing.T) {
	tests := []struct {
		name      string
		departure string
		arrival   string
		want      string
	}{
		{"same day", "2024-01-15T10:30:00+00:00", "2024-01-15T12:45:00+00:00", "2h 15m"},
		{"overnight", "2024-01-15T22:10:00+00:00", "2024-01-16T08:15:00+00:00", "10h 5m"},
		{"offsets differ", "2024-01-15T10:00:00+05:30", "2024-01-15T06:00:00+00:00", "1h 30m"},
		{"zero", "2024-01-15T10:00:00Z", "2024-01-15T10:00:00Z", "0h 0m"},
		{"negative", "2024-01-15T12:45:00+00:00", "2024-01-15T10:30:00+00:00", "-3h -15m"},
		{"negative whole hours", "2024-01-15T12:00:00Z", "2024-01-15T10:00:00Z", "-2h 0m"},
		{"no offset", "2024-01-15T10:30", "2024-01-15T11:00", "0h 30m"},
		{"missing departure", NotAvailable, "2024-01-15T12:45:00+00:00", NotAvailable},
		{"empty arrival", "2024-01-15T10:30:00+00:00", "", NotAvailable},
		{"garbage", "yesterday", "2024-01-15T12:45:00+00:00", NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateDuration(tt.departure, tt.arrival))
		})
	}
}

func TestCalculateDuration_MatchesFloorFormula(t *testing.T) {
	dep := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	for _, minutes := range []int{0, 1, 59, 60, 61, 135, 605, 1439, 2000} {
		arr := dep.Add(time.Duration(minutes) * time.Minute)
		diffMs := arr.Sub(dep).Milliseconds()
		want := fmt.Sprintf("%dh %dm", diffMs/3600000, (diffMs%3600000)/60000)

		got := CalculateDuration(dep.Format(time.RFC3339), arr.Format(time.RFC3339))
		assert.Equal(t, want, got, "minutes=%d", minutes)
	}
}

func TestDefaultPrice(t *testing.T) {
	tests := []struct {
		class TravelClass
		want  uint64
	}{
		{TravelClassEconomy, 5000},
		{TravelClassBusiness, 12500},
		{TravelClassFirst, 20000},
		{"PREMIUM", 5000},
		{"", 5000},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			p := DefaultPrice(tt.class)
			assert.Equal(t, tt.want, p.Amount)
			assert.Equal(t, "INR", p.Currency)
		})
	}
}

func TestOnTimeRate_InRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		r := OnTimeRate()
		require.GreaterOrEqual(t, r, 80)
		require.LessOrEqual(t, r, 100)
	}
}

func TestNormalize_DefaultsEveryMissingField(t *testing.T) {
	rec := fixedNormalizer(91).Normalize(RawFlight{}, TravelClassBusiness)

	assert.Equal(t, "Unknown Airline", rec.Airline.Name)
	assert.Equal(t, NotAvailable, rec.Flight.IATA)
	assert.Equal(t, Endpoint{Airport: NotAvailable, Scheduled: NotAvailable}, rec.Departure)
	assert.Equal(t, Endpoint{Airport: NotAvailable, Scheduled: NotAvailable}, rec.Arrival)
	assert.Equal(t, "Unknown", rec.FlightStatus)
	assert.False(t, rec.Distance.Km.Known)
	assert.Equal(t, Price{Amount: 12500, Currency: "INR"}, rec.Price)
	assert.Equal(t, NotAvailable, rec.Duration)
	assert.Equal(t, 91, rec.OnTimeRate)
	assert.Empty(t, rec.TravelClass)
}

func TestNormalize_KeepsProvidedFields(t *testing.T) {
	raw := seedFlight("IndiGo", "6E202", "2024-01-15T11:15:00+00:00", "2024-01-15T13:20:00+00:00", 7200)
	raw.TravelClass = TravelClassEconomy

	rec := fixedNormalizer(85).Normalize(raw, TravelClassFirst)

	assert.Equal(t, "IndiGo", rec.Airline.Name)
	assert.Equal(t, "6E202", rec.Flight.IATA)
	assert.Equal(t, "Mumbai (BOM)", rec.Departure.Airport)
	assert.Equal(t, "scheduled", rec.FlightStatus)
	assert.Equal(t, KnownKilometers(1150), rec.Distance.Km)
	assert.Equal(t, uint64(7200), rec.Price.Amount, "a provided price is never re-priced by class")
	assert.Equal(t, "2h 5m", rec.Duration)
	assert.Equal(t, TravelClassEconomy, rec.TravelClass)
}

func TestNormalizeAll_EmptyInput(t *testing.T) {
	out := NewNormalizer().NormalizeAll(nil, TravelClassEconomy)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestKilometers_JSON(t *testing.T) {
	b, err := json.Marshal(Distance{Km: KnownKilometers(1150.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"km":1150.5}`, string(b))

	b, err = json.Marshal(Distance{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"km":"N/A"}`, string(b))

	var d Distance
	require.NoError(t, json.Unmarshal([]byte(`{"km":"N/A"}`), &d))
	assert.False(t, d.Km.Known)

	require.NoError(t, json.Unmarshal([]byte(`{"km":1150}`), &d))
	assert.Equal(t, KnownKilometers(1150), d.Km)
}
