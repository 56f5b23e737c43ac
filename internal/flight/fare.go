package flight

import (
	"strings"
)

const (
	promoCode     = "SAVE10"
	promoDiscount = 500
)

var classMultipliers = map[TravelClass]float64{
	TravelClassEconomy:  1,
	TravelClassBusiness: 2.5,
	TravelClassFirst:    4,
}

// ClassMultiplier is 1 for any class it does not know.
func ClassMultiplier(class TravelClass) float64 {
	if m, ok := classMultipliers[class]; ok {
		return m
	}
	return 1
}

func PerPersonFare(basePrice uint64, class TravelClass) float64 {
	return float64(basePrice) * ClassMultiplier(class)
}

func TotalFare(basePrice uint64, class TravelClass, passengers uint64) float64 {
	return PerPersonFare(basePrice, class) * float64(passengers)
}

type Promo struct {
	Code     string `json:"code"`
	Applied  bool   `json:"applied"`
	Discount uint64 `json:"discount"`
}

// ApplyPromo depends only on the trimmed, case-folded input.
func ApplyPromo(code string) Promo {
	trimmed := strings.TrimSpace(code)
	if strings.EqualFold(trimmed, promoCode) {
		return Promo{Code: trimmed, Applied: true, Discount: promoDiscount}
	}
	return Promo{Code: trimmed}
}

// ResultsTotal is the results-step fare: both legs summed, the discount taken
// off (never below zero), then multiplied by the traveller count. No tax.
func ResultsTotal(sel Selection, discount uint64, travellers uint64) uint64 {
	var total uint64
	if sel.Outbound != nil {
		total += sel.Outbound.Price.Amount
	}
	if sel.Return != nil {
		total += sel.Return.Price.Amount
	}
	if discount >= total {
		total = 0
	} else {
		total -= discount
	}
	if travellers == 0 {
		travellers = 1
	}
	return total * travellers
}

const taxPercent = 18

// BookingFare is the booking-step price breakdown.
type BookingFare struct {
	BasePrice float64 `json:"basePrice"`
	Taxes     float64 `json:"taxes"`
	Total     float64 `json:"total"`
}

// BookingSummary applies the fixed 18% tax to basePrice × travellers. It
// takes no discount; promo codes only affect ResultsTotal.
func BookingSummary(basePrice uint64, travellers uint64) BookingFare {
	if travellers == 0 {
		travellers = 1
	}
	subtotal := basePrice * travellers
	taxes := float64(subtotal*taxPercent) / 100
	return BookingFare{
		BasePrice: float64(subtotal),
		Taxes:     taxes,
		Total:     float64(subtotal) + taxes,
	}
}
