package services

import (
	"strings"

	"tripmate/internal/models/response_models"
)

type baggageProfile struct {
	carryOn string
	checked string
	extra   string
	dims    string
}

var defaultBaggage = baggageProfile{carryOn: "7kg", checked: "23kg", extra: "₹2500/bag", dims: "55x40x20cm"}

// airlineBaggage is keyed by IATA carrier code. Read-only after init.
var airlineBaggage = map[string]baggageProfile{
	// India
	"6E": {carryOn: "7kg", checked: "15kg", extra: "₹600/kg", dims: "55x35x25cm"},
	"AI": {carryOn: "8kg", checked: "25kg", extra: "₹2500/bag", dims: "55x40x20cm"},
	"UK": {carryOn: "7kg", checked: "23kg", extra: "₹2800/bag", dims: "55x38x25cm"},
	"SG": {carryOn: "7kg", checked: "15kg", extra: "₹700/kg", dims: "55x40x20cm"},
	"9W": {carryOn: "7kg", checked: "25kg", extra: "₹3000/bag", dims: "55x40x20cm"},
	"G9": {carryOn: "7kg", checked: "20kg", extra: "₹2500/bag", dims: "55x35x25cm"},

	// Gulf, Middle East, Asia
	"EK": {carryOn: "7kg", checked: "30kg", extra: "$100/bag", dims: "55x38x20cm"},
	"QR": {carryOn: "7kg", checked: "30kg", extra: "QAR300/bag", dims: "50x37x25cm"},
	"SV": {carryOn: "7kg", checked: "23kg", extra: "SAR250/bag", dims: "50x37x25cm"},
	"WY": {carryOn: "7kg", checked: "30kg", extra: "OMR30/bag", dims: "55x40x25cm"},
	"GF": {carryOn: "7kg", checked: "23kg", extra: "$80/bag", dims: "55x40x23cm"},
	"UL": {carryOn: "7kg", checked: "20kg", extra: "LKR5000/bag", dims: "55x38x20cm"},
	"SQ": {carryOn: "7kg", checked: "30kg", extra: "$120/bag", dims: "55x40x20cm"},
	"MH": {carryOn: "7kg", checked: "20kg", extra: "MYR150/bag", dims: "56x36x23cm"},
	"CX": {carryOn: "7kg", checked: "30kg", extra: "HKD600/bag", dims: "56x36x23cm"},
	"JL": {carryOn: "10kg", checked: "23kg", extra: "¥5000/bag", dims: "55x40x25cm"},
	"NH": {carryOn: "10kg", checked: "23kg", extra: "¥5000/bag", dims: "55x40x25cm"},
	"KE": {carryOn: "10kg", checked: "23kg", extra: "KRW50000/bag", dims: "55x40x20cm"},
	"OZ": {carryOn: "10kg", checked: "23kg", extra: "KRW50000/bag", dims: "55x40x20cm"},

	// Europe
	"LH": {carryOn: "8kg", checked: "23kg", extra: "€75/bag", dims: "55x40x23cm"},
	"AF": {carryOn: "12kg", checked: "23kg", extra: "€70/bag", dims: "55x35x25cm"},
	"KL": {carryOn: "12kg", checked: "23kg", extra: "€70/bag", dims: "55x35x25cm"},
	"BA": {carryOn: "23kg", checked: "23kg", extra: "£65/bag", dims: "56x45x25cm"},
	"LX": {carryOn: "8kg", checked: "23kg", extra: "CHF80/bag", dims: "55x40x23cm"},
	"OS": {carryOn: "8kg", checked: "23kg", extra: "€75/bag", dims: "55x40x23cm"},
	"AY": {carryOn: "8kg", checked: "23kg", extra: "€60/bag", dims: "55x40x23cm"},
	"SK": {carryOn: "8kg", checked: "23kg", extra: "€60/bag", dims: "55x40x23cm"},
	"TK": {carryOn: "8kg", checked: "30kg", extra: "$100/bag", dims: "55x40x23cm"},
	"FR": {carryOn: "10kg", checked: "0kg", extra: "€25–€40/bag", dims: "55x40x20cm"},
	"U2": {carryOn: "15kg", checked: "0kg", extra: "£24–£37/bag", dims: "45x36x20cm"},

	// North America
	"AA": {carryOn: "10kg", checked: "23kg", extra: "$75/bag", dims: "56x36x23cm"},
	"DL": {carryOn: "10kg", checked: "23kg", extra: "$75/bag", dims: "56x35x23cm"},
	"UA": {carryOn: "10kg", checked: "23kg", extra: "$75/bag", dims: "56x35x22cm"},
	"WS": {carryOn: "10kg", checked: "23kg", extra: "CAD75/bag", dims: "53x38x23cm"},
	"AC": {carryOn: "10kg", checked: "23kg", extra: "CAD70/bag", dims: "55x40x23cm"},
	"B6": {carryOn: "10kg", checked: "23kg", extra: "$65/bag", dims: "56x35x23cm"},
	"WN": {carryOn: "10kg", checked: "2 x 23kg", extra: "$75/bag", dims: "61x41x28cm"},
	"AS": {carryOn: "10kg", checked: "23kg", extra: "$75/bag", dims: "56x36x23cm"},

	// Latin America, Africa
	"LA": {carryOn: "8kg", checked: "23kg", extra: "$60/bag", dims: "55x35x25cm"},
	"AV": {carryOn: "10kg", checked: "23kg", extra: "$60/bag", dims: "55x35x25cm"},
	"CM": {carryOn: "10kg", checked: "23kg", extra: "$40–$60/bag", dims: "56x36x26cm"},
	"ET": {carryOn: "7kg", checked: "2 x 23kg", extra: "$80/bag", dims: "55x40x23cm"},
	"KQ": {carryOn: "7kg", checked: "23kg", extra: "$60/bag", dims: "55x40x23cm"},
	"SA": {carryOn: "7kg", checked: "23kg", extra: "$60/bag", dims: "56x36x23cm"},
}

// BaggageFor returns the allowance for a carrier, or the default profile.
func BaggageFor(carrierCode string) response_models.Baggage {
	profile, ok := airlineBaggage[strings.ToUpper(strings.TrimSpace(carrierCode))]
	if !ok {
		profile = defaultBaggage
	}
	return response_models.Baggage{
		CarryOn:         profile.carryOn,
		Checked:         profile.checked,
		Extra:           profile.extra,
		CabinDimensions: profile.dims,
	}
}

// DefaultBaggage is the allowance used for carriers missing from the table.
func DefaultBaggage() response_models.Baggage {
	return BaggageFor("")
}
