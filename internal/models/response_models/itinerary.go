package response_models

import "encoding/json"

type HotelOption struct {
	Name          string     `json:"name"`
	PricePerNight Amount     `json:"pricePerNight"`
	Price         Amount     `json:"price,omitempty"`
	Nights        Amount     `json:"nights"`
	TotalCost     Amount     `json:"totalCost,omitempty"`
	Rating        Amount     `json:"rating,omitempty"`
	Amenities     StringList `json:"amenities,omitempty"`
	Location      string     `json:"location,omitempty"`
	Area          string     `json:"area,omitempty"`
	Category      string     `json:"category,omitempty"`
	Type          string     `json:"type,omitempty"`
	Description   string     `json:"description,omitempty"`
	Reason        string     `json:"reason,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON keeps the element exactly as the model sent it; the typed
// fields are a best-effort view used for costing.
func (h *HotelOption) UnmarshalJSON(data []byte) error {
	type fields HotelOption
	var view fields
	raw := keepRaw(data, &view)
	*h = HotelOption(view)
	h.raw = raw
	return nil
}

func (h HotelOption) MarshalJSON() ([]byte, error) {
	type fields HotelOption
	return emitRaw(h.raw, fields(h))
}

// WithTotalCost returns a copy of h annotated with its stay cost.
func (h HotelOption) WithTotalCost(cost float64) HotelOption {
	h.TotalCost = Amount(cost)
	h.raw = setRawField(h.raw, "totalCost", cost)
	return h
}

// NightlyRate is pricePerNight, or price when no nightly rate was given.
func (h HotelOption) NightlyRate() float64 {
	if h.PricePerNight != 0 {
		return h.PricePerNight.Float()
	}
	return h.Price.Float()
}

type ActivityEntry struct {
	Name        string    `json:"name"`
	Price       Amount    `json:"price"`
	Day         DayNumber `json:"day,omitempty"`
	Category    string    `json:"category,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Reason      string    `json:"reason,omitempty"`

	raw json.RawMessage
}

func (a *ActivityEntry) UnmarshalJSON(data []byte) error {
	type fields ActivityEntry
	var view fields
	raw := keepRaw(data, &view)
	*a = ActivityEntry(view)
	a.raw = raw
	return nil
}

func (a ActivityEntry) MarshalJSON() ([]byte, error) {
	type fields ActivityEntry
	return emitRaw(a.raw, fields(a))
}

type Itinerary struct {
	Hotels            []HotelOption   `json:"hotels"`
	Activities        []ActivityEntry `json:"activities"`
	TransportKm       Amount          `json:"transportKm"`
	TransportCost     *Amount         `json:"transportCost,omitempty"`
	OptimizationNotes string          `json:"optimizationNotes,omitempty"`
}

// UnmarshalJSON keeps whatever hotels and activities decode and treats
// malformed lists as empty.
func (it *Itinerary) UnmarshalJSON(data []byte) error {
	var payload struct {
		Hotels            json.RawMessage `json:"hotels"`
		Activities        json.RawMessage `json:"activities"`
		TransportKm       Amount          `json:"transportKm"`
		TransportCost     json.RawMessage `json:"transportCost"`
		OptimizationNotes Text            `json:"optimizationNotes"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}

	it.Hotels, _ = DecodeList[HotelOption](payload.Hotels)
	it.Activities, _ = DecodeList[ActivityEntry](payload.Activities)
	it.TransportKm = payload.TransportKm
	it.TransportCost = nil
	if IsNumber(payload.TransportCost) {
		var cost Amount
		_ = json.Unmarshal(payload.TransportCost, &cost)
		it.TransportCost = &cost
	}
	it.OptimizationNotes = string(payload.OptimizationNotes)
	return nil
}

// CostBreakdown is the hotel and activity split reported next to a budget plan.
type CostBreakdown struct {
	Hotels     float64 `json:"hotels"`
	Activities float64 `json:"activities"`
	Total      float64 `json:"total"`
}
