package response_models

import "encoding/json"

type Place struct {
	Name            string `json:"name"`
	Category        string `json:"category,omitempty"`
	Description     string `json:"description,omitempty"`
	VisitDuration   string `json:"visitDuration,omitempty"`
	BestTimeToVisit string `json:"bestTimeToVisit,omitempty"`
	EntryFee        Amount `json:"entryFee"`
	Priority        string `json:"priority,omitempty"`

	raw json.RawMessage
}

func (p *Place) UnmarshalJSON(data []byte) error {
	type fields Place
	var view fields
	raw := keepRaw(data, &view)
	*p = Place(view)
	p.raw = raw
	return nil
}

func (p Place) MarshalJSON() ([]byte, error) {
	type fields Place
	return emitRaw(p.raw, fields(p))
}

const PriorityMustSee = "must-see"

type DayPlan struct {
	Day        DayNumber  `json:"day"`
	Places     StringList `json:"places"`
	Activities StringList `json:"activities"`

	raw json.RawMessage
}

func (d *DayPlan) UnmarshalJSON(data []byte) error {
	type fields DayPlan
	var view fields
	raw := keepRaw(data, &view)
	*d = DayPlan(view)
	d.raw = raw
	return nil
}

func (d DayPlan) MarshalJSON() ([]byte, error) {
	type fields DayPlan
	return emitRaw(d.raw, fields(d))
}

type Facility struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Cost        Amount `json:"cost"`

	raw json.RawMessage
}

func (fc *Facility) UnmarshalJSON(data []byte) error {
	type fields Facility
	var view fields
	raw := keepRaw(data, &view)
	*fc = Facility(view)
	fc.raw = raw
	return nil
}

func (fc Facility) MarshalJSON() ([]byte, error) {
	type fields Facility
	return emitRaw(fc.raw, fields(fc))
}

type PlacesRecommendation struct {
	PlacesToVisit   []Place    `json:"placesToVisit"`
	DayWisePlan     []DayPlan  `json:"dayWisePlan"`
	CheapFacilities []Facility `json:"cheapFacilities"`
}

func (p *PlacesRecommendation) UnmarshalJSON(data []byte) error {
	var payload struct {
		PlacesToVisit   json.RawMessage `json:"placesToVisit"`
		DayWisePlan     json.RawMessage `json:"dayWisePlan"`
		CheapFacilities json.RawMessage `json:"cheapFacilities"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	p.PlacesToVisit, _ = DecodeList[Place](payload.PlacesToVisit)
	p.DayWisePlan, _ = DecodeList[DayPlan](payload.DayWisePlan)
	p.CheapFacilities, _ = DecodeList[Facility](payload.CheapFacilities)
	return nil
}

// MustSee returns the places flagged must-see, in order.
func (p PlacesRecommendation) MustSee() []Place {
	out := make([]Place, 0)
	for _, place := range p.PlacesToVisit {
		if place.Priority == PriorityMustSee {
			out = append(out, place)
		}
	}
	return out
}

type VisaInfo struct {
	VisaRequired   Text       `json:"visaRequired"`
	VisaType       Text       `json:"visaType"`
	ProcessingTime Text       `json:"processingTime"`
	Fees           Text       `json:"fees"`
	StayLimit      Text       `json:"stayLimit"`
	EntryType      Text       `json:"entryType"`
	Documents      StringList `json:"documents"`
	Notes          StringList `json:"notes"`
	Summary        Text       `json:"summary"`
	Disclaimer     Text       `json:"disclaimer"`
}

type PackingList struct {
	Essentials  StringList `json:"essentials"`
	Clothing    StringList `json:"clothing"`
	Electronics StringList `json:"electronics"`
	Documents   StringList `json:"documents"`
	Extras      StringList `json:"extras"`
}

type WeatherReport struct {
	City            string   `json:"city"`
	Country         string   `json:"country"`
	Date            string   `json:"date"`
	Timezone        string   `json:"timezone"`
	MaxTemp         *float64 `json:"maxTemp"`
	MinTemp         *float64 `json:"minTemp"`
	PrecipitationMm *float64 `json:"precipitationMm"`
	MaxWindSpeed    *float64 `json:"maxWindSpeed"`
	WeatherCode     *int     `json:"weatherCode"`
}

type ReviewInsights struct {
	City       string     `json:"city"`
	Summary    string     `json:"summary"`
	Love       StringList `json:"love"`
	Complaints StringList `json:"complaints"`
	Tips       StringList `json:"tips"`
}
