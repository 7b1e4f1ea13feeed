package request_models

type QuickTripRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	UserID      string `json:"userId"`
}

type BudgetTripRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Budget      *float64 `json:"budget"`
	UserID      string   `json:"userId"`
}

type ComprehensiveTripRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Budget      *float64 `json:"budget"`
	Nationality string   `json:"nationality"`
	TripType    string   `json:"tripType"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Gender      string   `json:"gender"`
	Preferences []string `json:"preferences"`
	Origin      string   `json:"origin"`
	UserID      string   `json:"userId"`
}

type DailyBudgetRequest struct {
	Destination      string   `json:"destination"`
	Days             int      `json:"days"`
	DailyBudgetLimit *float64 `json:"dailyBudgetLimit"`
	UserID           string   `json:"userId"`
}

type FlightOptionsRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

type RealFlightsRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	UserID      string `json:"userId"`
}

type VisaRequest struct {
	Nationality        string `json:"nationality"`
	DestinationCountry string `json:"destinationCountry"`
	UserID             string `json:"userId"`
}

type PackingListRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	TripType    string `json:"tripType"`
	Preferences string `json:"preferences"`
	UserID      string `json:"userId"`
}

type WeatherQuery struct {
	City   string `form:"city" json:"city"`
	Date   string `form:"date" json:"date"`
	UserID string `form:"userId" json:"userId"`
}

type CityReviewQuery struct {
	City   string `form:"city"`
	UserID string `form:"userId"`
}

type HistoryQuery struct {
	UserID string `form:"userId"`
}
