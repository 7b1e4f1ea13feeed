package db_models

import (
	"gorm.io/datatypes"
)

type TripType string

const (
	TripTypeBudgetOptimiser TripType = "BUDGET_OPTIMISER"
	TripTypeComprehensive   TripType = "COMPREHENSIVE"
	TripTypeDailyBudget     TripType = "DAILY_BUDGET"
)

type QuickTrip struct {
	BaseModel
	Destination string         `json:"destination"`
	Days        int            `json:"days"`
	Itinerary   datatypes.JSON `gorm:"type:jsonb" json:"itinerary"`
}

func (QuickTrip) TableName() string { return "quick_trips" }

type Trip struct {
	BaseModel
	Destination        string         `json:"destination"`
	Days               int            `json:"days"`
	Budget             *float64       `json:"budget"`
	Type               TripType       `gorm:"index" json:"type"`
	BaseItinerary      datatypes.JSON `gorm:"type:jsonb" json:"baseItinerary"`
	OptimizedItinerary datatypes.JSON `gorm:"type:jsonb" json:"optimizedItinerary"`
	FinalCost          *float64       `json:"finalCost"`
	InitialCost        *float64       `json:"initialCost"`
	Warnings           datatypes.JSON `gorm:"type:jsonb" json:"warnings"`
}

func (Trip) TableName() string { return "trips" }

type VisaQuery struct {
	BaseModel
	Nationality        string         `json:"nationality"`
	DestinationCountry string         `json:"destinationCountry"`
	Visa               datatypes.JSON `gorm:"type:jsonb" json:"visa"`
}

func (VisaQuery) TableName() string { return "visa_queries" }

type PackingQuery struct {
	BaseModel
	Destination string         `json:"destination"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	TripType    string         `json:"tripType"`
	Preferences string         `json:"preferences"`
	PackingList datatypes.JSON `gorm:"type:jsonb" json:"packingList"`
}

func (PackingQuery) TableName() string { return "packing_queries" }

type FlightSearch struct {
	BaseModel
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Date        string         `json:"date"`
	Result      datatypes.JSON `gorm:"type:jsonb" json:"result"`
}

func (FlightSearch) TableName() string { return "flight_searches" }

type WeatherLog struct {
	BaseModel
	City    string         `json:"city"`
	Date    string         `json:"date"`
	Weather datatypes.JSON `gorm:"type:jsonb" json:"weather"`
}

func (WeatherLog) TableName() string { return "weather_log" }

type CityReview struct {
	BaseModel
	City     string         `json:"city"`
	Insights datatypes.JSON `gorm:"type:jsonb" json:"insights"`
}

func (CityReview) TableName() string { return "city_reviews" }

// AllModels lists every history table for migration.
func AllModels() []interface{} {
	return []interface{}{
		&QuickTrip{}, &Trip{}, &VisaQuery{}, &PackingQuery{},
		&FlightSearch{}, &WeatherLog{}, &CityReview{},
	}
}

// History groups every saved record of one user, newest first.
type History struct {
	QuickTrips         []QuickTrip    `json:"quickTrips"`
	BudgetTrips        []Trip         `json:"budgetTrips"`
	ComprehensiveTrips []Trip         `json:"comprehensiveTrips"`
	DailyBudgetTrips   []Trip         `json:"dailyBudgetTrips"`
	VisaQueries        []VisaQuery    `json:"visaQueries"`
	PackingQueries     []PackingQuery `json:"packingQueries"`
	FlightSearches     []FlightSearch `json:"flightSearches"`
	WeatherLogs        []WeatherLog   `json:"weatherLogs"`
	CityReviews        []CityReview   `json:"cityReviews"`
}
