package request_models

type PlanMeta struct {
	TripType    string
	StartDate   string
	EndDate     string
	Gender      string
	Preferences []string
	// Origin overrides the default departure city for the flight quote.
	Origin string
}

// PlanRequest is the input of a comprehensive plan. A nil or non-positive
// Budget means no budget was given.
type PlanRequest struct {
	Destination string
	Days        int
	Budget      *float64
	Nationality string
	Meta        PlanMeta
}

func (r PlanRequest) HasBudget() bool {
	return r.Budget != nil && *r.Budget > 0
}

type PackingRequest struct {
	Destination string
	StartDate   string
	EndDate     string
	TripType    string
	Preferences string
}
