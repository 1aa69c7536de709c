package models

// TransferDetails describes the two legs of a single-transfer itinerary.
type TransferDetails struct {
	TransferStation    string `json:"transferStation"`
	FirstLegDeparture  string `json:"firstLegDeparture"`
	FirstLegDuration   int    `json:"firstLegDuration"`
	FirstLegService    string `json:"firstLegService"`
	SecondLegDeparture string `json:"secondLegDeparture"`
	SecondLegDuration  int    `json:"secondLegDuration"`
	SecondLegService   string `json:"secondLegService"`
	WaitingTime        int    `json:"waitingTime"`
}

// Recommendation is one ranked journey option returned to the caller.
type Recommendation struct {
	Type               string           `json:"type"`
	DepartureTime      string           `json:"departureTime"`
	Duration           int              `json:"duration"`
	ServiceType        string           `json:"serviceType"`
	QualityScore       float64          `json:"qualityScore"`
	RouteDetails       string           `json:"routeDetails"`
	TotalDuration      int              `json:"totalDuration"`
	Transfers          int              `json:"transfers"`
	TimeDifferenceInfo string           `json:"timeDifferenceInfo,omitempty"`
	TransferDetails    *TransferDetails `json:"transferDetails,omitempty"`
}

// Recommendation types.
const (
	RecommendationDirect   = "direct"
	RecommendationTransfer = "transfer"
)
