package model

// Restrictions is a snapshot of the limits of a baggage rule
type Restrictions struct {
	Width  Limit  `json:"width"`
	Height Limit  `json:"height"`
	Depth  Limit  `json:"depth"`
	Length *Limit `json:"length"`
	Weight *Limit `json:"weight"`
}

// EvaluationResult is the verdict for one baggage rule together with the
// airline and country data resolved for display
type EvaluationResult struct {
	ICAO          string        `json:"icao"`
	IATA          string        `json:"iata"`
	NameJa        string        `json:"name_ja"`
	NameEn        string        `json:"name_en"`
	Country       string        `json:"country"`
	CountryJa     string        `json:"country_ja"`
	Area          string        `json:"area,omitempty"`
	RegionJa      string        `json:"region_ja,omitempty"`
	RouteType     RouteType     `json:"route_type"`
	SeatCondition SeatCondition `json:"seat_condition"`
	Restrictions  Restrictions  `json:"restrictions"`
	Compatible    bool          `json:"compatible"`
}

// Results partitions evaluated rules into compatible and incompatible buckets
type Results struct {
	Compatible   []EvaluationResult `json:"compatible"`
	Incompatible []EvaluationResult `json:"incompatible"`
}

// RestrictionAnalysis counts why incompatible rules failed.
// One rule may count toward several counters.
type RestrictionAnalysis struct {
	WeightIssues    int `json:"weight_issues"`
	DimensionIssues int `json:"dimension_issues"`
	LengthIssues    int `json:"length_issues"`
}

// Report summarises a set of results
type Report struct {
	CompatibilityRate   float64                       `json:"compatibility_rate"`
	TotalAirlines       int                           `json:"total_airlines"`
	RegionBreakdown     map[string][]EvaluationResult `json:"region_breakdown"`
	RestrictionAnalysis RestrictionAnalysis           `json:"restriction_analysis"`
	Volume              float64                       `json:"volume"`
}

// CheckResponse is everything produced for a single suitcase check
type CheckResponse struct {
	Suitcase    Suitcase          `json:"suitcase"`
	TotalLength float64           `json:"total_length"`
	Results     Results           `json:"results"`
	Report      Report            `json:"report"`
	Similar     []CatalogSuitcase `json:"similar,omitempty"`
}

// CatalogRanking is the compatibility of one catalogue product
type CatalogRanking struct {
	Suitcase          CatalogSuitcase `json:"suitcase"`
	Compatible        int             `json:"compatible"`
	Total             int             `json:"total"`
	CompatibilityRate float64         `json:"compatibility_rate"`
}

// CheckRequest is a single suitcase check as asked for by a caller
type CheckRequest struct {
	Suitcase Suitcase
	// Lang selects the region labels of the report; empty uses the default
	Lang    string
	Similar bool
}
