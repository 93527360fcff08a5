package model

// Airline represents a row of the airline reference table
type Airline struct {
	ICAO    string `json:"icao" db:"icao"`
	IATA    string `json:"iata" db:"iata"`
	NameJa  string `json:"name_ja" db:"name_ja"`
	NameEn  string `json:"name_en" db:"name_en"`
	Country string `json:"country" db:"country"`
}

// Country represents a row of the country reference table
type Country struct {
	ID       string `json:"country" db:"country"`
	NameJa   string `json:"name_ja" db:"name_ja"`
	Area     string `json:"area" db:"area"`
	RegionJa string `json:"region_ja" db:"region_ja"`
}

// RouteType tells which flights a baggage rule applies to
type RouteType string

const (
	RouteUnspecified   RouteType = ""
	RouteDomestic      RouteType = "domestic"
	RouteInternational RouteType = "international"
)

// ParseRouteType maps the 種別 column tag to a RouteType
func ParseRouteType(tag string) RouteType {
	switch tag {
	case "国内":
		return RouteDomestic
	case "国際":
		return RouteInternational
	default:
		return RouteUnspecified
	}
}

func (t RouteType) String() string {
	if t == RouteUnspecified {
		return "unspecified"
	}
	return string(t)
}

// SeatCondition is the aircraft-size condition of a baggage rule
type SeatCondition string

const (
	SeatsUnspecified SeatCondition = ""
	Seats100OrMore   SeatCondition = "100_or_more"
	SeatsUnder100    SeatCondition = "under_100"
)

// ParseSeatCondition maps the 条件 column tag to a SeatCondition
func ParseSeatCondition(tag string) SeatCondition {
	switch tag {
	case "100席以上":
		return Seats100OrMore
	case "100席未満":
		return SeatsUnder100
	default:
		return SeatsUnspecified
	}
}

func (c SeatCondition) String() string {
	if c == SeatsUnspecified {
		return "unspecified"
	}
	return string(c)
}

// BaggageRule is one carry-on restriction of an airline.
// Width, Height and Depth are NaN when the source cell did not hold a number.
// Length and Weight are nil when the source cell was the N/A sentinel.
type BaggageRule struct {
	ICAO          string
	RouteType     RouteType
	SeatCondition SeatCondition
	Width         Limit
	Height        Limit
	Depth         Limit
	Length        *Limit
	Weight        *Limit

	// Raw cells as read from the table, used when the rule is stored.
	RawRouteType     string
	RawSeatCondition string
	RawWidth         string
	RawHeight        string
	RawDepth         string
	RawLength        string
	RawWeight        string
}

// Restrictions returns a snapshot of the rule limits
func (r BaggageRule) Restrictions() Restrictions {
	return Restrictions{
		Width:  r.Width,
		Height: r.Height,
		Depth:  r.Depth,
		Length: r.Length,
		Weight: r.Weight,
	}
}

// CatalogSuitcase is a product from the optional suitcase table
type CatalogSuitcase struct {
	NameEn string   `json:"name_en" db:"name_en"`
	NameJa string   `json:"name_ja" db:"name_ja"`
	Width  float64  `json:"width" db:"width"`
	Height float64  `json:"height" db:"height"`
	Depth  float64  `json:"depth" db:"depth"`
	Weight *float64 `json:"weight,omitempty" db:"weight"`
}

// Suitcase converts the product into a checkable suitcase
func (c CatalogSuitcase) Suitcase() Suitcase {
	return Suitcase{Width: c.Width, Height: c.Height, Depth: c.Depth, Weight: c.Weight}
}
