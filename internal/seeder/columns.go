package seeder

// Table file names inside the data directory or the zip bundle
const (
	AirlinesFile  = "airline.tsv"
	BaggageFile   = "carry-on-baggage.tsv"
	CountriesFile = "country.tsv"
	SuitcasesFile = "suitcase.tsv"
	BundleFile    = "tables.zip"
)

// Column names shared by the reference tables
const (
	ColICAO       = "ICAO code"
	ColIATA       = "IATA code"
	ColAirlineJa  = "航空会社名"
	ColAirlineEn  = "Airline name"
	ColCountry    = "Country"
	ColRouteType  = "種別"
	ColSeatCond   = "条件"
	ColWidth      = "W(cm)"
	ColHeight     = "H(cm)"
	ColDepth      = "D(cm)"
	ColLength     = "Length(cm)"
	ColWeight     = "Weight(kg)"
	ColCountryJa  = "国名"
	ColArea       = "Area"
	ColRegionJa   = "地域"
	ColSuitcaseEn = "Name of Suit case"
	ColSuitcaseJa = "スーツケース名"
)
