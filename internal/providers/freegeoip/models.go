package freegeoip

// LookupAPIResponse mirrors the freegeoip JSON body. Latitude and Longitude
// are pointers so an absent field can be told apart from 0.
type LookupAPIResponse struct {
	IP          string   `json:"ip"`
	CountryCode string   `json:"country_code"`
	CountryName string   `json:"country_name"`
	RegionCode  string   `json:"region_code"`
	RegionName  string   `json:"region_name"`
	City        string   `json:"city"`
	ZipCode     string   `json:"zip_code"`
	TimeZone    string   `json:"time_zone"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	MetroCode   int      `json:"metro_code"`
}
