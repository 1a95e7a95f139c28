package opennotify

type PassTimesAPIResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
	Request struct {
		Altitude  int     `json:"altitude"`
		Datetime  int64   `json:"datetime"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Passes    int     `json:"passes"`
	} `json:"request"`
	Response *[]PassTime `json:"response"`
}

type PassTime struct {
	Duration int64 `json:"duration"`
	Risetime int64 `json:"risetime"`
}
