package ipify

type IPAPIResponse struct {
	IP string `json:"ip"`
}
