package coinbase

// PriceResponse is the /v2/prices/{pair}/{buy|sell|spot} response.
type PriceResponse struct {
	Data   *Price     `json:"data"`
	Errors []APIError `json:"errors"`
}

type Price struct {
	Amount   string `json:"amount"`
	Base     string `json:"base"`
	Currency string `json:"currency"`
}

type APIError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
