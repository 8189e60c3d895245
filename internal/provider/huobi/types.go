package huobi

// DepthResponse is the /market/depth response. On failure status is "error"
// and err-code/err-msg are set.
type DepthResponse struct {
	Status  string `json:"status"`
	ErrCode string `json:"err-code"`
	ErrMsg  string `json:"err-msg"`
	Tick    *Tick  `json:"tick"`
}

// Tick levels are [price, amount], best first.
type Tick struct {
	Bids [][]float64 `json:"bids"`
	Asks [][]float64 `json:"asks"`
}
