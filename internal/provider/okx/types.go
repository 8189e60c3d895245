package okx

// TickerResponse is the /api/v5/market/ticker response; code "0" means success.
type TickerResponse struct {
	Code string   `json:"code"`
	Msg  string   `json:"msg"`
	Data []Ticker `json:"data"`
}

type Ticker struct {
	InstID string `json:"instId"`
	Last   string `json:"last"`
	BidPx  string `json:"bidPx"`
	BidSz  string `json:"bidSz"`
	AskPx  string `json:"askPx"`
	AskSz  string `json:"askSz"`
	Ts     string `json:"ts"`
}
