package binance

// BookTicker is the /api/v3/ticker/bookTicker response. Errors come back as
// {"code":-1121,"msg":"Invalid symbol."}.
type BookTicker struct {
	Symbol   string `json:"symbol"`
	BidPrice string `json:"bidPrice"`
	BidQty   string `json:"bidQty"`
	AskPrice string `json:"askPrice"`
	AskQty   string `json:"askQty"`

	Code int    `json:"code,omitempty"`
	Msg  string `json:"msg,omitempty"`
}
