package kucoin

// Level1Response is the /api/v1/market/orderbook/level1 response;
// code "200000" means success. Data is null for unknown symbols.
type Level1Response struct {
	Code string  `json:"code"`
	Msg  string  `json:"msg"`
	Data *Level1 `json:"data"`
}

type Level1 struct {
	Sequence    string `json:"sequence"`
	Price       string `json:"price"`
	Size        string `json:"size"`
	BestBid     string `json:"bestBid"`
	BestBidSize string `json:"bestBidSize"`
	BestAsk     string `json:"bestAsk"`
	BestAskSize string `json:"bestAskSize"`
	Time        int64  `json:"time"`
}
