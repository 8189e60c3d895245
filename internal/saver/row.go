package saver

import "btc-tracker/internal/model"

// Row is the flat export DTO. Package saver does not depend on the store.
type Row struct {
	Exchange  string   `json:"exchange" parquet:"exchange"`
	Timestamp string   `json:"timestamp" parquet:"timestamp"`
	Bid       float64  `json:"bid" parquet:"bid"`
	Ask       float64  `json:"ask" parquet:"ask"`
	BidQty    *float64 `json:"bid_qty" parquet:"bid_qty,optional"`
	AskQty    *float64 `json:"ask_qty" parquet:"ask_qty,optional"`
}

// RowsFromQuotes converts quotes keeping order.
func RowsFromQuotes(quotes []model.Quote) []Row {
	rows := make([]Row, len(quotes))
	for i, q := range quotes {
		rows[i] = Row{
			Exchange:  q.Exchange,
			Timestamp: q.Timestamp.String(),
			Bid:       q.Bid,
			Ask:       q.Ask,
			BidQty:    q.BidQty,
			AskQty:    q.AskQty,
		}
	}
	return rows
}
