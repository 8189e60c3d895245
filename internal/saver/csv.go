package saver

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVSaver writes rows as CSV (header: exchange,timestamp,bid,ask,bid_qty,ask_qty).
// Unknown quantities are empty cells.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	if err := w.Write([]string{"exchange", "timestamp", "bid", "ask", "bid_qty", "ask_qty"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{
			r.Exchange,
			r.Timestamp,
			floatStr(r.Bid),
			floatStr(r.Ask),
			optFloatStr(r.BidQty),
			optFloatStr(r.AskQty),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func optFloatStr(f *float64) string {
	if f == nil {
		return ""
	}
	return floatStr(*f)
}
