package saver

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"btc-tracker/internal/model"

	"github.com/parquet-go/parquet-go"
)

func sampleRows() []Row {
	ts := model.NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	return RowsFromQuotes([]model.Quote{
		{Exchange: "Binance", Timestamp: ts, Bid: 1, Ask: 2, BidQty: model.Qty(0.5), AskQty: model.Qty(0.25)},
		{Exchange: "Coinbase", Timestamp: ts, Bid: 3, Ask: 4},
	})
}

func TestNewQuoteSaver(t *testing.T) {
	for _, f := range []string{"csv", " JSON ", "parquet"} {
		if NewQuoteSaver(f) == nil {
			t.Errorf("format %q not supported", f)
		}
	}
	if NewQuoteSaver("xlsx") != nil {
		t.Error("xlsx should be unsupported")
	}
}

func TestRowsFromQuotes(t *testing.T) {
	rows := sampleRows()
	if rows[0].Timestamp != "2024-01-02 03:04:05" {
		t.Errorf("timestamp = %q", rows[0].Timestamp)
	}
	if rows[1].BidQty != nil {
		t.Error("nil quantity must stay nil")
	}
}

func TestJSONSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := (JSONSaver{}).Save(sampleRows(), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back []Row
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || back[1].Exchange != "Coinbase" {
		t.Errorf("rows = %+v", back)
	}
}

func TestCSVSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := (CSVSaver{}).Save(sampleRows(), path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d", len(records))
	}
	if records[1][4] != "0.5" || records[2][4] != "" {
		t.Errorf("bid_qty cells = %q / %q", records[1][4], records[2][4])
	}
}

func TestParquetSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")
	if err := (ParquetSaver{}).Save(sampleRows(), path); err != nil {
		t.Fatal(err)
	}
	back, err := parquet.ReadFile[Row](path)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 {
		t.Fatalf("rows = %d", len(back))
	}
	if back[0].BidQty == nil || *back[0].BidQty != 0.5 || back[1].AskQty != nil {
		t.Errorf("optional columns = %+v", back)
	}
}
