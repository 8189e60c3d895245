package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"btc-tracker/internal/model"
	"btc-tracker/internal/saver"
)

var (
	ErrLogMissing = errors.New("daily log not found")
	ErrLogCorrupt = errors.New("daily log is not valid JSON")
)

// Summarizer rebuilds the derived summary for a date after each append.
type Summarizer interface {
	Rebuild(date string) (*model.DailySummary, error)
}

// Store appends quotes to the per-day JSON log.
//
// Append is a plain read-modify-write with no locking: two processes writing
// the same date can lose updates. Runs must not overlap; wrapping the cycle in
// an exclusive file lock is the place to change that.
type Store struct {
	Layout     Layout
	Summarizer Summarizer       // optional
	Exporter   saver.QuoteSaver // optional
}

func New(layout Layout, summarizer Summarizer, exporter saver.QuoteSaver) *Store {
	return &Store{Layout: layout, Summarizer: summarizer, Exporter: exporter}
}

// LoadLog reads the log for date. It returns ErrLogMissing or ErrLogCorrupt
// (wrapped) so callers can tell the two apart.
func (s *Store) LoadLog(date string) ([]model.Quote, error) {
	path := s.Layout.LogPath(date)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrLogMissing)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var quotes []model.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrLogCorrupt, err)
	}
	return quotes, nil
}

// Append adds quotes to the log of runDate's calendar date (in runDate's
// location), then rebuilds the summary. An unreadable existing log is
// logged and replaced; its previous content is lost.
func (s *Store) Append(quotes []model.Quote, runDate time.Time) error {
	date := runDate.Format(model.DateLayout)
	if err := os.MkdirAll(s.Layout.Dir, 0755); err != nil {
		return fmt.Errorf("create data dir %s: %w", s.Layout.Dir, err)
	}

	existing, err := s.LoadLog(date)
	switch {
	case err == nil:
	case errors.Is(err, ErrLogMissing):
		existing = nil
	case errors.Is(err, ErrLogCorrupt):
		slog.Warn("existing log unreadable, starting empty", "date", date, "error", err)
		existing = nil
	default:
		return err
	}

	all := make([]model.Quote, 0, len(existing)+len(quotes))
	all = append(all, existing...)
	all = append(all, quotes...)

	path := s.Layout.LogPath(date)
	if err := writeJSON(path, all); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Info("quotes saved", "path", path, "added", len(quotes), "total", len(all))

	s.export(date, all)

	if s.Summarizer != nil {
		if _, err := s.Summarizer.Rebuild(date); err != nil {
			slog.Warn("summary not rebuilt", "date", date, "error", err)
		}
	}
	return nil
}

func (s *Store) export(date string, quotes []model.Quote) {
	if s.Exporter == nil {
		return
	}
	dir := s.Layout.ExportDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.Warn("export: cannot create folder", "dir", dir, "error", err)
		return
	}
	path := s.Layout.ExportPath(date, s.Exporter.Extension())
	if err := s.Exporter.Save(saver.RowsFromQuotes(quotes), path); err != nil {
		slog.Warn("export failed", "path", path, "error", err)
		return
	}
	slog.Info("export saved", "path", path, "rows", len(quotes))
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WriteJSONAtomic writes v through a temp file and rename, so readers never
// see a partial file.
func WriteJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
