package retention

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"btc-tracker/internal/model"
	"btc-tracker/internal/store"
)

const (
	DefaultMaxDays  = 7
	DefaultMaxFiles = 30
)

// Result lists what a sweep removed and what it could not remove.
type Result struct {
	Deleted []string
	Failed  []string
}

// Sweeper prunes dated files from the data directory.
type Sweeper struct {
	Layout store.Layout
	Now     func() time.Time
	remove  func(string) error
	readDir func(string) ([]os.DirEntry, error)
}

func New(layout store.Layout) *Sweeper {
	return &Sweeper{Layout: layout, Now: time.Now, remove: os.Remove, readDir: os.ReadDir}
}

type datedFile struct {
	name string
	date string
}

// Sweep deletes
//   - the oldest log files beyond maxFiles (logs only), and
//   - any log, summary or export file dated before today - maxDays.
//
// Dates are compared as YYYY-MM-DD strings. A missing directory is a no-op;
// a failed delete is logged and the sweep goes on.
func (s *Sweeper) Sweep(maxDays, maxFiles int) Result {
	var res Result
	dir := s.Layout.Dir
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return res
	}

	entries, err := s.readDir(dir)
	if err != nil {
		slog.Warn("retention: cannot list data dir", "dir", dir, "error", err)
		return res
	}
	logs := matchDated(entries, s.Layout.LogPattern())
	summaries := matchDated(entries, s.Layout.SummaryPattern())

	deleted := make(map[string]bool)
	del := func(path, reason string) {
		if deleted[path] {
			return
		}
		deleted[path] = true
		if err := s.remove(path); err != nil {
			slog.Warn("retention: delete failed", "path", path, "error", err)
			res.Failed = append(res.Failed, path)
			return
		}
		slog.Info("retention: deleted", "path", path, "reason", reason)
		res.Deleted = append(res.Deleted, path)
	}

	if maxFiles >= 0 && len(logs) > maxFiles {
		for _, f := range logs[:len(logs)-maxFiles] {
			del(filepath.Join(dir, f.name), "max_files")
		}
	}

	cutoff := s.Now().AddDate(0, 0, -maxDays).Format(model.DateLayout)
	for _, f := range append(logs, summaries...) {
		if f.date < cutoff {
			del(filepath.Join(dir, f.name), "max_days")
		}
	}

	exportDir := s.Layout.ExportDir()
	exportEntries, err := s.readDir(exportDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("retention: cannot list export dir", "dir", exportDir, "error", err)
		}
		return res
	}
	for _, f := range matchDated(exportEntries, s.Layout.ExportPattern()) {
		if f.date < cutoff {
			del(filepath.Join(exportDir, f.name), "max_days")
		}
	}
	return res
}

// matchDated returns the files matching pattern sorted by name, which for a
// zero-padded ISO date is chronological order.
func matchDated(entries []os.DirEntry, pattern *regexp.Regexp) []datedFile {
	var files []datedFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := pattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		files = append(files, datedFile{name: e.Name(), date: m[1]})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	return files
}
