package store

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"btc-tracker/internal/model"
)

const (
	SummaryPrefix = "summary"
	ExportDir     = "export"
)

// Layout names every file under the data directory.
//
//	<Dir>/<LogPrefix>_<YYYY-MM-DD>.json      daily log
//	<Dir>/summary_<YYYY-MM-DD>.json          daily summary
//	<Dir>/export/<LogPrefix>_<YYYY-MM-DD>.*  optional export
type Layout struct {
	Dir       string
	LogPrefix string
}

// NewLayout derives the log prefix from the pair base, e.g. btc_prices.
func NewLayout(dir string, pair model.Pair) Layout {
	return Layout{Dir: dir, LogPrefix: strings.ToLower(pair.Base) + "_prices"}
}

func (l Layout) LogPath(date string) string {
	return filepath.Join(l.Dir, fmt.Sprintf("%s_%s.json", l.LogPrefix, date))
}

func (l Layout) SummaryPath(date string) string {
	return filepath.Join(l.Dir, fmt.Sprintf("%s_%s.json", SummaryPrefix, date))
}

func (l Layout) ExportDir() string {
	return filepath.Join(l.Dir, ExportDir)
}

func (l Layout) ExportPath(date, ext string) string {
	return filepath.Join(l.ExportDir(), fmt.Sprintf("%s_%s.%s", l.LogPrefix, date, ext))
}

// LogPattern matches daily log file names; group 1 is the date.
func (l Layout) LogPattern() *regexp.Regexp {
	return datedPattern(l.LogPrefix, `json`)
}

// SummaryPattern matches daily summary file names; group 1 is the date.
func (l Layout) SummaryPattern() *regexp.Regexp {
	return datedPattern(SummaryPrefix, `json`)
}

// ExportPattern matches export file names of any extension.
func (l Layout) ExportPattern() *regexp.Regexp {
	return datedPattern(l.LogPrefix, `[a-z]+`)
}

func datedPattern(prefix, ext string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `_(\d{4}-\d{2}-\d{2})\.` + ext + `$`)
}
