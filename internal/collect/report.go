package collect

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	successReport = ".lastrun.success.json"
	failedReport  = ".lastrun.failed.json"
)

// WriteRunReport stores the venue names of the last round in dir. A report
// whose list is empty is removed so it never describes an older run.
func WriteRunReport(dir string, r Round) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := writeList(filepath.Join(dir, successReport), r.Succeeded); err != nil {
		return err
	}
	if err := writeList(filepath.Join(dir, failedReport), r.Failed); err != nil {
		return err
	}
	slog.Debug("run report saved", "success", len(r.Succeeded), "failed", len(r.Failed))
	return nil
}

func writeList(path string, names []string) error {
	if len(names) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
