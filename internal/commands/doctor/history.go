package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hay-kot/bored/internal/core/history"
)

// HistoryCheck verifies the run history can be read.
type HistoryCheck struct {
	store history.Store
	path  string
}

func NewHistoryCheck(store history.Store, path string) *HistoryCheck {
	return &HistoryCheck{store: store, path: path}
}

func (c *HistoryCheck) Name() string {
	return "History"
}

func (c *HistoryCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if _, err := os.Stat(c.path); errors.Is(err, fs.ErrNotExist) {
		result.add(StatusPass, "History file", "not created yet")
		return result
	}

	entries, err := c.store.List(ctx)
	if err != nil {
		result.add(StatusFail, "History file", err.Error())
		return result
	}

	failed := 0
	for _, e := range entries {
		if e.Failed() {
			failed++
		}
	}

	result.add(StatusPass, "History file", fmt.Sprintf("%d run(s) recorded", len(entries)))
	if failed > 0 {
		result.add(StatusWarn, "Failed runs", fmt.Sprintf("%d of %d recorded run(s) failed", failed, len(entries)))
	}

	return result
}
