// Package history defines run history domain types and interfaces.
package history

import (
	"math/rand/v2"
	"time"

	"github.com/hay-kot/bored/internal/activity"
)

// Entry represents one recorded suggestion run.
type Entry struct {
	ID           string             `json:"id"`
	Participants int                `json:"participants"`
	Mock         bool               `json:"mock"`
	Activity     *activity.Activity `json:"activity,omitempty"`
	ExitCode     int                `json:"exit_code"`
	Error        string             `json:"error,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
}

// Failed returns true if the run exited with a non-zero exit code.
func (e *Entry) Failed() bool {
	return e.ExitCode != 0
}

// Summary returns the activity description, or the error for failed runs.
func (e *Entry) Summary() string {
	if e.Activity != nil {
		return e.Activity.Description
	}
	return e.Error
}

const idChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID returns a random 8 character alphanumeric entry ID.
func NewID() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = idChars[rand.IntN(len(idChars))]
	}
	return string(b)
}
