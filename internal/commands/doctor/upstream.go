package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/hay-kot/bored/internal/upstream/bored"
)

// UpstreamCheck probes the activity client with a single request.
type UpstreamCheck struct {
	client  bored.Client
	mock    bool
	timeout time.Duration
}

func NewUpstreamCheck(client bored.Client, mock bool, timeout time.Duration) *UpstreamCheck {
	return &UpstreamCheck{client: client, mock: mock, timeout: timeout}
}

func (c *UpstreamCheck) Name() string {
	return "Upstream"
}

func (c *UpstreamCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if c.mock {
		result.add(StatusPass, "Client", "mock client, no requests are made")
		return result
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	a, err := c.client.GetActivity(ctx, 1)
	elapsed := time.Since(start).Round(time.Millisecond)

	switch {
	case err == nil:
		result.add(StatusPass, "Probe", fmt.Sprintf("activity %s in %s", a.Key, elapsed))
	case bored.IsAbsent(err):
		result.add(StatusWarn, "Probe", err.Error())
	default:
		result.add(StatusFail, "Probe", err.Error())
	}

	return result
}
