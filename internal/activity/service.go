package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hay-kot/bored/internal/upstream/bored"
)

// ErrNoActivity is returned when the upstream had no usable activity. The
// upstream cause is wrapped alongside it.
var ErrNoActivity = errors.New("no activity available")

// Service fetches suggestions from an upstream client.
type Service struct {
	client bored.Client
	log    zerolog.Logger
}

// NewService creates a new Service.
func NewService(client bored.Client, log zerolog.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
	}
}

// GetActivity fetches one suggestion for the given number of participants.
// It returns an error matching ErrNoActivity if and only if the client
// reported an absent activity; any other error is returned as is.
func (s *Service) GetActivity(ctx context.Context, participants int) (Activity, error) {
	s.log.Info().Int("participants", participants).Msg("fetching activity")

	upstream, err := s.client.GetActivity(ctx, participants)
	if err != nil {
		if bored.IsAbsent(err) {
			s.log.Warn().Err(err).Int("participants", participants).Msg("upstream returned no activity")
			return Activity{}, fmt.Errorf("%w: %w", ErrNoActivity, err)
		}
		return Activity{}, fmt.Errorf("get activity: %w", err)
	}

	if upstream == nil {
		return Activity{}, fmt.Errorf("%w: upstream returned nothing", ErrNoActivity)
	}

	s.log.Debug().Interface("upstream", upstream).Msg("received upstream model")

	result := FromBored(*upstream)

	s.log.Debug().Interface("activity", result).Msg("converted to service model")

	return result, nil
}
