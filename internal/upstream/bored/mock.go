package bored

import (
	"context"
	"fmt"
)

// MockClient fabricates a placeholder activity without any network I/O.
// It never fails.
type MockClient struct{}

// NewMockClient creates a MockClient.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// GetActivity returns a deterministic mock activity. Counts of zero or
// less are treated as one.
func (m *MockClient) GetActivity(_ context.Context, participants int) (*Activity, error) {
	return mockActivity(participants), nil
}

func mockActivity(participants int) *Activity {
	if participants <= 0 {
		participants = 1
	}

	noun := "person"
	if participants > 1 {
		noun = "people"
	}

	return &Activity{
		Activity:      fmt.Sprintf("Mock activity for %d %s", participants, noun),
		Type:          "Mock",
		Participants:  participants,
		Price:         0,
		Link:          "",
		Key:           "0",
		Accessibility: 0,
	}
}
