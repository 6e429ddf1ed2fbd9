// Package bored provides clients for the Bored API activity-suggestion service.
//
// Two implementations satisfy Client: HTTPClient talks to the real service and
// MockClient fabricates a placeholder record locally. Use New to choose one
// from configuration.
package bored

// Activity is an activity suggestion as returned by the Bored API.
type Activity struct {
	Activity      string  `json:"activity"`
	Type          string  `json:"type"`
	Participants  int     `json:"participants"`
	Price         float64 `json:"price"`
	Link          string  `json:"link"`
	Key           string  `json:"key"`
	Accessibility float64 `json:"accessibility"`
}

// response is the wire envelope. The API reports "no match" with a 2xx
// status and an error field instead of an activity.
type response struct {
	Activity
	Error string `json:"error"`
}
