// Package activity converts upstream suggestions into the application's own
// Activity model.
package activity

import "github.com/hay-kot/bored/internal/upstream/bored"

// Activity is a suggested activity as presented to users of bored.
type Activity struct {
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	Participants  int     `json:"participants"`
	Price         float64 `json:"price"`
	Link          string  `json:"link"`
	Key           string  `json:"key"`
	Accessibility float64 `json:"accessibility"`
}

// FromBored maps an upstream activity field for field.
func FromBored(b bored.Activity) Activity {
	return Activity{
		Description:   b.Activity,
		Type:          b.Type,
		Participants:  b.Participants,
		Price:         b.Price,
		Link:          b.Link,
		Key:           b.Key,
		Accessibility: b.Accessibility,
	}
}
