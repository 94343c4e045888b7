package domain

import "context"

// DishSink accepts loaded dishes. The kitchen implements it; a false
// return means the dish was rejected (duplicate or no room).
type DishSink interface {
	Add(dish Dish) bool
}

// IntentParser converts a raw command line into a structured intent.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier reports outcomes, such as a menu file that failed to load,
// to the operator.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
