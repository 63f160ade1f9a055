// Package domain holds contracts shared by every domain package.
package domain

// Event is implemented by all domain events published on the event bus.
type Event interface {
	Type() string
}
