package events

type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// StoreEvent describes one write against a collection, published after the
// storage engine accepted it.
type StoreEvent struct {
	Type       EventType `json:"type"`
	Collection string    `json:"collection"`
	Key        string    `json:"key"`
}
