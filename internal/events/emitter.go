package events

import (
	"context"
	"encoding/json"
	"log"
)

// Emit publishes a store event. The default is a no-op; the hosting
// application decides where events go.
var Emit = func(ctx context.Context, name string, evt StoreEvent) {}

// EnableLogEmitter routes events to the process log.
func EnableLogEmitter() {
	Emit = func(ctx context.Context, name string, evt StoreEvent) {
		data, err := json.Marshal(evt)
		if err != nil {
			log.Printf("events: failed to marshal store event: %v", err)
			return
		}
		log.Printf("%s: %s", name, data)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt StoreEvent)) {
	if f == nil {
		Emit = func(context.Context, string, StoreEvent) {}
		return
	}
	Emit = f
}
