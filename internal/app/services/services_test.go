package services

import (
	"sync"

	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
)

// recordingBroadcaster runs commits under a lock and keeps every event
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []models.BroadcastEvent
}

func (r *recordingBroadcaster) Commit(fn func() []models.BroadcastEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fn()...)
}

func (r *recordingBroadcaster) Events() []models.BroadcastEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.BroadcastEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordingBroadcaster) Names() []string {
	events := r.Events()
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name
	}
	return names
}
