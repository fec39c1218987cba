package server

import (
	"context"
	"encoding/json"
	"log"

	"microblog/internal/notifications"
)

// publishUserEvent delivers a feed event to a single user: directly through
// the local hub and via Redis for other instances. Delivery is best-effort
// and never fails the request that triggered it.
func (s *Server) publishUserEvent(userID uint, event notifications.Event) {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", event.Type, err)
		return
	}
	message := string(eventJSON)
	if s.hub != nil {
		s.hub.Broadcast(userID, message)
	}
	if s.notifier != nil {
		if err := s.notifier.PublishUser(context.Background(), userID, message); err != nil {
			log.Printf("failed to publish %s event to user %d: %v", event.Type, userID, err)
		}
	}
}
