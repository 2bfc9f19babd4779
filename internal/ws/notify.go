package ws

import (
	"encoding/json"
	"time"

	"balikerja/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

// Notifier adapts the hub to the workflow's notification port. Broadcast is
// best-effort: a full buffer drops the event rather than blocking a request.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ApplicationUpdated(applicationID, jobID uuid.UUID, status application.Status) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationEvent{
		Type:          "application_updated",
		ApplicationID: applicationID.String(),
		JobID:         jobID.String(),
		Status:        string(status),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
