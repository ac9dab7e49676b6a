package shared

// Task types and queues handled by cmd/worker.
const (
	TypeCompleteCheckout = "cart:complete_checkout"

	QueueCart = "default"
)

// Identity is who the storefront is currently serving. SessionID ties the
// request to a browser (cookie); UserID is empty while anonymous.
type Identity struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
}

func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}
