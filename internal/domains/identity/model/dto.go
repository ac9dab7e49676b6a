package model

type SignInRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// SessionResponse describes the caller's identity.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	SignedIn  bool   `json:"signed_in"`
}

// SignInResponse also carries the cart after merging so the UI can refresh
// in one round trip.
type SignInResponse struct {
	SessionResponse
	Cart interface{} `json:"cart,omitempty"`
}
