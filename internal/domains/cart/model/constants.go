package model

import (
	"strings"

	"bakery-storefront/internal/shared"
)

// Storage keys
const (
	// AnonymousCartKey is the device cart. Requests carrying a session id
	// get "cart:anonymous:{sessionID}" so browsers do not share a cart.
	AnonymousCartKey = "cart:anonymous"

	// UserCartKeyPrefix format: "cart:user:{userID}"
	UserCartKeyPrefix = "cart:user:"
)

// SnapshotVersion is written into every stored cart.
const SnapshotVersion = 1

func AnonymousKey(sessionID string) string {
	if sessionID == "" {
		return AnonymousCartKey
	}
	return AnonymousCartKey + ":" + sessionID
}

func UserKey(userID string) string {
	return UserCartKeyPrefix + userID
}

// StorageKey is the key of the active cart for identity.
func StorageKey(identity shared.Identity) string {
	if identity.IsAnonymous() {
		return AnonymousKey(identity.SessionID)
	}
	return UserKey(identity.UserID)
}

func IsUserKey(key string) bool {
	return strings.HasPrefix(key, UserCartKeyPrefix)
}
