package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	SessionKeyPrefix = "session:"
	MaxUserIDLength  = 64
)

// Session binds a browser session to a signed-in user.
type Session struct {
	SessionID  string    `json:"session_id"`
	UserID     string    `json:"user_id"`
	SignedInAt time.Time `json:"signed_in_at"`
}

func SessionKey(sessionID string) string {
	return SessionKeyPrefix + sessionID
}

// NormalizeUserID trims the id and validates it. Colons are refused because
// the id becomes part of a storage key.
func NormalizeUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	err := validation.Validate(userID,
		validation.Required,
		validation.Length(1, MaxUserIDLength),
		validation.By(func(value interface{}) error {
			if strings.ContainsAny(value.(string), ": \t\n") {
				return validation.NewError("validation_user_id_chars", "must not contain spaces or colons")
			}
			return nil
		}),
	)
	if err != nil {
		return "", err
	}
	return userID, nil
}
