package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// getUserIDFromContext extracts the user_id claim from the verified token.
func getUserIDFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	return userID, ok && userID != ""
}
