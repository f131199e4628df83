package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// Authentication failure messages.
const (
	msgNoCredentials      = "Authentication credentials were not provided."
	msgInvalidCredentials = "Invalid username/password."
)

// requireBasicAuth gates next behind HTTP Basic Authentication against a
// single configured principal. Credentials are compared in constant time.
func requireBasicAuth(next http.Handler, creds Credentials, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok {
			unauthorized(w, msgNoCredentials)
			return
		}
		if !equalConstantTime(user, creds.Username) || !equalConstantTime(pass, creds.Password) {
			log.Warn("rejected basic auth attempt", "username", user, "path", r.URL.Path)
			unauthorized(w, msgInvalidCredentials)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="todos"`)
	writeJSON(w, map[string]string{"detail": detail}, http.StatusUnauthorized)
}

// equalConstantTime compares two strings without leaking length or position
// of the first mismatch. Inputs are hashed first so lengths match.
func equalConstantTime(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
