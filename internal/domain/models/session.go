package models

import "time"

// Session is the server side state behind a session cookie.
type Session struct {
	ID        string
	LoggedIn  bool
	Username  string
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
