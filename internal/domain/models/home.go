package models

// HomeView is everything the home page shows for a logged in user.
type HomeView struct {
	Email    string
	Username string
	Team     string
	Matches  []Match
	Teams    []Team
}
