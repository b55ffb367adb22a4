package models

type User struct {
	Email        string `db:"email"`
	Username     string `db:"username"`
	PasswordHash string `db:"password"`
	Team         string `db:"team"`
}
