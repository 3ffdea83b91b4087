package models

type User struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	PasswordHash   string  `json:"-"` // don't expose hash
	ProfilePicture *string `json:"profile_picture"`
}
