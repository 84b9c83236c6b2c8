package model

import "time"

type User struct {
	ID           int64     `db:"user_id" json:"userId"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Identity : аутентифицированный пользователь, которого middleware кладет в контекст запроса
type Identity struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

func (u *User) Identity() *Identity {
	return &Identity{UserID: u.ID, Email: u.Email}
}
