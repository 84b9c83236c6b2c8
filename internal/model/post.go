package model

type Post struct {
	ID     int64  `db:"id" json:"id"`
	UserID int64  `db:"user_id" json:"userId"`
	Title  string `db:"title" json:"title"`
	Body   string `db:"body" json:"body"`
}
