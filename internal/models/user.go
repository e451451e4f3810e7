package models

import "time"

const DefaultColor = "#0d6efd"

type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) Name() string {
	return u.FirstName + " " + u.LastName
}
