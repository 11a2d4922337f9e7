package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"userId"`
	Username  string    `bson:"username" json:"username"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
