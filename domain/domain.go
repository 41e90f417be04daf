package domain

import "time"

type User struct {
	Id           string
	Username     string
	PasswordHash string
}

type Room struct {
	Id        string
	Slug      string
	AdminId   string
	CreatedAt time.Time
}

// Chat is one persisted drawing event. The Message field is the opaque
// serialized shape envelope exactly as the author sent it; Id is assigned
// by the database at insert time and defines the durable order per room.
type Chat struct {
	Id      int64
	RoomId  string
	UserId  string
	Message string
}
