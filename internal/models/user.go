package models

import "time"

type User struct {
	ID           int64
	Name         string
	Login        string
	Credential   string
	SessionToken string
	Score        int
	CreatedAt    time.Time
}

// ScoreEntry is the leaderboard projection. Credential and session token
// never travel through this type.
type ScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
