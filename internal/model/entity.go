package model

import "time"

// The types below are read-only projections of tables owned by other services
// (users, posts, events, groups, memories). Search never writes them.

// User - a person profile
type User struct {
	ID           int64
	Name         string
	Username     string
	Bio          string
	ProfileImage string
	City         string
	Country      string
	CreatedAt    time.Time
}

// Post - a feed post
type Post struct {
	ID         int64
	UserID     int64
	AuthorName string
	Content    string
	ImageURL   string
	Likes      int
	Comments   int
	CreatedAt  time.Time
}

// Event - a scheduled event
type Event struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Location    string
	ImageURL    string
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
}

// Group - a community group. MemberCount is computed at read time.
type Group struct {
	ID          int64
	Name        string
	Description string
	Type        string
	ImageURL    string
	MemberCount int
	CreatedAt   time.Time
}

// Memory - a shared memory, optionally private to its owner
type Memory struct {
	ID        int64
	UserID    int64
	Content   string
	ImageURL  string
	IsPrivate bool
	CreatedAt time.Time
}
