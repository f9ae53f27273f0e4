package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a product review left by a user.
type Comment struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Text      string
	Rating    int // 1..5 inclusive.
	Starred   bool
	Replies   []*Reply
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reply is a threaded response to a Comment. Replies never outlive their
// parent: deleting a Comment deletes every Reply referencing it.
type Reply struct {
	ID        uuid.UUID
	CommentID uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Question is a product Q&A entry. Answered is true iff AnswerText is present;
// the pairing is enforced by the application, not the database.
type Question struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	UserID       uuid.UUID
	UserName     string
	QuestionText string
	AnswerText   string
	Answered     bool
	AnswererID   *uuid.UUID
	AnswererName string
	HelpfulVotes int // Not idempotent per user, no per-user vote record exists.
	ReportCount  int
	AskedAt      time.Time
	AnsweredAt   *time.Time
}
