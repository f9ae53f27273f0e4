package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table. UserName is denormalized at write
// time so review listings never join against users.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	UserName  string    `gorm:"type:varchar(100);not null"`
	Text      string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null"`
	Starred   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Replies []ReplyModel `gorm:"foreignKey:CommentID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// ReplyModel mirrors the 'comment_replies' table.
type ReplyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CommentID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	UserName  string    `gorm:"type:varchar(100);not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReplyModel) TableName() string {
	return "comment_replies"
}

// QuestionModel mirrors the 'product_questions' table.
type QuestionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null"`
	UserName     string     `gorm:"type:varchar(100);not null"`
	QuestionText string     `gorm:"type:text;not null"`
	AnswerText   string     `gorm:"type:text"`
	Answered     bool       `gorm:"not null;default:false"`
	AnswererID   *uuid.UUID `gorm:"type:uuid"`
	AnswererName string     `gorm:"type:varchar(100)"`
	HelpfulVotes int        `gorm:"not null;default:0"`
	ReportCount  int        `gorm:"not null;default:0"`
	AskedAt      time.Time `gorm:"autoCreateTime"`
	AnsweredAt   *time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "product_questions"
}
