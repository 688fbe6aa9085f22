package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID              int64  `json:"id" db:"id" example:"1"`
	FirstName       string `json:"first_name" db:"first_name" example:"Alice"`
	LastName        string `json:"last_name" db:"last_name" example:"Smith"`
	Grade           string `json:"grade" db:"grade" example:"11"`
	Email           string `json:"email" db:"email" example:"alice@example.com"`
	Country         string `json:"country" db:"country" example:"Canada"`
	Phone           string `json:"phone" db:"phone" example:"+1 555 0100"`
	Password        string `json:"-" db:"password_hash"` // bcrypt hash, never serialized
	Premium         bool   `json:"premium" db:"premium"`
	CareerTestCount int    `json:"career_test_count" db:"career_test_count"`
}
