package models

// Admin defines the admin model based on the 'admins' table
type Admin struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	FirstName string `json:"first_name" db:"first_name" example:"Platform"`
	LastName  string `json:"last_name" db:"last_name" example:"Admin"`
	Email     string `json:"email" db:"email" example:"admin@careerguide.com"`
	Country   string `json:"country" db:"country"`
	Phone     string `json:"phone" db:"phone"`
	Password  string `json:"-" db:"password_hash"`
}
