package models

import "time"

// CareerTest is the aggregate root for a test and its questions.
// NumberOfQuestions is caller-supplied metadata and may differ from len(Questions).
type CareerTest struct {
	ID                int64      `json:"id" db:"id"`
	Name              string     `json:"name" db:"name"`
	Description       string     `json:"description" db:"description"`
	NumberOfQuestions int        `json:"number_of_questions" db:"number_of_questions"`
	LastUpdated       time.Time  `json:"last_updated" db:"last_updated"`
	Questions         []Question `json:"questions"`
}

// Question belongs to exactly one CareerTest
type Question struct {
	ID          int64  `json:"id" db:"id"`
	TestID      int64  `json:"test_id" db:"test_id"`
	Position    int    `json:"position" db:"position"` // 0-based order within the test
	Description string `json:"description" db:"description"`
	Tag         string `json:"tag" db:"tag"`
}

// CopyName is the name given to a duplicate of a test called name
func CopyName(name string) string {
	return name + " (Copy)"
}
