package dto

// QuestionRequest is one question in a create or update payload
type QuestionRequest struct {
	Description string `json:"description" binding:"required" example:"I enjoy fixing machines"`
	Tag         string `json:"tag" binding:"max=32" example:"R"`
}

// CareerTestRequest is the payload for creating or fully replacing a test
type CareerTestRequest struct {
	Name              string            `json:"name" binding:"required,max=255" example:"Holland Code Test"`
	Description       string            `json:"description" example:"Find your RIASEC profile"`
	NumberOfQuestions int               `json:"number_of_questions" binding:"min=0" example:"60"`
	Questions         []QuestionRequest `json:"questions" binding:"dive"`
}

// DuplicateCareerTestResponse carries the id of the new copy
type DuplicateCareerTestResponse struct {
	Message string `json:"message" example:"Test duplicated"`
	NewID   int64  `json:"new_test_id" example:"7"`
}
