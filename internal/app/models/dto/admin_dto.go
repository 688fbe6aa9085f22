package dto

// UpdateAdminRequest is a partial update; nil fields are left unchanged.
// Email cannot be changed.
type UpdateAdminRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=255"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=255"`
	Country   *string `json:"country" binding:"omitempty,max=128"`
	Phone     *string `json:"phone" binding:"omitempty,max=64"`
	Password  *string `json:"password" binding:"omitempty,min=6,max=72"`
}

// ListStudentsQuery holds the filters of GET /admin/students
type ListStudentsQuery struct {
	Search string `form:"search"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=id first_name last_name grade country email"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}
