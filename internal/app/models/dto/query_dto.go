package dto

// ListQuery carries the sort parameters shared by list endpoints
type ListQuery struct {
	Sort  string `form:"sort" example:"name"`
	Order string `form:"order" binding:"omitempty,oneof=asc desc ASC DESC" example:"asc"`
}
