package dto

// Response 统一响应信封
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PageQuery 通用分页参数
type PageQuery struct {
	Page     int `form:"page,default=1" validate:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" validate:"omitempty,min=1,max=100"`
}
