package dto

// BrandDTO 品牌
type BrandDTO struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	OwnerID       uint64  `json:"owner_id"`
	LogoURL       *string `json:"logo_url,omitempty"`
	ListeningURLs *string `json:"listening_urls,omitempty"`
}

// BrandCreateDTO 注册品牌
type BrandCreateDTO struct {
	Name          string  `json:"name" binding:"required" validate:"min=1,max=120"`
	ListeningURLs *string `json:"listening_urls"`
}

// BrandRespondDTO 品牌回应活动
type BrandRespondDTO struct {
	Status  string `json:"status" binding:"required" validate:"oneof=acknowledged committed declined"`
	Message string `json:"message" validate:"max=2000"`
}
