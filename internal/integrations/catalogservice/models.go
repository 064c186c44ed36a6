package catalogservice

// Organization модель организации из CatalogService
type Organization struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"` // IANA таймзона, например "America/Sao_Paulo"
}

// Service модель услуги из CatalogService
type Service struct {
	ID              int64    `json:"id"`
	OrganizationID  int64    `json:"organization_id"`
	ProfessionalID  *int64   `json:"professional_id,omitempty"` // nil = услуга любого профессионала организации
	Name            string   `json:"name"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	Active          bool     `json:"active"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
