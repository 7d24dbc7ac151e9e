package list_services

import "github.com/johnpapajani/rezi-booking-gateway/internal/domain"

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ServiceResponse одна услуга на витрине
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Mode            string  `json:"mode"`
}

// FromDomainList конвертирует список услуг в HTTP response
func FromDomainList(services []domain.Service) *ServicesResponse {
	out := make([]ServiceResponse, len(services))
	for i, svc := range services {
		out[i] = ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.DisplayPrice(),
			Mode:            string(svc.Mode),
		}
	}
	return &ServicesResponse{Services: out}
}
