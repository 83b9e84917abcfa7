package get_services

import "github.com/klepi21/barberians/internal/domain"

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
	Barbers  []string          `json:"barbers"`
}

// ServiceResponse одна услуга прайс-листа
type ServiceResponse struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// FromDomainServices конвертирует прайс-лист в HTTP response
func FromDomainServices(services []domain.Service, barbers []string) *ServicesResponse {
	resp := &ServicesResponse{
		Services: make([]ServiceResponse, 0, len(services)),
		Barbers:  barbers,
	}

	for _, svc := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	return resp
}
