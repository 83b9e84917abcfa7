package get_services

import (
	"net/http"

	"github.com/klepi21/barberians/internal/api/handlers"
	"github.com/klepi21/barberians/internal/domain"
)

// Прайс-лист и ростер статичны в пределах запуска,
// ответ собирается один раз при создании хендлера
type Handler struct {
	response *ServicesResponse
	logger   Logger
}

func NewHandler(services []domain.Service, barbers []string, logger Logger) *Handler {
	return &Handler{
		response: FromDomainServices(services, barbers),
		logger:   logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
