package create_booking

import (
	"time"

	"github.com/klepi21/barberians/internal/domain"
	createBooking "github.com/klepi21/barberians/internal/usecase/create_booking"
	"github.com/klepi21/barberians/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
	Service     string  `json:"service"`
	Barber      *string `json:"barber,omitempty"` // nil - любой свободный
	FullName    string  `json:"fullname"`
	PhoneNumber string  `json:"phonenumber"`
	Email       string  `json:"email"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Barber          string  `json:"barber"`
	Status          string  `json:"status"`
	Service         string  `json:"service"`
	ServicePrice    float64 `json:"servicePrice"`
	FullName        string  `json:"fullname"`
	PhoneNumber     string  `json:"phonenumber"`
	Email           string  `json:"email"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:        date,
		StartTime:   startTime,
		Service:     r.Service,
		Barber:      r.Barber,
		FullName:    r.FullName,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Barber:          resp.Barber,
		Status:          resp.Status,
		Service:         resp.Service,
		ServicePrice:    resp.ServicePrice,
		FullName:        resp.FullName,
		PhoneNumber:     resp.PhoneNumber,
		Email:           resp.Email,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
