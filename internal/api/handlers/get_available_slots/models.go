package get_available_slots

import (
	"time"

	"github.com/klepi21/barberians/internal/domain"
	getAvailableSlots "github.com/klepi21/barberians/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse один слот со свободными местами
type SlotResponse struct {
	StartTime       string   `json:"startTime"`
	DurationMinutes int      `json:"durationMinutes"`
	AvailableSpots  int      `json:"availableSpots"`
	TotalSpots      int      `json:"totalSpots"`
	FreeBarbers     []string `json:"freeBarbers"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	result := &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			AvailableSpots:  slot.AvailableSpots,
			TotalSpots:      slot.TotalSpots,
			FreeBarbers:     slot.FreeBarbers,
		})
	}

	return result
}
