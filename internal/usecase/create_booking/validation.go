package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/klepi21/barberians/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Service) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: fullname is required", ErrInvalidInput)
	}
	if len(req.FullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: fullname is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.PhoneNumber) == "" {
		return fmt.Errorf("%w: phonenumber is required", ErrInvalidInput)
	}
	if len(req.PhoneNumber) > domain.MaxPhoneNumberLength {
		return fmt.Errorf("%w: phonenumber is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxEmailLength || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if domain.DateOnly(bookingDate).Before(domain.DateOnly(now)) {
		return ErrInvalidDate
	}
	return nil
}

// findService находит услугу в прайс-листе по названию
func findService(services []domain.Service, name string) (domain.Service, error) {
	for _, svc := range services {
		if svc.Name == name {
			return svc, nil
		}
	}
	return domain.Service{}, fmt.Errorf("%w: %q", ErrServiceNotFound, name)
}

// validateBarber проверяет, что желаемый барбер есть в ростере
func validateBarber(barbers []string, name string) error {
	for _, barber := range barbers {
		if barber == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrBarberNotFound, name)
}

// intersect возвращает элементы base, присутствующие в other,
// сохраняя порядок base
func intersect(base, other []string) []string {
	inOther := make(map[string]bool, len(other))
	for _, v := range other {
		inOther[v] = true
	}

	result := make([]string, 0, len(base))
	for _, v := range base {
		if inOther[v] {
			result = append(result, v)
		}
	}
	return result
}
