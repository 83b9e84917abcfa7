package mailer

import (
	"time"

	"github.com/klepi21/barberians/pkg/types"
)

// BookingConfirmation данные для письма-подтверждения бронирования
type BookingConfirmation struct {
	BookingID int64
	FullName  string
	Email     string
	Date      time.Time
	StartTime types.TimeString
	Barber    string
	Service   string
	Price     float64
	ShopName  string
}
