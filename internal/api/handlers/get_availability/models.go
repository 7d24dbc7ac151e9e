package get_availability

import (
	"time"

	checkAvailability "github.com/johnpapajani/rezi-booking-gateway/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date      string          `json:"date"`
	ServiceID string          `json:"serviceId"`
	PartySize int             `json:"partySize"`
	Timezone  string          `json:"timezone"`
	Slots     []SlotResponse  `json:"slots"`
	Tables    []TableResponse `json:"tables"`
}

// SlotResponse один слот доступности
type SlotResponse struct {
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

// TableResponse стол, вмещающий запрошенную группу
type TableResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Seats int    `json:"seats"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *checkAvailability.Request, resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		PartySize: req.PartySize,
		Slots:     []SlotResponse{},
		Tables:    []TableResponse{},
	}

	if resp.Matrix != nil {
		out.Timezone = resp.Matrix.BusinessTimezone
		for _, slot := range resp.Matrix.Slots {
			out.Slots = append(out.Slots, SlotResponse{StartsAt: slot.StartsAt, EndsAt: slot.EndsAt})
		}
	}
	for _, table := range resp.Resources {
		out.Tables = append(out.Tables, TableResponse{ID: table.ID, Code: table.Code, Seats: table.Seats})
	}
	return out
}
