package reserveapi

import (
	"fmt"
	"time"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// businessDTO модель бизнеса на проводе
type businessDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	Timezone   string  `json:"timezone"`
	Currency   string  `json:"currency"`
	Line1      string  `json:"address_line1"`
	Line2      *string `json:"address_line2,omitempty"`
	City       string  `json:"city"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	LogoURL    *string `json:"logo_url,omitempty"`
}

func (d *businessDTO) toDomain() *domain.Business {
	return &domain.Business{
		ID:       d.ID,
		Name:     d.Name,
		Slug:     d.Slug,
		Timezone: d.Timezone,
		Currency: d.Currency,
		Address: domain.Address{
			Line1:      d.Line1,
			Line2:      d.Line2,
			City:       d.City,
			PostalCode: d.PostalCode,
			Country:    d.Country,
		},
		LogoURL: d.LogoURL,
	}
}

// serviceDTO модель услуги на проводе
type serviceDTO struct {
	ID              string            `json:"id"`
	BusinessID      string            `json:"business_id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	DurationMinutes int               `json:"duration_minutes"`
	Price           int64             `json:"price"` // minor units
	Active          bool              `json:"active"`
	Mode            string            `json:"booking_mode"`
	OpenIntervals   []openIntervalDTO `json:"open_intervals,omitempty"`
}

type openIntervalDTO struct {
	Weekday  int    `json:"weekday"` // 0 = Sunday
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

func (d *serviceDTO) toDomain() domain.Service {
	intervals := make([]domain.OpenInterval, len(d.OpenIntervals))
	for i, iv := range d.OpenIntervals {
		intervals[i] = domain.OpenInterval{
			Weekday:  time.Weekday(iv.Weekday),
			StartsAt: iv.StartsAt,
			EndsAt:   iv.EndsAt,
		}
	}
	return domain.Service{
		ID:              d.ID,
		BusinessID:      d.BusinessID,
		Name:            d.Name,
		Description:     d.Description,
		DurationMinutes: d.DurationMinutes,
		Price:           d.Price,
		Active:          d.Active,
		Mode:            domain.BookingMode(d.Mode),
		OpenIntervals:   intervals,
	}
}

// resourceDTO модель стола на проводе
type resourceDTO struct {
	ID         string  `json:"id"`
	ServiceID  string  `json:"service_id"`
	Code       string  `json:"code"`
	Seats      int     `json:"seats"`
	MergeGroup *string `json:"merge_group,omitempty"`
	Active     bool    `json:"active"`
}

func (d *resourceDTO) toDomain() domain.Resource {
	return domain.Resource{
		ID:         d.ID,
		ServiceID:  d.ServiceID,
		Code:       d.Code,
		Seats:      d.Seats,
		MergeGroup: d.MergeGroup,
		Active:     d.Active,
	}
}

// availabilityDTO ответ CheckAvailability
type availabilityDTO struct {
	Slots            []slotDTO `json:"slots"`
	BusinessTimezone string    `json:"business_timezone"`
}

type slotDTO struct {
	StartsAt string `json:"starts_at"` // UTC ISO-8601
	EndsAt   string `json:"ends_at"`   // UTC ISO-8601
}

func (d *availabilityDTO) toDomain() (*domain.AvailabilityMatrix, error) {
	slots := make([]domain.AvailabilitySlot, len(d.Slots))
	for i, s := range d.Slots {
		startsAt, err := time.Parse(time.RFC3339, s.StartsAt)
		if err != nil {
			return nil, fmt.Errorf("%w: bad starts_at %q: %v", ErrInvalidResponse, s.StartsAt, err)
		}
		endsAt, err := time.Parse(time.RFC3339, s.EndsAt)
		if err != nil {
			return nil, fmt.Errorf("%w: bad ends_at %q: %v", ErrInvalidResponse, s.EndsAt, err)
		}
		slots[i] = domain.AvailabilitySlot{StartsAt: startsAt.UTC(), EndsAt: endsAt.UTC()}
	}
	return &domain.AvailabilityMatrix{
		Slots:            slots,
		BusinessTimezone: d.BusinessTimezone,
	}, nil
}

// BookingCreateRequest запрос на создание бронирования.
// Timestamps передаются в UTC ровно в том виде, в котором слот пришел
// из CheckAvailability.
type BookingCreateRequest struct {
	ServiceID string          `json:"service_id"`
	TableID   string          `json:"table_id"`
	StartsAt  time.Time       `json:"starts_at"`
	EndsAt    time.Time       `json:"ends_at"`
	PartySize int             `json:"party_size"`
	Customer  CustomerPayload `json:"customer"`
}

// CustomerPayload контактные данные клиента
type CustomerPayload struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

// bookingDTO модель бронирования на проводе
type bookingDTO struct {
	ID           string          `json:"id"`
	BusinessSlug string          `json:"business_slug"`
	ServiceID    string          `json:"service_id"`
	TableID      string          `json:"table_id"`
	StartsAt     string          `json:"starts_at"`
	EndsAt       string          `json:"ends_at"`
	PartySize    int             `json:"party_size"`
	Customer     CustomerPayload `json:"customer"`
	Status       string          `json:"status"`
	ServiceName  string          `json:"service_name"`
	BusinessName string          `json:"business_name"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

func (d *bookingDTO) toDomain() (*domain.Booking, error) {
	startsAt, err := time.Parse(time.RFC3339, d.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad starts_at %q: %v", ErrInvalidResponse, d.StartsAt, err)
	}
	endsAt, err := time.Parse(time.RFC3339, d.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad ends_at %q: %v", ErrInvalidResponse, d.EndsAt, err)
	}
	createdAt, _ := time.Parse(time.RFC3339, d.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, d.UpdatedAt)

	return &domain.Booking{
		ID:           d.ID,
		BusinessSlug: d.BusinessSlug,
		ServiceID:    d.ServiceID,
		TableID:      d.TableID,
		StartsAt:     startsAt.UTC(),
		EndsAt:       endsAt.UTC(),
		PartySize:    d.PartySize,
		Customer: domain.CustomerInfo{
			Name:  d.Customer.Name,
			Phone: d.Customer.Phone,
			Email: d.Customer.Email,
		},
		Status:       domain.BookingStatus(d.Status),
		ServiceName:  d.ServiceName,
		BusinessName: d.BusinessName,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// errorDTO модель ошибки от API
type errorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
