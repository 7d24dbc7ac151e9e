package get_business

import "github.com/johnpapajani/rezi-booking-gateway/internal/domain"

// BusinessResponse HTTP response model
type BusinessResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	Timezone string          `json:"timezone"`
	Currency string          `json:"currency"`
	Address  AddressResponse `json:"address"`
	LogoURL  *string         `json:"logoUrl,omitempty"`
}

// AddressResponse адрес бизнеса на витрине
type AddressResponse struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	PostalCode string  `json:"postalCode"`
	Country    string  `json:"country"`
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(b *domain.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:       b.ID,
		Name:     b.Name,
		Slug:     b.Slug,
		Timezone: b.Timezone,
		Currency: b.Currency,
		Address: AddressResponse{
			Line1:      b.Address.Line1,
			Line2:      b.Address.Line2,
			City:       b.Address.City,
			PostalCode: b.Address.PostalCode,
			Country:    b.Address.Country,
		},
		LogoURL: b.LogoURL,
	}
}
