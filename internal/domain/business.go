package domain

// Business represents one tenant of the reservation platform.
// Timezone is the authoritative IANA zone for displaying every timestamp
// that belongs to this business.
type Business struct {
	ID       string
	Name     string
	Slug     string
	Timezone string // IANA zone name, e.g. "Europe/Tirane"
	Currency string // ISO 4217 code, amounts are minor units
	Address  Address
	LogoURL  *string
}

// Address is the business street address as displayed on the storefront.
type Address struct {
	Line1      string
	Line2      *string
	City       string
	PostalCode string
	Country    string
}
