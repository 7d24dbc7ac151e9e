package domain

// Default configuration values
const (
	DefaultPartySize                 = 1
	DefaultDraftTTLMinutes           = 15
	DefaultSessionTTLMinutes         = 30
	DefaultCancellationNoticeMinutes = 60
)

// Business validation constants
const (
	MinPartySize       = 1
	MaxPartySize       = 50
	MaxCustomerName    = 200
	MaxCustomerPhone   = 32
	MaxCustomerEmail   = 254
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, при которых бронирование
// больше не занимает слот.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
