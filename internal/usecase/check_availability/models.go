package check_availability

import "github.com/johnpapajani/rezi-booking-gateway/internal/domain"

// Request модель запроса доступности
type Request struct {
	BusinessSlug string // slug бизнеса
	ServiceID    string // ID услуги
	Date         string // дата в формате YYYY-MM-DD (business-local)
	PartySize    int    // размер группы
}

// Response модель ответа: матрица слотов и столы, вмещающие группу.
// Matrix и Resources валидны только для (Date, ServiceID, PartySize) этого
// запроса и заменяются целиком при любой смене параметров.
type Response struct {
	Matrix    *domain.AvailabilityMatrix
	Resources []domain.Resource // eligible, в порядке upstream списка
}
