package reserveapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recorder записывает метрики вызовов upstream API. Может быть nil.
type Recorder interface {
	ObserveUpstream(operation string, start time.Time, err error)
}

// Client клиент публичного reservation API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	rec        Recorder
}

// NewClient создает новый экземпляр клиента reservation API
func NewClient(baseURL string, timeout time.Duration, log Logger, rec Recorder) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
		rec: rec,
	}
}

// GetBusiness получает публичный профиль бизнеса по slug
func (c *Client) GetBusiness(ctx context.Context, slug string) (*domain.Business, error) {
	var dto businessDTO
	err := c.getJSON(ctx, "get_business",
		fmt.Sprintf("%s/v1/public/businesses/%s", c.baseURL, url.PathEscape(slug)),
		&dto, ErrBusinessNotFound)
	if err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// GetServices получает список услуг бизнеса
func (c *Client) GetServices(ctx context.Context, slug string) ([]domain.Service, error) {
	var dtos []serviceDTO
	err := c.getJSON(ctx, "get_services",
		fmt.Sprintf("%s/v1/public/businesses/%s/services", c.baseURL, url.PathEscape(slug)),
		&dtos, ErrBusinessNotFound)
	if err != nil {
		return nil, err
	}
	services := make([]domain.Service, len(dtos))
	for i := range dtos {
		services[i] = dtos[i].toDomain()
	}
	return services, nil
}

// GetServiceTables получает столы услуги. Порядок списка - контракт upstream
// API и сохраняется без пересортировки: от него зависит first-fit подбор стола.
func (c *Client) GetServiceTables(ctx context.Context, slug, serviceID string) ([]domain.Resource, error) {
	var dtos []resourceDTO
	err := c.getJSON(ctx, "get_service_tables",
		fmt.Sprintf("%s/v1/public/businesses/%s/services/%s/tables",
			c.baseURL, url.PathEscape(slug), url.PathEscape(serviceID)),
		&dtos, ErrServiceNotFound)
	if err != nil {
		return nil, err
	}
	resources := make([]domain.Resource, len(dtos))
	for i := range dtos {
		resources[i] = dtos[i].toDomain()
	}
	return resources, nil
}

// CheckAvailability получает матрицу доступных слотов на дату и размер группы
func (c *Client) CheckAvailability(ctx context.Context, slug, serviceID, date string, partySize int) (*domain.AvailabilityMatrix, error) {
	q := url.Values{}
	q.Set("service_id", serviceID)
	q.Set("date", date)
	q.Set("party_size", strconv.Itoa(partySize))

	var dto availabilityDTO
	err := c.getJSON(ctx, "check_availability",
		fmt.Sprintf("%s/v1/public/businesses/%s/availability?%s",
			c.baseURL, url.PathEscape(slug), q.Encode()),
		&dto, ErrServiceNotFound)
	if err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// CreateBooking отправляет запрос на создание бронирования.
// 409 от сервера превращается в ConflictError с дословным сообщением:
// слот могли занять между выбором и отправкой.
func (c *Client) CreateBooking(ctx context.Context, slug string, req *BookingCreateRequest) (*domain.Booking, error) {
	start := time.Now()
	booking, err := c.doCreateBooking(ctx, slug, req)
	c.observe("create_booking", start, err)
	return booking, err
}

func (c *Client) doCreateBooking(ctx context.Context, slug string, req *BookingCreateRequest) (*domain.Booking, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/v1/public/businesses/%s/bookings", c.baseURL, url.PathEscape(slug))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		// Продолжаем обработку
	case http.StatusConflict:
		return nil, &ConflictError{Message: c.readErrorMessage(resp)}
	case http.StatusNotFound:
		return nil, ErrBusinessNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrRejected, c.readErrorMessage(resp))
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var dto bookingDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return dto.toDomain()
}

// GetBooking получает бронирование по ID. Телефон выступает как
// облегченный credential для неаутентифицированных клиентов.
func (c *Client) GetBooking(ctx context.Context, bookingID, phone string) (*domain.Booking, error) {
	q := url.Values{}
	q.Set("phone", phone)

	var dto bookingDTO
	err := c.getJSON(ctx, "get_booking",
		fmt.Sprintf("%s/v1/public/bookings/%s?%s", c.baseURL, url.PathEscape(bookingID), q.Encode()),
		&dto, ErrBookingNotFound)
	if err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// CancelBooking инициирует отмену бронирования клиентом
func (c *Client) CancelBooking(ctx context.Context, bookingID, phone string) (*domain.Booking, error) {
	start := time.Now()
	booking, err := c.doCancelBooking(ctx, bookingID, phone)
	c.observe("cancel_booking", start, err)
	return booking, err
}

func (c *Client) doCancelBooking(ctx context.Context, bookingID, phone string) (*domain.Booking, error) {
	body, err := json.Marshal(map[string]string{"phone": phone})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/v1/public/bookings/%s/cancel", c.baseURL, url.PathEscape(bookingID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	case http.StatusConflict:
		return nil, &ConflictError{Message: c.readErrorMessage(resp)}
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var dto bookingDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return dto.toDomain()
}

// getJSON выполняет GET запрос и декодирует ответ.
// notFoundErr возвращается на 404.
func (c *Client) getJSON(ctx context.Context, operation, endpoint string, out interface{}, notFoundErr error) error {
	start := time.Now()
	err := c.doGetJSON(ctx, endpoint, out, notFoundErr)
	c.observe(operation, start, err)
	return err
}

func (c *Client) doGetJSON(ctx context.Context, endpoint string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrRejected, c.readErrorMessage(resp))
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// readErrorMessage извлекает сообщение из тела ошибки.
// Если тело не парсится, возвращает сырой текст.
func (c *Client) readErrorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return http.StatusText(resp.StatusCode)
	}
	var dto errorDTO
	if err := json.Unmarshal(raw, &dto); err == nil && dto.Message != "" {
		return dto.Message
	}
	return string(raw)
}

func (c *Client) observe(operation string, start time.Time, err error) {
	if c.rec != nil {
		c.rec.ObserveUpstream(operation, start, err)
	}
}
