package models

import (
	"time"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	"github.com/johnpapajani/rezi-booking-gateway/internal/selector"
)

// Request модели

// StartSessionRequest запрос на создание сессии выбора
type StartSessionRequest struct {
	BusinessSlug   string `json:"businessSlug"`
	ServiceID      string `json:"serviceId"`
	ViewerTimezone string `json:"viewerTimezone,omitempty"` // IANA имя; пустое — UTC
}

// UpdateSelectionRequest запрос на смену даты и/или размера группы.
// Оба поля опциональны; указанные применяются по порядку: дата, затем группа.
type UpdateSelectionRequest struct {
	SessionID string  `json:"-"`
	Date      *string `json:"date,omitempty"`      // YYYY-MM-DD в календаре зрителя
	PartySize *int    `json:"partySize,omitempty"` // >= 1
}

// SelectSlotRequest запрос на выбор слота
type SelectSlotRequest struct {
	SessionID string    `json:"-"`
	StartsAt  time.Time `json:"startsAt"` // точный starts_at слота из матрицы
}

// Response модели

// SlotResponse один слот матрицы доступности
type SlotResponse struct {
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

// SessionResponse срез состояния сессии для рендеринга
type SessionResponse struct {
	SessionID    string         `json:"sessionId"`
	BusinessSlug string         `json:"businessSlug"`
	ServiceID    string         `json:"serviceId"`
	State        string         `json:"state"`
	Date         string         `json:"date"` // YYYY-MM-DD
	PartySize    int            `json:"partySize"`
	Slots        []SlotResponse `json:"slots"`
	SelectedSlot *SlotResponse  `json:"selectedSlot,omitempty"`
	Timezone     string         `json:"timezone,omitempty"` // таймзона бизнеса
	LastError    string         `json:"lastError,omitempty"`
}

// ProceedResponse ответ на proceed: токен черновика и назначенный стол
type ProceedResponse struct {
	DraftToken string    `json:"draftToken"`
	TableID    string    `json:"tableId"`
	TableCode  string    `json:"tableCode"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// FromSnapshot конвертирует срез selector-сессии в response
func FromSnapshot(snap selector.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		SessionID:    snap.ID,
		BusinessSlug: snap.BusinessSlug,
		ServiceID:    snap.ServiceID,
		State:        string(snap.State),
		Date:         snap.Date.Format(domain.DateFormat),
		PartySize:    snap.PartySize,
		Slots:        []SlotResponse{},
		LastError:    snap.LastError,
	}

	if snap.Matrix != nil {
		resp.Timezone = snap.Matrix.BusinessTimezone
		for _, slot := range snap.Matrix.Slots {
			resp.Slots = append(resp.Slots, SlotResponse{StartsAt: slot.StartsAt, EndsAt: slot.EndsAt})
		}
	}
	if snap.SelectedSlot != nil {
		resp.SelectedSlot = &SlotResponse{
			StartsAt: snap.SelectedSlot.StartsAt,
			EndsAt:   snap.SelectedSlot.EndsAt,
		}
	}
	return resp
}
