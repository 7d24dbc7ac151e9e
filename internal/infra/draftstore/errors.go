package draftstore

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или его TTL истек
	ErrDraftNotFound = errors.New("draftstore: draft not found")

	// ErrEncode возвращается при ошибке сериализации черновика
	ErrEncode = errors.New("draftstore: failed to encode draft")

	// ErrDecode возвращается при ошибке десериализации черновика
	ErrDecode = errors.New("draftstore: failed to decode draft")

	// ErrStore возвращается при ошибке обращения к Redis
	ErrStore = errors.New("draftstore: storage error")
)
