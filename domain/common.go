package domain

import (
	"errors"
)

const (
	RoleOperador   = "operador"
	RoleSupervisor = "supervisor"

	DefaultPageLimit   = 10
	MaxPageLimit       = 100
	MaxPage            = 10000
	FolioDisplayDigits = 4
)

var (
	MessageUserNotAllowed     = "user not allowed"
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"
	MessageFailedInvalidFolio = "invalid folio"

	ErrUserNotAllowed      = errors.New("user not allowed")
	ErrTokenNotFound       = errors.New("failed to token not found")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrInvalidFolio        = errors.New("invalid folio")
	ErrInvalidProductState = errors.New("product is not in a state that allows this operation")
	ErrProductoNotFound    = errors.New("product not found")
)

type (
	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}
)

// ClampPage keeps a requested page within 1..MaxPage so offsets cannot overflow.
func ClampPage(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	}
	return page
}

func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}
}
