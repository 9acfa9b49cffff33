package service

import "errors"

// кастомные ошибки
var (
	ErrNotFound        = errors.New("not found")
	ErrCategoryExists  = errors.New("category with this name already exists")
	ErrSessionNotFound = errors.New("analytics session not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
)
