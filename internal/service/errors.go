package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid      = errors.New("invalid parameters")
	ErrQueryTooShort     = errors.New("query too short")
	ErrMediaMissing      = errors.New("no media provided")
	ErrMediaTypeMissing  = errors.New("media type is required")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNotOwner          = errors.New("not authorized")
	ErrUserNotFound      = errors.New("user not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrUsernameExist     = errors.New("username already taken")
	ErrEmailExist        = errors.New("email already registered")
	ErrPasswordIncorrect = errors.New("invalid credentials")
	ErrMediaHost         = errors.New("failed to upload to media server")
	ErrPersistence       = errors.New("failed to save post")
	UnExpectedError      = errors.New("something went wrong")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrQueryTooShort:     BadRequest,
	ErrMediaMissing:      BadRequest,
	ErrMediaTypeMissing:  BadRequest,
	ErrNotAuthenticated:  Unauthorized,
	ErrNotOwner:          Forbidden,
	ErrUserNotFound:      NotFound,
	ErrPostNotFound:      NotFound,
	ErrUsernameExist:     Conflict,
	ErrEmailExist:        Conflict,
	ErrPasswordIncorrect: Unauthorized,
	ErrMediaHost:         BadGateway,
	ErrPersistence:       InternalServerError,
	UnExpectedError:      InternalServerError,
}
