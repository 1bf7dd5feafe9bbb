package domain

import "errors"

var (
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidPeriod = errors.New("invalid period")
)
