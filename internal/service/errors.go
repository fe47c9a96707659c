package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrOwnerNotFound covers every form of unresolvable profile owner:
	// an unknown username, an explicit username segment in single-user
	// mode, and an empty system with no users at all.
	ErrOwnerNotFound = errors.New("profile owner not found")
)
