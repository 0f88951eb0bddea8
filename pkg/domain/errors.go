package domain

import "errors"

// ErrSessionNotFound is returned when a user has no stored session.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownChecklist is returned when a checklist ID is not in the catalog.
var ErrUnknownChecklist = errors.New("unknown checklist")

// ErrUnknownItem is returned when an item name is not part of the active checklist.
var ErrUnknownItem = errors.New("unknown item")

// ErrInvalidDisposition is returned for values outside the closed disposition set.
var ErrInvalidDisposition = errors.New("invalid disposition")
