package service

import "errors"

// Mutation precondition failures. They are surfaced before any write and map
// to client errors at the HTTP layer.
var (
	ErrStateUnavailable     = errors.New("no world state available for conversation")
	ErrItemNotFound         = errors.New("item not found in inventory")
	ErrInsufficientQuantity = errors.New("not enough quantity in inventory")
	ErrInvalidSlot          = errors.New("unknown equipment slot")
	ErrSlotEmpty            = errors.New("equipment slot is empty")
	ErrConfirmationRequired = errors.New("slot occupied, confirmation required")
	ErrQuestNotFound        = errors.New("quest not found")
	ErrQuestNotAcceptable   = errors.New("quest is not acceptable")
)
