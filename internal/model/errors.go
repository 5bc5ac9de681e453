package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Board errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrCellNotPlaced   = errors.New("cell does not hold a tile placed this turn")
	ErrInvalidLetter   = errors.New("invalid letter")

	// Rack errors
	ErrTileNotFound      = errors.New("tile not found")
	ErrTileAlreadyPlaced = errors.New("tile is already on the board")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)

// RejectReason classifies why a submitted move was not accepted
type RejectReason string

const (
	ReasonNoTilesPlaced   RejectReason = "no_tiles_placed"
	ReasonNotStraightLine RejectReason = "not_straight_line"
	ReasonNotConnected    RejectReason = "not_connected"
	ReasonWordTooShort    RejectReason = "word_too_short"
	ReasonInvalidWord     RejectReason = "invalid_word"
	ReasonGameAlreadyOver RejectReason = "game_already_over"
)

// Move rejection sentinels, matched with errors.Is against a *RejectionError
var (
	ErrNoTilesPlaced   = errors.New("no tiles placed")
	ErrNotStraightLine = errors.New("tiles must form a straight line")
	ErrNotConnected    = errors.New("tiles must touch an existing word")
	ErrWordTooShort    = errors.New("must create at least one word of 2+ letters")
	ErrInvalidWord     = errors.New("invalid word")
	ErrGameAlreadyOver = errors.New("game is already over")
)

var reasonSentinels = map[RejectReason]error{
	ReasonNoTilesPlaced:   ErrNoTilesPlaced,
	ReasonNotStraightLine: ErrNotStraightLine,
	ReasonNotConnected:    ErrNotConnected,
	ReasonWordTooShort:    ErrWordTooShort,
	ReasonInvalidWord:     ErrInvalidWord,
	ReasonGameAlreadyOver: ErrGameAlreadyOver,
}

// RejectionError is a recoverable game-rule rejection of a submitted move.
// The board and turn state are untouched when one is returned.
type RejectionError struct {
	Reason RejectReason
	Word   string // The offending word for ReasonInvalidWord
}

// Reject creates a RejectionError for the given reason
func Reject(reason RejectReason) *RejectionError {
	return &RejectionError{Reason: reason}
}

// RejectWord creates an invalid-word RejectionError
func RejectWord(word string) *RejectionError {
	return &RejectionError{Reason: ReasonInvalidWord, Word: word}
}

// Error implements error
func (e *RejectionError) Error() string {
	msg := string(e.Reason)
	if sentinel, ok := reasonSentinels[e.Reason]; ok {
		msg = sentinel.Error()
	}
	if e.Word != "" {
		return fmt.Sprintf("%s: %s", msg, e.Word)
	}
	return msg
}

// Is lets errors.Is match a RejectionError against the reason sentinels
func (e *RejectionError) Is(target error) bool {
	return reasonSentinels[e.Reason] == target
}

// AsRejection extracts a RejectionError from err, if there is one
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
