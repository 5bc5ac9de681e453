package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/frogfen/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidLetter       = "INVALID_LETTER"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeCellOccupied        = "CELL_OCCUPIED"
	CodeCellNotPlaced       = "CELL_NOT_PLACED"
	CodeTileNotFound        = "TILE_NOT_FOUND"
	CodeTileAlreadyPlaced   = "TILE_ALREADY_PLACED"
	CodeGameOver            = "GAME_OVER"
	CodeMoveRejected        = "MOVE_REJECTED"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter must be A-Z"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{CodeCellOccupied, "Cell is already occupied"}}
	case errors.Is(err, model.ErrCellNotPlaced):
		return &httpError{http.StatusConflict, APIError{CodeCellNotPlaced, "Cell does not hold a tile placed this turn"}}
	case errors.Is(err, model.ErrTileNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTileNotFound, "Tile not found in rack"}}
	case errors.Is(err, model.ErrTileAlreadyPlaced):
		return &httpError{http.StatusConflict, APIError{CodeTileAlreadyPlaced, "Tile is already on the board"}}
	case errors.Is(err, model.ErrGameAlreadyOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is already over"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "Dictionary is not loaded"}}
	}

	if rej, ok := model.AsRejection(err); ok {
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeMoveRejected, rej.Error()}}
	}

	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
