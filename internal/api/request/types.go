package request

// CreateSessionRequest is the request body for starting a session.
// An empty seed selects today's daily board.
type CreateSessionRequest struct {
	Seed string `json:"seed,omitempty"`
}

// PlaceTileRequest is the request body for moving a rack tile onto the board
type PlaceTileRequest struct {
	TileID int `json:"tile_id"`
	Row    int `json:"row"`
	Col    int `json:"col"`
}

// UnplaceTileRequest is the request body for returning one placed tile to the rack
type UnplaceTileRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
