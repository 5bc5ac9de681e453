package model

// TileID identifies a tile for the lifetime of a session
type TileID int

// TileLocation records where a tile currently sits
type TileLocation struct {
	OnBoard  bool     `json:"on_board"`
	Slot     int      `json:"slot"`     // Rack slot when not on the board
	Position Position `json:"position"` // Board cell when on the board
}

// Tile is a lettered tile that moves between the rack and the board until locked
type Tile struct {
	ID       TileID       `json:"id"`
	Letter   rune         `json:"letter"`
	Points   int          `json:"points"`
	Location TileLocation `json:"location"`
}

// Rack holds the tiles the player has not yet committed to the board
type Rack struct {
	Tiles []Tile `json:"tiles"`
}

// Clone returns a copy of the rack that shares no tile storage
func (r Rack) Clone() Rack {
	tiles := make([]Tile, len(r.Tiles))
	copy(tiles, r.Tiles)
	return Rack{Tiles: tiles}
}

// Find returns the tile with the given ID, or nil if it is not in the rack
func (r *Rack) Find(id TileID) *Tile {
	for i := range r.Tiles {
		if r.Tiles[i].ID == id {
			return &r.Tiles[i]
		}
	}
	return nil
}

// TileAt returns the tile placed on the given board position, or nil
func (r *Rack) TileAt(pos Position) *Tile {
	for i := range r.Tiles {
		loc := r.Tiles[i].Location
		if loc.OnBoard && loc.Position == pos {
			return &r.Tiles[i]
		}
	}
	return nil
}

// InRack returns the tiles that are not on the board
func (r *Rack) InRack() []Tile {
	var tiles []Tile
	for _, t := range r.Tiles {
		if !t.Location.OnBoard {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// OnBoard returns the tiles currently placed on the board
func (r *Rack) OnBoard() []Tile {
	var tiles []Tile
	for _, t := range r.Tiles {
		if t.Location.OnBoard {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Remove drops tiles from the rack entirely (used once they are locked)
func (r *Rack) Remove(ids ...TileID) {
	drop := make(map[TileID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.Tiles[:0]
	for _, t := range r.Tiles {
		if !drop[t.ID] {
			kept = append(kept, t)
		}
	}
	r.Tiles = kept
}

// FreeSlot returns the lowest rack slot not used by an off-board tile
func (r *Rack) FreeSlot() int {
	used := make(map[int]bool)
	for _, t := range r.Tiles {
		if !t.Location.OnBoard {
			used[t.Location.Slot] = true
		}
	}
	slot := 0
	for used[slot] {
		slot++
	}
	return slot
}
