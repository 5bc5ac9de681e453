package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/frogfen/internal/api/response"
	"github.com/mcoot/frogfen/internal/model"
	"github.com/mcoot/frogfen/internal/testutil"
)

func TestRenderBoard(t *testing.T) {
	b := testutil.BoardFromRows(
		"...",
		"CAt",
		"...",
	)
	b.SetBonus(model.Position{Row: 0, Col: 0}, &model.Bonus{Kind: model.BonusWord, Multiplier: mustRat("3/2")})

	out := RenderBoard(response.BoardFromModel(b))
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "0")
	assert.Contains(t, lines[0], "2")
	assert.Contains(t, lines[1], "1.5xW")
	assert.Contains(t, lines[2], "C")
	assert.Contains(t, lines[2], "A")
	assert.Contains(t, lines[2], "T")
}

func TestRenderRackSkipsPlacedTiles(t *testing.T) {
	tiles := []response.Tile{
		{ID: 2, Letter: "B", Points: 3, Slot: 1},
		{ID: 1, Letter: "A", Points: 1, Slot: 0},
		{ID: 3, Letter: "Z", Points: 10, OnBoard: true},
	}

	out := RenderRack(tiles)

	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "B3")
	assert.NotContains(t, out, "Z10")
	assert.Less(t, strings.Index(out, "A1"), strings.Index(out, "B3"))
}

func TestRenderRackEmpty(t *testing.T) {
	assert.Equal(t, "(rack empty)", RenderRack(nil))
}

func TestRenderTurn(t *testing.T) {
	assert.Equal(t, "Turn 2 of 3. Score: 7", RenderTurn(response.Turn{Number: 1, MaxTurns: 3, Score: 7, Phase: "awaiting_move"}))
	assert.Equal(t, "Game over. Final score: 12", RenderTurn(response.Turn{Number: 3, MaxTurns: 3, Score: 12, Phase: "game_over"}))
}

func TestRenderResult(t *testing.T) {
	accepted := RenderResult(response.MoveResult{
		Accepted:  true,
		TurnScore: 10,
		Words:     []response.WordScore{{Word: "CAT", Breakdown: "CAT: 5 x 2 = 10"}},
		Turn:      response.Turn{Number: 1, MaxTurns: 3, Score: 10},
	})
	assert.Contains(t, accepted, "Accepted: +10")
	assert.Contains(t, accepted, "CAT: 5 x 2 = 10")

	rejected := RenderResult(response.MoveResult{
		Reason:  "not_straight_line",
		Message: "tiles must form a straight line",
		Turn:    response.Turn{MaxTurns: 3},
	})
	assert.Contains(t, rejected, "Rejected: tiles must form a straight line")
	assert.Contains(t, rejected, "Turn 1 of 3")
}
