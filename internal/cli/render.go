package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/frogfen/internal/api/response"
	"github.com/mcoot/frogfen/internal/model"
)

const cellWidth = 6

var (
	cellStyle   = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	originStyles = map[string]lipgloss.Style{
		string(model.OriginSeed):   cellStyle.Bold(true).Foreground(lipgloss.Color("15")),
		string(model.OriginLocked): cellStyle.Foreground(lipgloss.Color("10")),
		string(model.OriginPlaced): cellStyle.Bold(true).Foreground(lipgloss.Color("11")),
	}

	bonusStyles = map[string]lipgloss.Style{
		string(model.BonusLetter): cellStyle.Foreground(lipgloss.Color("6")),
		string(model.BonusWord):   cellStyle.Foreground(lipgloss.Color("5")),
	}

	tileStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	acceptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	rejectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// RenderBoard draws the board with row and column indices. Empty bonus cells
// show their multiplier label.
func RenderBoard(b response.Board) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", 3))
	for col := 0; col < b.Size; col++ {
		sb.WriteString(headerStyle.Render(cellStyle.Render(strconv.Itoa(col))))
	}
	sb.WriteRune('\n')

	for row, cells := range b.Cells {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%2d ", row)))
		for _, cell := range cells {
			sb.WriteString(renderCell(cell))
		}
		if row < len(b.Cells)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func renderCell(cell response.Cell) string {
	if cell.Letter != "" {
		style, ok := originStyles[cell.Origin]
		if !ok {
			style = cellStyle
		}
		return style.Render(cell.Letter)
	}
	if cell.Bonus != nil {
		return bonusStyles[cell.Bonus.Kind].Render(cell.Bonus.Label)
	}
	return cellStyle.Render("·")
}

// RenderRack draws the tiles that are still in the rack, in slot order, as
// boxes showing id, letter and points
func RenderRack(tiles []response.Tile) string {
	var inRack []response.Tile
	for _, t := range tiles {
		if !t.OnBoard {
			inRack = append(inRack, t)
		}
	}
	if len(inRack) == 0 {
		return "(rack empty)"
	}
	sort.Slice(inRack, func(i, j int) bool { return inRack[i].Slot < inRack[j].Slot })

	boxes := make([]string, len(inRack))
	for i, t := range inRack {
		boxes[i] = tileStyle.Render(fmt.Sprintf("%s%d\n#%d", t.Letter, t.Points, t.ID))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// RenderTurn summarises turn progress
func RenderTurn(t response.Turn) string {
	if t.Phase == string(model.PhaseGameOver) {
		return fmt.Sprintf("Game over. Final score: %d", t.Score)
	}
	return fmt.Sprintf("Turn %d of %d. Score: %d", t.Number+1, t.MaxTurns, t.Score)
}

// RenderSession draws the whole session: header, board, rack and turn
func RenderSession(s response.Session) string {
	parts := []string{
		fmt.Sprintf("Session %s (seed %s)", s.ID, s.Seed),
		RenderBoard(s.Board),
		RenderRack(s.Rack),
		RenderTurn(s.Turn),
	}
	return strings.Join(parts, "\n")
}

// RenderResult describes a submitted move
func RenderResult(r response.MoveResult) string {
	var sb strings.Builder
	if !r.Accepted {
		sb.WriteString(rejectStyle.Render("Rejected: " + r.Message))
		sb.WriteRune('\n')
		sb.WriteString(RenderTurn(r.Turn))
		return sb.String()
	}

	sb.WriteString(acceptStyle.Render(fmt.Sprintf("Accepted: +%d", r.TurnScore)))
	sb.WriteRune('\n')
	for _, w := range r.Words {
		sb.WriteString("  " + w.Breakdown + "\n")
	}
	sb.WriteString(RenderTurn(r.Turn))
	return sb.String()
}
