package mines

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

const (
	cellWidth    = 3 // "[X]" with the cursor, " X " without
	hudHeight    = 3 // title, counters, top border
	footerHeight = 3 // bottom border, status, controls
)

func boardWidth(size int) int {
	return size * cellWidth
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := boardWidth(g.board.Size())
	boardX := core.Max(1, (dst.Width()-boardW)/2)
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	dst.DrawBox(core.NewRect(boardX-1, boardY-1, boardW+2, g.board.Size()+2))
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+g.board.Size()+1)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and counters.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	left := fmt.Sprintf("Mines: %d", g.board.Mines()-g.board.Flags())
	dst.DrawText(boardX, 1, left)

	right := fmt.Sprintf("Moves: %d", g.board.Moves())
	rightX := core.Max(boardX+len(left)+1, boardX+boardW-len(right))
	dst.DrawText(rightX, 1, right)
}

// renderBoard draws every cell, with brackets around the cursor.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			x := boardX + col*cellWidth
			y := boardY + row

			glyph := g.board.glyph(row, col)
			dst.SetColor(x+1, y, glyph, g.glyphColor(row, col, glyph))

			if g.cursor.Row == row && g.cursor.Col == col && !g.board.Finished() {
				dst.SetColor(x, y, '[', core.ColorCyan)
				dst.SetColor(x+2, y, ']', core.ColorCyan)
			}
		}
	}
}

func (g *Game) glyphColor(row, col int, glyph rune) core.Color {
	switch {
	case glyph == '*':
		if g.exploded != nil && g.exploded.Row == row && g.exploded.Col == col {
			return core.ColorBrightRed
		}
		return core.ColorRed
	case glyph == '?':
		return core.ColorYellow
	case glyph == 'X':
		return core.ColorGray
	case glyph >= '1' && glyph <= '8':
		return core.CountColor(int(glyph - '0'))
	default:
		return core.ColorDefault
	}
}

// renderFooter draws the status line and the control hints.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch {
	case g.board.Lost():
		dst.DrawTextCentered(y, "BANG!!! Press R to play again")
	case g.board.Won():
		dst.DrawTextCentered(y, fmt.Sprintf("Cleared in %d moves! Press R to play again", g.board.Moves()))
	case g.LastError() != nil:
		dst.DrawTextCentered(y, g.LastError().Error())
	}
	dst.DrawTextCentered(y+1, g.Controls())
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/HJKL: Move | Space: Reveal | F: Mark | Q: Quit"
}
