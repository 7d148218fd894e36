package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
	footHeight = 2
)

// boardExtent returns the drawn width and height of a size x size grid.
func boardExtent(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// minScreenSize returns the smallest screen a board of size fits on.
func minScreenSize(size int) (w, h int) {
	bw, bh := boardExtent(size)
	return max(bw+2, len(controlsHint)), bh + hudHeight + footHeight
}

// tileColor picks the color a tile value is drawn in.
func tileColor(v int) core.Color {
	switch v {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorOrange
	case 16:
		return core.ColorBrightRed
	case 32:
		return core.ColorRed
	case 64:
		return core.ColorBrightYellow
	case 128:
		return core.ColorYellow
	case 256:
		return core.ColorGreen
	case 512:
		return core.ColorBrightGreen
	case 1024:
		return core.ColorCyan
	case 2048:
		return core.ColorGold
	default:
		return core.ColorPurple
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bw, bh := boardExtent(g.rules.Size)
	area := core.CenteredRect(dst.Bounds(), bw, bh+hudHeight+footHeight)
	board := core.NewRect(area.X, area.Y+hudHeight, bw, bh)

	g.renderHUD(dst, area)
	g.renderBoard(dst, board)
	dst.DrawTextColored(area.X+(bw-len(controlsHint))/2, board.Bottom()+1, controlsHint, core.ColorGray)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	minW, minH := minScreenSize(g.rules.Size)
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title, scores and undo depth above the board.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	st := g.session.state

	title := g.Title()
	dst.DrawTextColored(area.X+(area.W-len(title))/2, area.Y, title, core.ColorGold)

	dst.DrawText(area.X, area.Y+1, fmt.Sprintf("Score: %d", st.Score))
	best := fmt.Sprintf("Best: %d", st.Best)
	dst.DrawText(area.Right()-len(best), area.Y+1, best)

	var goal string
	if g.rules.WinTile > 0 {
		goal = fmt.Sprintf("Goal: %d", g.rules.WinTile)
		if st.ReachedWinTile {
			goal += " *"
		}
	} else {
		goal = fmt.Sprintf("Max: %d", MaxTile(st.Board))
	}
	dst.DrawTextColored(area.X, area.Y+2, goal, core.ColorGray)
	undo := fmt.Sprintf("Undo: %d", g.session.UndoLen())
	dst.DrawTextColored(area.Right()-len(undo), area.Y+2, undo, core.ColorGray)
}

// gridRune picks the box-drawing rune at grid intersection (x, y).
func gridRune(x, y, size int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == size:
		return '┐'
	case y == size && x == 0:
		return '└'
	case y == size && x == size:
		return '┘'
	case y == 0:
		return '┬'
	case y == size:
		return '┴'
	case x == 0:
		return '├'
	case x == size:
		return '┤'
	default:
		return '┼'
	}
}

// renderBoard draws the grid and its tiles inside r.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	size := g.rules.Size
	for y := range size + 1 {
		for x := range size + 1 {
			px := r.X + x*cellWidth
			py := r.Y + y*cellHeight
			dst.SetColored(px, py, gridRune(x, y, size), core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	board := g.session.state.Board
	for row := range size {
		for col := range size {
			val := board[row][col]
			if val == 0 {
				continue
			}

			p := Pos{Row: row, Col: col}
			color := tileColor(val)
			switch {
			case g.flash.isMerged(p):
				color = core.ColorBrightMagenta
			case g.flash.isSpawned(p):
				color = core.ColorBrightCyan
			}

			label := strconv.Itoa(val)
			pad := max((cellWidth-1-len(label))/2, 0)
			dst.DrawTextColored(r.X+col*cellWidth+1+pad, r.Y+row*cellHeight+1, label, color)
		}
	}
}

// renderOverlays draws the pause, win and game over boxes.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch g.Status() {
	case StatusPaused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case StatusWon:
		drawOverlay(dst, cx, cy, fmt.Sprintf("%d!", g.rules.WinTile), "Enter: keep going", "N: new game")
	case StatusGameOver:
		drawOverlay(dst, cx, cy, "GAME OVER",
			fmt.Sprintf("Max tile: %d", MaxTile(g.session.state.Board)),
			"U: undo  N: new game")
	}
}

// drawOverlay draws a boxed block of lines centered at (cx, cy).
func drawOverlay(dst *core.Screen, cx, cy int, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	box := core.NewRect(cx-(width+4)/2, cy-(len(lines)+2)/2, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

const controlsHint = "Arrows/WASD/HJKL  U undo  N new  P pause  Q quit"

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return controlsHint
}
