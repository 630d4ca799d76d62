package mazechase

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/sim"
)

// Rows above and below the board.
const (
	hudRows    = 1
	statusRows = 1
)

// Render draws the board, sprites, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Failed to load maze")
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}
	if g.sched == nil {
		return
	}

	b := g.sched.Board()
	minW, minH := b.W*cellW+2, b.H+hudRows+statusRows
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	ox := (dst.Width() - b.W*cellW) / 2
	oy := hudRows + (dst.Height()-minH)/2
	g.renderHUD(dst, oy-hudRows)
	g.display.draw(dst, ox, oy, b.W, b.H)
	g.renderStatus(dst, oy+b.H)
	g.renderOverlay(dst)
}

// renderHUD draws the score, high score and level indicator.
func (g *Game) renderHUD(dst *core.Screen, y int) {
	sess := g.sched.Session()

	dst.DrawText(1, y, fmt.Sprintf("Score: %d", sess.Score))
	dst.DrawTextCentered(y, fmt.Sprintf("High: %d", sess.HighScore))

	levelText := fmt.Sprintf("Level: %d", sess.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, y, levelText)
}

// renderStatus draws spare lives and the state banner under the board.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	sess := g.sched.Session()
	if spare := sess.Lives - 1; spare > 0 && !g.sched.Demo() {
		dst.DrawTextColored(1, y, strings.Repeat("< ", spare), core.ColorBrightYellow)
	}

	switch g.sched.State() {
	case sim.StateAttract:
		dst.DrawTextCentered(y, "DEMO - press SPACE to play")
	case sim.StateLifeTransition:
		if g.sched.Demo() {
			dst.DrawTextCentered(y, "DEMO")
		} else {
			dst.DrawTextCentered(y, "READY!")
		}
	case sim.StateLevelTransition:
		dst.DrawTextCentered(y, fmt.Sprintf("LEVEL %d CLEAR", sess.Level))
	}
}

// renderOverlay draws boxed messages over the board.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.sched.State() == sim.StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to play again", g.sched.Session().FinalScore)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).
		Centered(max(len(title), len(subtitle))+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(box.X+(box.W-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(box.W-len(subtitle))/2, box.Y+3, subtitle)
}
