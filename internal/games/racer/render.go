package racer

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/math-racer/internal/core"
	"github.com/vovakirdan/math-racer/internal/race"
)

// Layout constants
const (
	hudHeight     = 3  // score line, problem line, separator
	maxRoadWidth  = 48 // road is centered and capped on wide terminals
	minScreenW    = 24
	minScreenH    = 12
	dashLength    = 2 // lit rows per divider dash
	dashPeriod    = 4 // rows per dash cycle
	scrollEvery   = 4 // frames per one-row scroll of the dividers
	carSprite     = "[#]"
	flashCorrect  = "CORRECT!"
	flashWrong    = "WRONG!"
	mutedLabel    = "[m] sound off"
	unmutedLabel  = "[m] sound on"
	readyTitle    = "MATH RACER"
	gameOverTitle = "GAME OVER"
	tooSmallLabel = "Too small"
)

// road is the playfield geometry for one frame.
type road struct {
	x, w   int // outer columns including the edges
	top, h int // rows of the driving area
}

func (r road) inner() core.Rect {
	return core.NewRect(r.x+1, r.top, r.w-2, r.h)
}

func (r road) laneCenter(lane int) int {
	in := r.inner()
	return in.X + core.LaneCenterX(in.W, lane, race.LaneCount)
}

func (r road) row(percent float64) int {
	return core.PercentToRow(percent, r.top, r.h)
}

func layoutRoad(w, h int) road {
	rw := w
	if rw > maxRoadWidth {
		rw = maxRoadWidth
	}
	return road{
		x:   (w - rw) / 2,
		w:   rw,
		top: hudHeight,
		h:   h - hudHeight,
	}
}

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, tooSmallLabel, core.ColorRed)
		return
	}

	snap := g.session.Snapshot()
	r := layoutRoad(dst.Width(), dst.Height())

	g.renderHUD(dst, snap)
	g.renderRoad(dst, r, snap)

	switch g.view {
	case ViewReady:
		renderMessage(dst, readyTitle, core.ColorBrightYellow, []string{
			"Steer into the lane holding the answer",
			"before it reaches your car.",
			"",
			"<-/-> or A/D  steer",
			"M             toggle sound",
			"",
			"Press Enter to start",
		})
		return

	case ViewGameOver:
		renderMessage(dst, gameOverTitle, core.ColorBrightRed, []string{
			fmt.Sprintf("Final score: %d", g.lastScore),
			"",
			"Press R or Enter to play again",
			"Esc for the title screen",
		})
		return
	}

	g.renderOptions(dst, r, snap)
	g.renderCar(dst, r, snap)
	renderFlash(dst, r, snap.Feedback)
}

func (g *Game) renderHUD(dst *core.Screen, snap race.Snapshot) {
	score := snap.Score
	if g.view == ViewGameOver {
		score = g.lastScore
	}
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", score), core.ColorBrightWhite)

	label := unmutedLabel
	if g.player.Muted() {
		label = mutedLabel
	}
	dst.DrawTextColor(dst.Width()-len(label)-1, 0, label, core.ColorGray)

	if g.view == ViewPlaying && snap.HasProblem {
		dst.DrawTextCentered(1, snap.Problem.String(), core.ColorBrightYellow)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 2, '─', core.ColorGray)
	}
}

func (g *Game) renderRoad(dst *core.Screen, r road, snap race.Snapshot) {
	edge := core.ColorWhite
	divider := core.ColorGray
	switch snap.Feedback {
	case race.FeedbackCorrect:
		edge, divider = core.ColorBrightGreen, core.ColorGreen
	case race.FeedbackIncorrect:
		edge, divider = core.ColorBrightRed, core.ColorRed
	}

	dst.DrawVLine(r.x, r.top, r.h, '│', edge)
	dst.DrawVLine(r.x+r.w-1, r.top, r.h, '│', edge)

	// Dividers scroll toward the car only while driving.
	offset := 0
	if g.view == ViewPlaying {
		offset = int(g.frame/scrollEvery) % dashPeriod
	}

	in := r.inner()
	for lane := 1; lane < race.LaneCount; lane++ {
		x := in.X + core.LaneRect(in.W, in.H, lane, race.LaneCount).X
		for y := 0; y < r.h; y++ {
			if (y-offset+dashPeriod)%dashPeriod < dashLength {
				dst.SetColor(x, r.top+y, '┊', divider)
			}
		}
	}
}

func (g *Game) renderOptions(dst *core.Screen, r road, snap race.Snapshot) {
	if !snap.OptionsVisible() {
		return
	}
	y := r.row(snap.DescentProgress)
	if y < r.top || y >= r.top+r.h {
		return
	}
	for lane, opt := range snap.Options {
		text := strconv.Itoa(opt.Value)
		x := r.laneCenter(lane) - len(text)/2
		dst.DrawTextColor(x, y, text, core.ColorBrightWhite)
	}
}

func (g *Game) renderCar(dst *core.Screen, r road, snap race.Snapshot) {
	y := r.row(snap.ArrivalThreshold)
	x := r.laneCenter(snap.Lane) - len(carSprite)/2
	dst.DrawTextColor(x, y, carSprite, core.ColorBrightCyan)
}

func renderFlash(dst *core.Screen, r road, fb race.Feedback) {
	switch fb {
	case race.FeedbackCorrect:
		dst.DrawTextCentered(r.top+1, flashCorrect, core.ColorBrightGreen)
	case race.FeedbackIncorrect:
		dst.DrawTextCentered(r.top+1, flashWrong, core.ColorBrightRed)
	}
}

// renderMessage draws a centered box with a title and body lines.
func renderMessage(dst *core.Screen, title string, titleColor core.Color, lines []string) {
	width := len(title)
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	boxW := core.Clamp(width+4, 0, dst.Width())
	boxH := core.Clamp(len(lines)+4, 0, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.SetColor(x, y, ' ', core.ColorDefault)
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorDefault)
	}
}
