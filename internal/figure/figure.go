// Package figure renders the gallows and the hangman figure using
// box-drawing glyphs. The figure is built up in nine stages, one per
// incorrect guess, in a fixed order.
package figure

import "strings"

// Stage identifies one incremental drawing step of the figure.
// StageNone draws nothing beyond the gallows.
type Stage int

const (
	StageNone Stage = iota
	StageHead
	StageNeck
	StageTorso
	StageRightArm
	StageLeftArm
	StageRightLeg
	StageLeftLeg
	StageRightShoe
	StageLeftShoe
)

// DrawableStages is the number of stages that add to the figure.
const DrawableStages = 9

var stageNames = [...]string{
	"none",
	"head",
	"neck",
	"torso",
	"right arm",
	"left arm",
	"right leg",
	"left leg",
	"right shoe",
	"left shoe",
}

func (s Stage) String() string {
	if s < StageNone || s > StageLeftShoe {
		return "unknown"
	}
	return stageNames[s]
}

// ForMisses maps an incorrect-guess count onto a stage, clamping at the
// final stage.
func ForMisses(n int) Stage {
	if n < 0 {
		return StageNone
	}
	if n > DrawableStages {
		return StageLeftShoe
	}
	return Stage(n)
}

const (
	canvasRows = 13
	canvasCols = 16
)

// canvas is a fixed-size rune grid the stages draw onto.
type canvas struct {
	cells [canvasRows][canvasCols]rune
}

func newCanvas() *canvas {
	c := &canvas{}
	for r := range c.cells {
		for col := range c.cells[r] {
			c.cells[r][col] = ' '
		}
	}
	return c
}

// put writes s onto the grid starting at (row, col). Writes outside the
// grid are ignored.
func (c *canvas) put(row, col int, s string) {
	if row < 0 || row >= canvasRows {
		return
	}
	for _, r := range s {
		if col >= canvasCols {
			return
		}
		if col >= 0 {
			c.cells[row][col] = r
		}
		col++
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for r := range c.cells {
		line := strings.TrimRight(string(c.cells[r][:]), " ")
		b.WriteString(line)
		if r < canvasRows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// drawFuncs holds the per-stage drawing functions, indexed by Stage.
// The entry for StageNone is nil.
var drawFuncs = [...]func(*canvas){
	StageNone:      nil,
	StageHead:      drawHead,
	StageNeck:      drawNeck,
	StageTorso:     drawTorso,
	StageRightArm:  drawRightArm,
	StageLeftArm:   drawLeftArm,
	StageRightLeg:  drawRightLeg,
	StageLeftLeg:   drawLeftLeg,
	StageRightShoe: drawRightShoe,
	StageLeftShoe:  drawLeftShoe,
}

// Render draws the gallows plus every stage up to and including the
// given one, and returns the resulting picture.
func Render(stage Stage) string {
	if stage < StageNone {
		stage = StageNone
	}
	if stage > StageLeftShoe {
		stage = StageLeftShoe
	}
	c := newCanvas()
	drawGallows(c)
	for s := StageHead; s <= stage; s++ {
		drawFuncs[s](c)
	}
	return c.String()
}

func drawGallows(c *canvas) {
	c.put(0, 0, "┏"+strings.Repeat("━", 7)+"┓")
	for i := 1; i <= 11; i++ {
		c.put(i, 0, "┃")
	}
	c.put(12, 0, strings.Repeat("█", 16))
}

func drawHead(c *canvas) {
	c.put(1, 6, "╭─┴─╮")
	c.put(2, 6, "│◕‿◕│")
	c.put(3, 6, "╰───╯")
}

func drawNeck(c *canvas) {
	c.put(3, 7, "┬─┬")
}

func drawTorso(c *canvas) {
	c.put(4, 5, "──┘")
	c.put(4, 9, "└──")
	c.put(5, 6, "╷   ╷")
	c.put(6, 6, "│───│")
}

func drawRightArm(c *canvas) {
	c.put(4, 4, "┌")
	c.put(5, 4, "├─┐")
	c.put(6, 4, "│╴")
	c.put(7, 5, "┉")
}

func drawLeftArm(c *canvas) {
	c.put(4, 12, "┐")
	c.put(5, 10, "┌─┤")
	c.put(6, 11, "╶│")
	c.put(7, 11, "┉")
}

func drawRightLeg(c *canvas) {
	c.put(7, 6, "│ ╻")
	c.put(8, 6, "│ │")
	c.put(9, 6, "├ ┤")
}

func drawLeftLeg(c *canvas) {
	c.put(7, 10, "│")
	c.put(8, 10, "│")
	c.put(9, 10, "┤")
}

func drawRightShoe(c *canvas) {
	c.put(9, 7, "─")
	c.put(10, 6, "│┊│")
	c.put(11, 6, "┕━┙")
}

func drawLeftShoe(c *canvas) {
	c.put(9, 8, "┼─┤")
	c.put(10, 9, "┊│")
	c.put(11, 8, "┷━┙")
}
