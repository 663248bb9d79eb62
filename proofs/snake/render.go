package main

import (
	"strconv"

	"github.com/mesolimbo/sixel/internal/sixdraw"
	"github.com/mesolimbo/sixel/internal/sixel"
	"github.com/mesolimbo/sixel/internal/sixfont"
)

const (
	cellPx       = 16
	titleHeight  = 50
	statusHeight = 120
	padding      = 40
	title        = "SIXEL SNAKE"
)

type renderer struct {
	pal *sixel.Palette
	buf *sixel.Buffer

	background, snakeHead, snakeBody int
	foodIdx, borderIdx, text, accent int

	frameW, frameH int
	gameX, gameY   int
	gamePx         int
}

func newRenderer(g *game) *renderer {
	pal := sixel.NewPalette(8)
	r := &renderer{pal: pal}
	r.background = pal.MustRegister(sixel.RGB(0, 0, 0))
	r.snakeHead = pal.MustRegister(sixel.RGB(0, 255, 0))
	r.snakeBody = pal.MustRegister(sixel.RGB(0, 180, 0))
	r.foodIdx = pal.MustRegister(sixel.RGB(255, 50, 50))
	r.borderIdx = pal.MustRegister(sixel.RGB(100, 100, 100))
	r.text = pal.MustRegister(sixel.RGB(200, 200, 200))
	r.accent = pal.MustRegister(sixel.RGB(0, 255, 0))

	r.gamePx = g.w * cellPx
	r.frameW = r.gamePx + padding
	if min := sixfont.TextWidth(title, 4) + padding; r.frameW < min {
		r.frameW = min
	}
	r.frameH = titleHeight + r.gamePx + statusHeight
	r.gameX = (r.frameW - r.gamePx) / 2
	r.gameY = titleHeight
	r.buf = sixel.NewBuffer(r.frameW, r.frameH)
	return r
}

// frame redraws the whole scene into the reused buffer.
func (r *renderer) frame(g *game) *sixel.Buffer {
	b := r.buf
	b.Clear(r.background)

	sixdraw.Rect(b, 0, 0, r.frameW, r.frameH, r.accent, false)
	r.drawTitle(b)
	r.drawBoard(b, g)
	r.drawStatus(b, g)
	return b
}

func (r *renderer) drawTitle(b *sixel.Buffer) {
	w := sixfont.TextWidth(title, 4)
	sixdraw.Text(b, (r.frameW-w)/2, 8, title, r.accent, 4)
}

func (r *renderer) drawBoard(b *sixel.Buffer, g *game) {
	gx, gy := r.gameX, r.gameY

	// wall ring
	sixdraw.Rect(b, gx, gy, r.gamePx, cellPx, r.borderIdx, true)
	sixdraw.Rect(b, gx, gy+r.gamePx-cellPx, r.gamePx, cellPx, r.borderIdx, true)
	sixdraw.Rect(b, gx, gy, cellPx, r.gamePx, r.borderIdx, true)
	sixdraw.Rect(b, gx+r.gamePx-cellPx, gy, cellPx, r.gamePx, r.borderIdx, true)

	cell := func(pt int, o int) int { return o + pt*cellPx }
	sixdraw.Rect(b, cell(g.food.X, gx), cell(g.food.Y, gy), cellPx, cellPx, r.foodIdx, true)
	for _, s := range g.snake[1:] {
		sixdraw.Rect(b, cell(s.X, gx), cell(s.Y, gy), cellPx, cellPx, r.snakeBody, true)
	}
	sixdraw.Rect(b, cell(g.snake[0].X, gx), cell(g.snake[0].Y, gy), cellPx, cellPx, r.snakeHead, true)
}

func (r *renderer) drawStatus(b *sixel.Buffer, g *game) {
	y := r.gameY + r.gamePx + 16
	score := "SCORE: " + strconv.Itoa(g.score)
	w := sixfont.TextWidth(score, 2)
	sixdraw.Text(b, (r.frameW-w)/2, y, score, r.text, 2)

	if g.over {
		msg := "GAME OVER!"
		mw := sixfont.TextWidth(msg, 4)
		sixdraw.Text(b, (r.frameW-mw)/2, y+2*sixfont.Height+8, msg, r.foodIdx, 4)

		hint := "R TO RESTART, Q TO QUIT"
		hw := sixfont.TextWidth(hint, 2)
		sixdraw.Text(b, (r.frameW-hw)/2, y+6*sixfont.Height+16, hint, r.text, 2)
	}
}
