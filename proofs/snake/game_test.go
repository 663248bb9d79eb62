package main

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGame() *game {
	return newGame(10, 10, rand.New(rand.NewSource(1)))
}

func TestStep_movesHead(t *testing.T) {
	g := testGame()
	head := g.snake[0]
	g.food = image.Pt(1, 1) // out of the way
	require.True(t, g.step())
	assert.Equal(t, head.Add(image.Pt(1, 0)), g.snake[0])
	assert.Len(t, g.snake, 3)
}

func TestStep_eatingGrows(t *testing.T) {
	g := testGame()
	g.food = g.snake[0].Add(image.Pt(1, 0))
	require.True(t, g.step())
	assert.Equal(t, 1, g.score)
	assert.Len(t, g.snake, 4)
	assert.False(t, g.occupied(g.food), "food respawns off the snake")
}

func TestStep_wallEndsGame(t *testing.T) {
	g := testGame()
	g.food = image.Pt(1, 1)
	for i := 0; i < 20 && !g.over; i++ {
		g.step()
	}
	assert.True(t, g.over)
	assert.False(t, g.step(), "stepping a finished game stays finished")
}

func TestTurn_reversalIgnored(t *testing.T) {
	g := testGame()
	g.turn(left) // opposite of the initial right
	assert.Equal(t, right, g.next)

	g.turn(up)
	assert.Equal(t, up, g.next)
}

func TestTurn_queuedPairCannotReverse(t *testing.T) {
	g := testGame()
	// Up then left within one tick. Left reverses the still committed
	// rightward direction, so it is dropped rather than queued.
	g.turn(up)
	g.turn(left)
	assert.Equal(t, up, g.next)
	g.food = image.Pt(1, 1)
	g.step()
	assert.Equal(t, up, g.dir)
}

func TestReset(t *testing.T) {
	g := testGame()
	g.food = image.Pt(1, 1)
	for !g.over {
		g.step()
	}
	g.reset()
	assert.False(t, g.over)
	assert.Equal(t, 0, g.score)
	assert.Len(t, g.snake, 3)
}

func TestRenderer_frameShape(t *testing.T) {
	g := testGame()
	r := newRenderer(g)
	b := r.frame(g)
	assert.Equal(t, r.frameW, b.W)
	assert.Equal(t, r.frameH, b.H)
	// Head cell is drawn with the head color.
	hx := r.gameX + g.snake[0].X*cellPx
	hy := r.gameY + g.snake[0].Y*cellPx
	assert.Equal(t, r.snakeHead, b.At(hx+1, hy+1))
}
