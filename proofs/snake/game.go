package main

import (
	"image"
	"math/rand"
)

type direction image.Point

var (
	up    = direction{0, -1}
	down  = direction{0, 1}
	left  = direction{-1, 0}
	right = direction{1, 0}
)

func (d direction) opposite() direction { return direction{-d.X, -d.Y} }

// game holds snake state on a cell grid whose outermost ring is wall.
type game struct {
	w, h  int
	snake []image.Point // head first
	dir   direction
	next  direction // queued, applied once per step
	food  image.Point
	score int
	over  bool
	rng   *rand.Rand
}

func newGame(w, h int, rng *rand.Rand) *game {
	g := &game{w: w, h: h, rng: rng}
	g.reset()
	return g
}

func (g *game) reset() {
	cx, cy := g.w/2, g.h/2
	g.snake = []image.Point{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.dir, g.next = right, right
	g.score = 0
	g.over = false
	g.spawnFood()
}

func (g *game) spawnFood() {
	var open []image.Point
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			pt := image.Pt(x, y)
			if !g.occupied(pt) {
				open = append(open, pt)
			}
		}
	}
	if len(open) > 0 {
		g.food = open[g.rng.Intn(len(open))]
	}
}

func (g *game) occupied(pt image.Point) bool {
	for _, s := range g.snake {
		if s == pt {
			return true
		}
	}
	return false
}

// turn queues a direction change. Reversals against the committed
// direction are ignored so a quick pair of perpendicular presses cannot
// fold the snake onto itself.
func (g *game) turn(d direction) {
	if d != g.dir.opposite() {
		g.next = d
	}
}

// step advances one tick and reports whether the game is still running.
func (g *game) step() bool {
	if g.over {
		return false
	}
	g.dir = g.next

	head := g.snake[0].Add(image.Point(g.dir))
	if head.X <= 0 || head.X >= g.w-1 || head.Y <= 0 || head.Y >= g.h-1 {
		g.over = true
		return false
	}
	if g.occupied(head) {
		g.over = true
		return false
	}

	g.snake = append([]image.Point{head}, g.snake...)
	if head == g.food {
		g.score++
		g.spawnFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
	return true
}
