// Terminal frontend. Terminals report no key releases, so every key maps to a
// tap and held movement leans on the OS key repeat instead of the engine's
// autorepeat.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/sim"
)

const tickInterval = 16 * time.Millisecond

var kindColors = map[sim.Kind]tcell.Color{
	sim.KindI: tcell.ColorAqua,
	sim.KindO: tcell.ColorYellow,
	sim.KindT: tcell.ColorPurple,
	sim.KindS: tcell.ColorGreen,
	sim.KindZ: tcell.ColorRed,
	sim.KindJ: tcell.ColorBlue,
	sim.KindL: tcell.ColorOrange,
}

// cellLayout maps simulation cells to terminal coordinates. Cells are drawn
// two columns wide, and the vertical axis flips so row zero sits at the
// bottom of the well.
type cellLayout struct {
	offsetX, offsetY int
	height           int
}

var _ sim.CoordinateMapper = cellLayout{}

func (l cellLayout) CellToWorld(c sim.Cell) (float64, float64) {
	return float64(l.offsetX + c.X*2), float64(l.offsetY + l.height - 1 - c.Y)
}

type Game struct {
	screen tcell.Screen
	engine *sim.Engine
	sounds *audio.Player
	layout cellLayout

	score  int
	lines  int
	colors map[sim.BlockID]tcell.Color
}

// Game is the engine's event sink; events fire synchronously inside Tick on
// the main goroutine.
func (g *Game) RowsCleared(rows int) {
	g.score += sim.ScoreForRows(rows)
	g.lines += rows
	g.sounds.RowsCleared(rows)
}

func (g *Game) GameOver() {
	g.sounds.GameOver()
}

func NewGame(cfg sim.Config, seed uint64, mute bool) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen: screen,
		sounds: audio.NewPlayer(),
		layout: cellLayout{offsetX: 2, offsetY: 1, height: cfg.Height},
		colors: make(map[sim.BlockID]tcell.Color),
	}

	if !mute {
		if err := g.sounds.Init(); err != nil {
			// Non-fatal, the game runs silent.
			log.Printf("audio initialization failed: %v", err)
		}
	}

	g.engine = sim.New(cfg, sim.Deps{
		Pool:    sim.NewHandlePool(),
		Spawner: sim.NewBagSpawner(sim.SpawnOrigin(cfg.Width, cfg.Height), seed),
		Events:  g,
	})
	return g, nil
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		switch ev.Key() {
		case tcell.KeyLeft:
			g.tap(sim.ActionLeft)
		case tcell.KeyRight:
			g.tap(sim.ActionRight)
		case tcell.KeyDown:
			g.tap(sim.ActionSoftDrop)
		case tcell.KeyUp:
			g.tap(sim.ActionRotateCW)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				g.tap(sim.ActionLeft)
			case 'l':
				g.tap(sim.ActionRight)
			case 'j':
				g.tap(sim.ActionSoftDrop)
			case 'z', 'k':
				g.tap(sim.ActionRotateCW)
			case 'x':
				g.tap(sim.ActionRotateCCW)
			case ' ':
				g.tap(sim.ActionHardDrop)
			case 'r':
				g.engine.Reset()
				g.score = 0
				g.lines = 0
				clear(g.colors)
			}
		}
	}
	return true
}

func (g *Game) tap(a sim.Action) {
	if g.engine.Over() {
		return
	}
	g.engine.Tap(a)
	switch a {
	case sim.ActionLeft, sim.ActionRight:
		g.sounds.Move()
	case sim.ActionRotateCW, sim.ActionRotateCCW:
		g.sounds.Rotate()
	case sim.ActionHardDrop:
		g.sounds.Lock()
	}
}

func (g *Game) update(dt float64) {
	g.engine.Tick(dt)

	snap := g.engine.Snapshot()
	if snap.Active != nil {
		color := kindColors[snap.Active.Kind]
		for _, id := range snap.Active.Blocks {
			g.colors[id] = color
		}
	}
}

func (g *Game) draw() {
	g.screen.Clear()
	snap := g.engine.Snapshot()

	g.drawBorder(snap)

	clearing := make(map[int]bool, len(snap.Clearing))
	for _, y := range snap.Clearing {
		clearing[y] = true
	}

	for _, p := range snap.Blocks {
		style := tcell.StyleDefault.Foreground(g.colors[p.Block])
		if clearing[p.Cell.Y] {
			style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		}
		g.drawCell(p.Cell, style)
	}

	if snap.Active != nil {
		style := tcell.StyleDefault.Foreground(kindColors[snap.Active.Kind])
		for _, c := range snap.Active.Cells {
			if c.Y < snap.Height {
				g.drawCell(c, style)
			}
		}
	}

	textX := g.layout.offsetX + snap.Width*2 + 3
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	g.drawText(textX, g.layout.offsetY, fmt.Sprintf("SCORE %d", g.score), white)
	g.drawText(textX, g.layout.offsetY+1, fmt.Sprintf("LINES %d", g.lines), white)
	g.drawText(textX, g.layout.offsetY+3, "arrows/hjkl move", white)
	g.drawText(textX, g.layout.offsetY+4, "z/x rotate, space drop", white)
	g.drawText(textX, g.layout.offsetY+5, "r restart, q quit", white)

	if snap.GameOver {
		red := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		g.drawText(g.layout.offsetX+snap.Width-4, g.layout.offsetY+snap.Height/2, "GAME OVER", red)
	}

	g.screen.Show()
}

func (g *Game) drawCell(c sim.Cell, style tcell.Style) {
	fx, fy := g.layout.CellToWorld(c)
	x, y := int(fx), int(fy)
	g.screen.SetContent(x, y, '█', nil, style)
	g.screen.SetContent(x+1, y, '█', nil, style)
}

func (g *Game) drawBorder(snap sim.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	left := g.layout.offsetX - 1
	right := g.layout.offsetX + snap.Width*2
	bottom := g.layout.offsetY + snap.Height

	for y := g.layout.offsetY; y < bottom; y++ {
		g.screen.SetContent(left, y, '│', nil, style)
		g.screen.SetContent(right, y, '│', nil, style)
	}
	for x := left; x <= right; x++ {
		g.screen.SetContent(x, bottom, '─', nil, style)
	}
	g.screen.SetContent(left, bottom, '└', nil, style)
	g.screen.SetContent(right, bottom, '┘', nil, style)
}

func (g *Game) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	lastTick := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			g.update(now.Sub(lastTick).Seconds())
			lastTick = now
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
}

func main() {
	var (
		width  = flag.Int("width", 10, "well width in cells")
		height = flag.Int("height", 22, "well height in cells")
		seed   = flag.Uint64("seed", uint64(time.Now().UnixNano()), "bag shuffle seed")
		mute   = flag.Bool("mute", false, "disable sound")
	)
	flag.Parse()

	cfg := sim.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(cfg, *seed, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
