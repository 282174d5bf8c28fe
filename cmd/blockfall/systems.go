package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/ooftn/ecs"

	"github.com/plus3/blockfall/sim"
)

const cellSize = 30

// boardLayout maps simulation cells to screen pixels. Simulation rows grow
// upward from the floor, so the vertical axis flips here and nowhere else.
type boardLayout struct {
	offsetX, offsetY float64
	height           int
}

var _ sim.CoordinateMapper = boardLayout{}

func (l boardLayout) CellToWorld(c sim.Cell) (float64, float64) {
	x := l.offsetX + float64(c.X*cellSize)
	y := l.offsetY + float64((l.height-1-c.Y)*cellSize)
	return x, y
}

var layout boardLayout

var kindColors = map[sim.Kind]rl.Color{
	sim.KindI: rl.SkyBlue,
	sim.KindO: rl.Gold,
	sim.KindT: rl.Violet,
	sim.KindS: rl.Lime,
	sim.KindZ: rl.Pink,
	sim.KindJ: rl.Blue,
	sim.KindL: rl.Orange,
}

type InputSystem struct {
	Session ecs.Singleton[Session]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session == nil {
		return
	}
	engine := session.Engine

	if rl.IsKeyPressed(rl.KeyR) {
		engine.Reset()
		session.Score = 0
		session.Lines = 0
		clear(session.Colors)
		return
	}
	if engine.Over() {
		return
	}

	held := []struct {
		key    int32
		action sim.Action
	}{
		{rl.KeyLeft, sim.ActionLeft},
		{rl.KeyRight, sim.ActionRight},
		{rl.KeyDown, sim.ActionSoftDrop},
	}
	for _, h := range held {
		if rl.IsKeyPressed(h.key) {
			engine.KeyDown(h.action)
			if h.action != sim.ActionSoftDrop {
				session.Sounds.Move()
			}
		}
		if rl.IsKeyReleased(h.key) {
			engine.KeyUp(h.action)
		}
	}

	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyZ) {
		engine.Tap(sim.ActionRotateCW)
		session.Sounds.Rotate()
	}
	if rl.IsKeyPressed(rl.KeyX) {
		engine.Tap(sim.ActionRotateCCW)
		session.Sounds.Rotate()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		engine.Tap(sim.ActionHardDrop)
		session.Sounds.Lock()
	}
}

type SimulationSystem struct {
	Session ecs.Singleton[Session]
}

func (s *SimulationSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session == nil {
		return
	}

	session.Engine.Tick(frame.DeltaTime)
	snap := session.Engine.Snapshot()

	if snap.Active != nil {
		color := kindColors[snap.Active.Kind]
		for _, id := range snap.Active.Blocks {
			session.Colors[id] = color
		}
	}
	if len(session.Colors) > 4*(len(snap.Blocks)+sim.PieceBlocks) {
		pruneColors(session.Colors, snap)
	}

	cleared, over := session.Events.drain()
	for _, rows := range cleared {
		points := sim.ScoreForRows(rows)
		session.Score += points
		session.Lines += rows
		session.Sounds.RowsCleared(rows)

		px, py := layout.CellToWorld(sim.Cell{X: snap.Width / 2, Y: snap.Height / 2})
		frame.Commands.Spawn(Popup{
			Text: fmt.Sprintf("+%d", points),
			X:    px,
			Y:    py,
		})
	}
	if over {
		session.Sounds.GameOver()
	}
}

// pruneColors drops color entries whose block identities are no longer on the
// board; identities get recycled, so stale entries would repaint new blocks.
func pruneColors(colors map[sim.BlockID]rl.Color, snap sim.Snapshot) {
	live := make(map[sim.BlockID]bool, len(snap.Blocks)+sim.PieceBlocks)
	for _, p := range snap.Blocks {
		live[p.Block] = true
	}
	if snap.Active != nil {
		for _, id := range snap.Active.Blocks {
			live[id] = true
		}
	}
	for id := range colors {
		if !live[id] {
			delete(colors, id)
		}
	}
}

type PopupSystem struct {
	Popups ecs.Query[struct {
		ecs.EntityId
		*Popup
	}]
}

func (s *PopupSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Popups.Iter() {
		entity.Popup.Age += frame.DeltaTime
		entity.Popup.Y -= 30 * frame.DeltaTime
		if entity.Popup.Age > 1.2 {
			frame.Commands.Delete(entity.EntityId)
		}
	}
}

type RenderSystem struct {
	Session ecs.Singleton[Session]
	Popups  ecs.Query[struct {
		*Popup
	}]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session == nil {
		return
	}
	snap := session.Engine.Snapshot()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangleLines(int32(layout.offsetX)-2, int32(layout.offsetY)-2,
		int32(snap.Width*cellSize)+4, int32(snap.Height*cellSize)+4, rl.Gray)

	clearing := make(map[int]bool, len(snap.Clearing))
	for _, y := range snap.Clearing {
		clearing[y] = true
	}

	for _, p := range snap.Blocks {
		color, ok := session.Colors[p.Block]
		if !ok {
			color = rl.Gray
		}
		if clearing[p.Cell.Y] {
			color = rl.White
		}
		drawCell(p.Cell, color)
	}

	if snap.Active != nil {
		drawGhost(snap)
		color := kindColors[snap.Active.Kind]
		for _, c := range snap.Active.Cells {
			if c.Y < snap.Height {
				drawCell(c, color)
			}
		}
	}

	for entity := range s.Popups.Iter() {
		alpha := uint8(255 * (1.2 - entity.Popup.Age) / 1.2)
		rl.DrawText(entity.Popup.Text, int32(entity.Popup.X), int32(entity.Popup.Y), 24,
			rl.NewColor(255, 255, 255, alpha))
	}

	textX := int32(layout.offsetX) + int32(snap.Width*cellSize) + 20
	textY := int32(layout.offsetY)
	rl.DrawText("SCORE", textX, textY, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", session.Score), textX, textY+25, 20, rl.White)
	rl.DrawText("LINES", textX, textY+60, 20, rl.White)
	rl.DrawText(fmt.Sprintf("%d", session.Lines), textX, textY+85, 20, rl.White)

	if snap.GameOver {
		midY := int32(layout.offsetY) + int32(snap.Height*cellSize/2)
		rl.DrawText("GAME OVER", int32(layout.offsetX)+20, midY-10, 30, rl.Red)
		rl.DrawText("Press R to restart", int32(layout.offsetX)+10, midY+30, 20, rl.White)
	}

	rl.EndDrawing()
}

func drawCell(c sim.Cell, color rl.Color) {
	x, y := layout.CellToWorld(c)
	rl.DrawRectangle(int32(x), int32(y), cellSize, cellSize, color)
	rl.DrawRectangleLines(int32(x), int32(y), cellSize, cellSize, rl.Black)
}

// drawGhost projects the active piece straight down onto the stack.
func drawGhost(snap sim.Snapshot) {
	occupied := make(map[sim.Cell]bool, len(snap.Blocks))
	for _, p := range snap.Blocks {
		occupied[p.Cell] = true
	}

	drop := 0
	for {
		blocked := false
		for _, c := range snap.Active.Cells {
			below := sim.Cell{X: c.X, Y: c.Y - drop - 1}
			if below.Y < 0 || (below.Y < snap.Height && occupied[below]) {
				blocked = true
				break
			}
		}
		if blocked {
			break
		}
		drop++
	}

	ghost := rl.NewColor(255, 255, 255, 80)
	for _, c := range snap.Active.Cells {
		g := sim.Cell{X: c.X, Y: c.Y - drop}
		if g.Y < snap.Height {
			x, y := layout.CellToWorld(g)
			rl.DrawRectangle(int32(x), int32(y), cellSize, cellSize, ghost)
		}
	}
}
