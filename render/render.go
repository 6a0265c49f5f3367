// Package render draws match snapshots with ebiten's vector package.
package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/pong-royale/config"
	"github.com/automoto/pong-royale/engine"
	"github.com/automoto/pong-royale/fonts"
	"github.com/automoto/pong-royale/render/fx"
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// view maps field coordinates onto the screen, letterboxing when the
// arena's field does not match the window aspect.
type view struct {
	scale float64
	offX  float64
	offY  float64
}

func newView(screen *ebiten.Image, field gamemath.Rect) view {
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	if field.W <= 0 || field.H <= 0 {
		return view{scale: 1}
	}
	scale := min(sw/field.W, sh/field.H)
	return view{
		scale: scale,
		offX:  (sw - field.W*scale) / 2,
		offY:  (sh - field.H*scale) / 2,
	}
}

func (v view) point(p gamemath.Vec2) (float32, float32) {
	return float32(v.offX + p.X*v.scale), float32(v.offY + p.Y*v.scale)
}

func (v view) fillRect(screen *ebiten.Image, r gamemath.Rect, clr color.Color) {
	x, y := v.point(gamemath.Vec2{X: r.X, Y: r.Y})
	vector.FillRect(screen, x, y, float32(r.W*v.scale), float32(r.H*v.scale), clr, false)
}

func (v view) strokeRect(screen *ebiten.Image, r gamemath.Rect, width float32, clr color.Color) {
	x, y := v.point(gamemath.Vec2{X: r.X, Y: r.Y})
	vector.StrokeRect(screen, x, y, float32(r.W*v.scale), float32(r.H*v.scale), width, clr, false)
}

func (v view) fillCircle(screen *ebiten.Image, c gamemath.Vec2, r float64, clr color.Color) {
	x, y := v.point(c)
	vector.FillCircle(screen, x, y, float32(r*v.scale), clr, true)
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// mix blends a toward b by t.
func mix(a, b color.RGBA, t float32) color.RGBA {
	t = min(max(t, 0), 1)
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// DrawMatch renders the playfield, the HUD and any overlay for the state.
func DrawMatch(screen *ebiten.Image, s engine.Snapshot, effects *fx.Effects) {
	screen.Fill(cfg.UI.Background)
	v := newView(screen, s.Field)

	drawArena(screen, v, s)
	drawFlashes(screen, v, s, effects)
	drawWalls(screen, v, s, effects)
	drawPaddles(screen, v, s, effects)
	drawOrb(screen, v, s)
	drawBall(screen, v, s)
	drawLives(screen, v, s)
	drawFever(screen, v, s)

	switch s.State {
	case tuning.MatchStateWaiting:
		drawBanner(screen, "Press Space to start", cfg.White)
	case tuning.MatchStateCountdown:
		drawCountdown(screen, s, effects)
	}
}

func drawArena(screen *ebiten.Image, v view, s engine.Snapshot) {
	v.fillRect(screen, s.Arena, cfg.UI.ArenaFloor)
	if s.Fever.Active {
		v.fillRect(screen, s.Arena, cfg.UI.FeverTint)
	}
	v.strokeRect(screen, s.Arena, 2, cfg.UI.ArenaBorder)
}

// drawFlashes washes the edge that just lost a life in its owner's color.
func drawFlashes(screen *ebiten.Image, v view, s engine.Snapshot, effects *fx.Effects) {
	depth := s.Arena.W * 0.1
	for edge := 0; edge < tuning.EdgeCount; edge++ {
		a := effects.Flash(edge)
		if a <= 0 {
			continue
		}
		r := s.Arena
		switch edge {
		case tuning.EdgeTop:
			r.H = depth
		case tuning.EdgeBottom:
			r.Y = s.Arena.Bottom() - depth
			r.H = depth
		case tuning.EdgeLeft:
			r.W = depth
		case tuning.EdgeRight:
			r.X = s.Arena.Right() - depth
			r.W = depth
		}
		v.fillRect(screen, r, fade(cfg.PlayerColors[edge], a*0.5))
	}
}

func drawWalls(screen *ebiten.Image, v view, s engine.Snapshot, effects *fx.Effects) {
	for _, w := range s.Walls {
		v.fillRect(screen, w.Bounds, fade(cfg.UI.WallColor, effects.WallAlpha(w.Edge)))
	}
}

func drawPaddles(screen *ebiten.Image, v view, s engine.Snapshot, effects *fx.Effects) {
	for _, p := range s.Paddles {
		if !p.Alive {
			continue
		}
		clr := mix(cfg.PlayerColors[p.Edge], cfg.White, effects.HitFlash(p.Edge))
		v.fillRect(screen, p.Bounds, clr)
		if cfg.Debug.ShowHitboxes {
			v.strokeRect(screen, p.Bounds, 1, cfg.White)
		}
	}
}

func drawOrb(screen *ebiten.Image, v view, s engine.Snapshot) {
	if !s.Fever.OrbActive {
		return
	}
	// One breath per second.
	pulse := float32(s.Tick%60) / 60
	if pulse > 0.5 {
		pulse = 1 - pulse
	}
	v.fillCircle(screen, s.Fever.OrbPos, s.Fever.OrbRadius, fade(cfg.UI.OrbColor, 0.6+pulse))
}

func drawBall(screen *ebiten.Image, v view, s engine.Snapshot) {
	if s.State == tuning.MatchStateWaiting {
		return
	}
	clr := cfg.UI.BallColor
	if s.Ball.Boosted {
		clr = cfg.UI.BoostedBall
	}
	if s.Ball.CoolingDown && (s.Tick/8)%2 == 0 {
		clr = fade(clr, 0.4)
	}
	v.fillCircle(screen, s.Ball.Pos, s.Ball.Radius, clr)
}

// drawLives labels every seated slot beside its edge with pips for the
// lives left.
func drawLives(screen *ebiten.Image, v view, s engine.Snapshot) {
	face := fonts.Small.Get()
	pip := float32(cfg.UI.LifePipSize)
	gap := float32(cfg.UI.LifePipSpacing)
	margin := float32(cfg.UI.HUDMargin)

	ax, ay := v.point(gamemath.Vec2{X: s.Arena.X, Y: s.Arena.Y})
	bx, by := v.point(gamemath.Vec2{X: s.Arena.Right(), Y: s.Arena.Bottom()})
	cx, cy := (ax+bx)/2, (ay+by)/2

	for edge, p := range s.Paddles {
		if !p.Active {
			continue
		}
		label := cfg.PlayerNames[edge]
		clr := cfg.PlayerColors[edge]
		if !p.Alive {
			label += " out"
			clr = cfg.UI.EliminatedTint
		}
		width := textWidth(face, label) + int(gap) + s.Lives[edge]*int(pip+gap)

		var x, y float32
		switch edge {
		case tuning.EdgeTop:
			x, y = cx-float32(width)/2, ay-margin-pip
		case tuning.EdgeBottom:
			x, y = cx-float32(width)/2, by+margin
		case tuning.EdgeLeft:
			x, y = max(ax-margin-float32(width), margin), cy
		case tuning.EdgeRight:
			x, y = bx+margin, cy
		}

		drawText(screen, label, face, int(x), int(y+pip), clr)
		px := x + float32(textWidth(face, label)) + gap
		for i := 0; i < s.Lives[edge]; i++ {
			vector.FillRect(screen, px+float32(i)*(pip+gap), y, pip, pip, clr, false)
		}
	}
}

func drawFever(screen *ebiten.Image, v view, s engine.Snapshot) {
	if !s.Fever.Active {
		return
	}
	secs := (s.Fever.Remaining + tuning.TickRate - 1) / tuning.TickRate
	msg := fmt.Sprintf("FEVER %ds", secs)
	face := fonts.Bold.Get()
	_, ay := v.point(gamemath.Vec2{X: s.Arena.X, Y: s.Arena.Y})
	x := (screen.Bounds().Dx() - textWidth(face, msg)) / 2
	drawText(screen, msg, face, x, int(ay)+int(cfg.UI.HUDFontSize)+int(cfg.UI.HUDMargin), cfg.UI.OrbColor)
}

func drawCountdown(screen *ebiten.Image, s engine.Snapshot, effects *fx.Effects) {
	msg := "GO!"
	clr := cfg.BrightYellow
	if s.Countdown > 0 {
		msg = fmt.Sprintf("%d", s.Countdown)
		clr = cfg.Orange
	}
	drawScaledCentered(screen, msg, fonts.Huge.Get(), float64(effects.CountdownScale()), clr)
}

// DrawResult dims the finished match and announces the winner with the
// running win totals underneath.
func DrawResult(screen *ebiten.Image, s engine.Snapshot, effects *fx.Effects, totals [4]int, draws int) {
	alpha := effects.ResultAlpha()
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, fade(cfg.UI.OverlayColor, alpha), false)

	title := "Draw!"
	clr := cfg.White
	if s.Winner >= 0 && s.Winner < tuning.EdgeCount {
		title = cfg.PlayerNames[s.Winner] + " wins!"
		clr = cfg.PlayerColors[s.Winner]
	}
	titleFace := fonts.Title.Get()
	drawText(screen, title, titleFace, (int(w)-textWidth(titleFace, title))/2, int(h/2)-40, fade(clr, alpha))

	face := fonts.Regular.Get()
	line := fmt.Sprintf("Wins  Top %d  Right %d  Bottom %d  Left %d  Draws %d",
		totals[0], totals[1], totals[2], totals[3], draws)
	drawText(screen, line, face, (int(w)-textWidth(face, line))/2, int(h/2)+10, fade(cfg.White, alpha))

	hint := "R restart   Esc menu"
	drawText(screen, hint, face, (int(w)-textWidth(face, hint))/2, int(h/2)+40, fade(cfg.LightBlue, alpha))
}

func drawBanner(screen *ebiten.Image, msg string, clr color.Color) {
	face := fonts.Bold.Get()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawText(screen, msg, face, (w-textWidth(face, msg))/2, h/2, clr)
}
