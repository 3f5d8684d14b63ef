package main

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/lixenwraith/cellpaint/brush"
	"github.com/lixenwraith/cellpaint/engine"
	"github.com/lixenwraith/cellpaint/palette"
	"github.com/lixenwraith/cellpaint/render"
	"github.com/lixenwraith/cellpaint/scene"
	"github.com/lixenwraith/cellpaint/vmath"
)

// Terminal cells are roughly twice as tall as wide
const cellAspect = 0.5

type demoFunc func(bg palette.Color) (engine.Hooks, error)

var demos = map[string]demoFunc{
	"cube":   cubeDemo,
	"shapes": shapesDemo,
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupDemo(name string, bg palette.Color) (engine.Hooks, error) {
	fn, ok := demos[name]
	if !ok {
		return engine.Hooks{}, fmt.Errorf("unknown demo %q (have %s)", name, strings.Join(demoNames(), ", "))
	}
	return fn(bg)
}

// spinner rotates a renderable about two axes and draws the scene with a
// frame counter
type spinner struct {
	scene   *scene.Scene
	meshes  []*scene.Mesh
	base    []vmath.Mat4
	counter *render.SevenSegment
	title   string
	bg      palette.Color
	angle   float64
	frames  int64
}

func newSpinner(title string, bg palette.Color, meshes ...*scene.Mesh) *spinner {
	cam := scene.NewCamera(math.Pi/3, 0.1, 100)
	cam.SetCellAspect(cellAspect)
	s := &spinner{
		scene:   scene.New(cam),
		meshes:  meshes,
		counter: render.NewSevenSegment(render.Pt(0, 0), 4, 0),
		title:   title,
		bg:      bg,
	}
	for _, m := range meshes {
		s.base = append(s.base, m.Model)
		s.scene.Add(m)
	}
	s.counter.Fore = brush.Solid(palette.DarkGray)
	return s
}

func (s *spinner) frame(back *render.Buffer) error {
	s.angle += 0.04
	rot := vmath.QuatRotation(vmath.Up, s.angle).Mul(vmath.QuatRotation(vmath.Right, s.angle*0.6)).Mat4()
	for i, m := range s.meshes {
		m.Model = s.base[i].Mul(rot).Mul(vmath.Translation(0, 0, -4))
	}

	back.Clear(s.bg)
	s.scene.Render(back)

	s.frames++
	s.counter.SetValue(s.frames % 10000)
	s.counter.Location = render.Pt(back.Width()-1, back.Height()-8)
	s.counter.Draw(back, render.AlignRight)
	back.DrawString(1, 0, s.title, brush.Solid(palette.White), render.AlignLeft)
	return nil
}

func cubeDemo(bg palette.Color) (engine.Hooks, error) {
	solid := scene.NewCube(palette.DarkCyan, true)
	wire := scene.NewCube(palette.Yellow, false)
	wire.Model = vmath.Scaling(1.3, 1.3, 1.3)
	s := newSpinner("cube", bg, solid, wire)
	return engine.Hooks{Frame: s.frame}, nil
}

func meshDemo(m *scene.Mesh, title string, bg palette.Color) engine.Hooks {
	m.Model = m.Normalize()
	s := newSpinner(title, bg, m)
	return engine.Hooks{Frame: s.frame}
}

// shapesDemo composites a static primitive layer under a moving ball
func shapesDemo(bg palette.Color) (engine.Hooks, error) {
	stripes, err := brush.HStripe(2, palette.DarkBlue, palette.Blue)
	if err != nil {
		return engine.Hooks{}, err
	}
	sparkle, err := brush.Random(palette.Yellow, palette.White, palette.DarkYellow)
	if err != nil {
		return engine.Hooks{}, err
	}
	ball := brush.Checkered(palette.Red, palette.DarkRed)

	var layer *render.Buffer
	var t float64
	hooks := engine.Hooks{
		Setup: func(back *render.Buffer) error {
			w, h := back.Width(), back.Height()
			layer = render.NewBuffer(w, h)
			layer.Clear(bg)

			layer.DrawBoxBorder(1, 1, w/3, h/2, 1, brush.Solid(palette.Gray), stripes)
			layer.DrawRing(w/2, h/4+1, min(w, h)/5, 2, brush.Solid(palette.Green), brush.Solid(palette.DarkGreen))
			layer.FillTriangle(render.Pt(w-2, 2), render.Pt(w-2, h/2), render.Pt(w*2/3, h/2), brush.Solid(palette.Magenta))
			layer.DrawTriangle(render.Pt(w-2, 2), render.Pt(w-2, h/2), render.Pt(w*2/3, h/2), brush.Solid(palette.White))

			// Outline a region on the lower half and flood it
			y0 := h/2 + 2
			layer.DrawLine(2, y0, w-3, y0, brush.Solid(palette.Cyan))
			layer.DrawLine(w-3, y0, w/2, h-2, brush.Solid(palette.Cyan))
			layer.DrawLine(w/2, h-2, 2, y0, brush.Solid(palette.Cyan))
			layer.FloodFill(w/2, y0+2, brush.Solid(palette.DarkMagenta))

			layer.DrawString(w-2, h-1, "q quits", brush.Solid(palette.Gray), render.AlignRight)
			return nil
		},
		Frame: func(back *render.Buffer) error {
			w, h := back.Width(), back.Height()
			t += 0.05
			back.DrawBuffer(layer, 0, 0, render.DrawOver)

			cx := int(float64(w)/2 + math.Cos(t)*float64(w)/3)
			cy := int(float64(h)/2 + math.Sin(t*1.3)*float64(h)/3)
			back.DrawCircle(cx, cy, max(2, h/8), ball)
			for i := 0; i < 3; i++ {
				back.SetBg(cx-1+i, cy, sparkle.ColorAt(0, 0))
			}
			back.DrawString(1, 0, "shapes", brush.Solid(palette.White), render.AlignLeft)
			return nil
		},
	}
	return hooks, nil
}
