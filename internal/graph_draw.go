package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/relate/internal/dbg"
	"github.com/pkg/errors"
)

// Padding around the drawing so nodes on the edge of the extent stay visible
const dbgDrawPadding = 60

// Largest canvas side DrawGraph will allocate, in pixels
const maxDrawDimension = 16384

// Colors for each operand's edges: A is blue, B is orange.
var operandColors = [2][3]float64{
	{0.3, 0.5, 1},
	{1, 0.6, 0.1},
}

// Render the combined topology graph to a PNG at path. Areas are filled
// faintly, edges are stroked in their operand's color (dashed if isolated),
// and each node is a dot colored by its position in A, with its debug name
// beside it.
func (op *RelateOperation) DrawGraph(path string, scale float64) error {
	if scale <= 0 {
		return errors.Errorf("draw scale must be positive, got %v", scale)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(c Coord) {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	for _, graph := range op.graphs {
		for _, edge := range graph.Edges() {
			for _, c := range edge.Coords() {
				extend(c)
			}
		}
		for i := 0; i < graph.Nodes().Len(); i++ {
			extend(graph.Nodes().At(i).Coord())
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	scaledWidth, scaledHeight := scale*(maxX-minX), scale*(maxY-minY)
	if scaledWidth+dbgDrawPadding*2 > maxDrawDimension || scaledHeight+dbgDrawPadding*2 > maxDrawDimension {
		return errors.Errorf(
			"graph drawing would be %.0fx%.0f pixels, over the %d pixel limit; use a smaller scale",
			scaledWidth+dbgDrawPadding*2, scaledHeight+dbgDrawPadding*2, maxDrawDimension,
		)
	}
	width := int(scaledWidth) + dbgDrawPadding*2
	height := int(scaledHeight) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for geomIndex, graph := range op.graphs {
		drawAreas(c, graph, operandColors[geomIndex])
	}
	for geomIndex, graph := range op.graphs {
		drawEdges(c, graph, operandColors[geomIndex])
	}
	op.drawNodes(c, scale)

	return errors.Wrapf(c.SavePNG(path), "saving graph drawing to %s", path)
}

func drawAreas(c *gg.Context, graph *GeometryGraph, color [3]float64) {
	hasArea := false
	for _, edge := range graph.Edges() {
		if !edge.Label().IsGeomArea(graph.argIndex) {
			continue
		}
		hasArea = true
		coords := edge.Coords()
		c.MoveTo(coords[0].X, coords[0].Y)
		for _, p := range coords[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	if hasArea {
		c.SetRGBA(color[0], color[1], color[2], 0.25)
		c.Fill()
	}
}

func drawEdges(c *gg.Context, graph *GeometryGraph, color [3]float64) {
	c.SetLineWidth(2)
	for _, edge := range graph.Edges() {
		coords := edge.Coords()
		c.MoveTo(coords[0].X, coords[0].Y)
		for _, p := range coords[1:] {
			c.LineTo(p.X, p.Y)
		}
		if edge.IsIsolated() {
			c.SetDash(6, 4)
		} else {
			c.SetDash()
		}
		c.SetRGB(color[0], color[1], color[2])
		c.Stroke()
	}
	c.SetDash()
}

func (op *RelateOperation) drawNodes(c *gg.Context, scale float64) {
	radius := 4 / scale
	for i := 0; i < op.nodes.Len(); i++ {
		node := op.nodes.At(i)
		coord := node.Coord()
		c.DrawCircle(coord.X, coord.Y, radius)
		switch node.Label().OnPosition(0) {
		case Inside:
			c.SetRGB(0, 1, 0)
		case OnBoundary:
			c.SetRGB(1, 1, 0)
		case Outside:
			c.SetRGB(1, 0, 0)
		default:
			c.SetRGB(0, 1, 1)
		}
		c.Fill()

		// Text has to be drawn unflipped, so go back to device coordinates
		x, y := c.TransformPoint(coord.X, coord.Y)
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(dbg.Name(node)+" "+node.Label().String(), x+6, y-6, 0, 0)
		c.Pop()
	}
}

// Helper to draw the graph and print it to a terminal (iTerm only) for
// debugging. Pass os.Stdout to see it.
func (op *RelateOperation) dbgDraw(w io.Writer, scale float64) {
	const path = "/tmp/relategraph.png"
	if err := op.DrawGraph(path, scale); err != nil {
		Log.WithError(err).Warn("could not draw relate graph")
		return
	}
	if err := imgcat.CatFile(path, w); err != nil {
		Log.WithError(err).Warn("could not print relate graph")
	}
}
