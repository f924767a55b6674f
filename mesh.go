package splash

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// surfaceMesh is the renderable water body: two vertex rows per sample.
// Row 0 is the bottom edge at local y = -Height, row 1 is the surface whose
// y follows the wave heights. Local x spans -Width/2 .. +Width/2.
type surfaceMesh struct {
	cols      int
	height    float64
	width     float64
	vertices  []ebiten.Vertex
	indices   []uint16
	imgW      float64
	imgH      float64
	aabb      Rect
	aabbDirty bool
}

// build lays out cols*2 vertices and (cols-1)*6 indices, reusing buffers.
func (m *surfaceMesh) build(cols int, width, height float64) {
	m.cols = cols
	m.width = width
	m.height = height

	numVerts := cols * 2
	numInds := (cols - 1) * 6

	// Grow vertex/index slices to high-water mark.
	if cap(m.vertices) < numVerts {
		m.vertices = make([]ebiten.Vertex, numVerts)
	}
	m.vertices = m.vertices[:numVerts]
	if cap(m.indices) < numInds {
		m.indices = make([]uint16, numInds)
	}
	m.indices = m.indices[:numInds]

	for row := 0; row < 2; row++ {
		y := -height
		if row == 1 {
			y = 0
		}
		for c := 0; c < cols; c++ {
			x := float64(c)/float64(cols-1)*width - width/2
			m.vertices[row*cols+c] = ebiten.Vertex{
				DstX: float32(x), DstY: float32(y),
				ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
			}
		}
	}
	m.mapUVs()

	// Two triangles per column gap.
	ii := 0
	for c := 0; c < cols-1; c++ {
		bl := uint16(c)
		br := bl + 1
		tl := uint16(cols + c)
		tr := tl + 1
		m.indices[ii+0] = bl
		m.indices[ii+1] = tl
		m.indices[ii+2] = br
		m.indices[ii+3] = br
		m.indices[ii+4] = tl
		m.indices[ii+5] = tr
		ii += 6
	}
	m.aabbDirty = true
}

// setImageSize remaps UVs onto a texture of the given size.
func (m *surfaceMesh) setImageSize(w, h float64) {
	m.imgW, m.imgH = w, h
	m.mapUVs()
}

// mapUVs maps the rest layout onto the texture: left..right across the image
// width, surface row to the top edge and bottom row to the bottom edge.
func (m *surfaceMesh) mapUVs() {
	if m.cols < 2 {
		return
	}
	if m.imgW == 0 || m.imgH == 0 {
		// Untextured: map to center of white pixel (0.5, 0.5)
		for i := range m.vertices {
			m.vertices[i].SrcX = 0.5
			m.vertices[i].SrcY = 0.5
		}
		return
	}
	for row := 0; row < 2; row++ {
		v := float32(m.imgH)
		if row == 1 {
			v = 0
		}
		for c := 0; c < m.cols; c++ {
			vt := &m.vertices[row*m.cols+c]
			vt.SrcX = float32(float64(c) / float64(m.cols-1) * m.imgW)
			vt.SrcY = v
		}
	}
}

// surfaceIndex returns the vertex index of sample i on the surface row.
func (m *surfaceMesh) surfaceIndex(i int) int {
	return m.cols + i
}

// writeHeights copies the wave heights into the surface row.
func (m *surfaceMesh) writeHeights(heights []float64) {
	for i, h := range heights {
		m.vertices[m.surfaceIndex(i)].DstY = float32(h)
	}
	m.aabbDirty = true
}

// localAABB returns the cached local-space AABB, recomputing it if dirty.
func (m *surfaceMesh) localAABB() Rect {
	if m.aabbDirty {
		m.aabb = computeMeshAABB(m.vertices)
		m.aabbDirty = false
	}
	return m.aabb
}

// transformVertices applies an affine transform and color tint to src vertices,
// writing the result into dst. dst must be at least len(src) in length.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
//
// Color components are multiplied (vertex color * tint) and premultiplied by
// the tint alpha.
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// computeMeshAABB scans DstX/DstY of the given vertices and returns
// the axis-aligned bounding box.
func computeMeshAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// transformRect transforms the four corners of r and returns their AABB.
func transformRect(r Rect, wt [6]float64) Rect {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height

	cx0 := wt[0]*x0 + wt[2]*y0 + wt[4]
	cy0 := wt[1]*x0 + wt[3]*y0 + wt[5]
	cx1 := wt[0]*x1 + wt[2]*y0 + wt[4]
	cy1 := wt[1]*x1 + wt[3]*y0 + wt[5]
	cx2 := wt[0]*x1 + wt[2]*y1 + wt[4]
	cy2 := wt[1]*x1 + wt[3]*y1 + wt[5]
	cx3 := wt[0]*x0 + wt[2]*y1 + wt[4]
	cy3 := wt[1]*x0 + wt[3]*y1 + wt[5]

	minX := math.Min(math.Min(cx0, cx1), math.Min(cx2, cx3))
	minY := math.Min(math.Min(cy0, cy1), math.Min(cy2, cy3))
	maxX := math.Max(math.Max(cx0, cx1), math.Max(cx2, cx3))
	maxY := math.Max(math.Max(cy0, cy1), math.Max(cy2, cy3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// --- White pixel singleton (no sync.Once, the simulation is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used by untextured bodies.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
