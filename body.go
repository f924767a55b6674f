package splash

import "github.com/hajimehoshi/ebiten/v2"

// Body is a renderable water body: a WaveField, the mesh it deforms, and
// its placement in world space.
type Body struct {
	Name string

	// X, Y place the surface midpoint at rest in Y-up world space.
	X, Y float64
	// Tint multiplies the texture (or white, when Image is nil).
	Tint Color
	Blend BlendMode

	image      *ebiten.Image
	field      WaveField
	mesh       surfaceMesh
	drawVerts  []ebiten.Vertex
	dirty      bool
	splashes   int
	lastImpact Impact
}

// NewBody creates a water body at rest at the world origin.
func NewBody(name string, cfg Config) (*Body, error) {
	b := &Body{Name: name, Tint: ColorWhite}
	if err := b.Regenerate(cfg); err != nil {
		return nil, err
	}
	return b, nil
}

// Regenerate rebuilds the field and the mesh from cfg. On error the body is
// left unchanged.
func (b *Body) Regenerate(cfg Config) error {
	if err := b.field.Regenerate(cfg); err != nil {
		return err
	}
	b.mesh.build(cfg.SampleCount, cfg.Width, cfg.Height)
	if b.image != nil {
		bounds := b.image.Bounds()
		b.mesh.setImageSize(float64(bounds.Dx()), float64(bounds.Dy()))
	}
	b.MarkDirty()
	return nil
}

// Field returns the body's wave field.
func (b *Body) Field() *WaveField { return &b.field }

// Config returns the config the body was last built with.
func (b *Body) Config() Config { return b.field.config }

// Image returns the texture, or nil for an untextured body.
func (b *Body) Image() *ebiten.Image { return b.image }

// SetImage sets the texture and remaps UVs onto its bounds. nil draws the
// body as a solid Tint.
func (b *Body) SetImage(img *ebiten.Image) {
	b.image = img
	if img == nil {
		b.mesh.setImageSize(0, 0)
		return
	}
	bounds := img.Bounds()
	b.mesh.setImageSize(float64(bounds.Dx()), float64(bounds.Dy()))
}

// MarkDirty flags that X or Y changed so the field origin is resynced
// before the next impulse or step.
func (b *Body) MarkDirty() {
	b.dirty = true
}

func (b *Body) syncOrigin() {
	if !b.dirty {
		return
	}
	b.field.Origin = Vec2{b.X, b.Y}
	b.dirty = false
}

// Update advances the water by one fixed tick and rewrites the surface row
// of the mesh from the new heights.
func (b *Body) Update(dt float64) {
	b.syncOrigin()
	b.field.Step(dt)
	b.mesh.writeHeights(b.field.Heights())
}

// Impulse overwrites the velocity of every surface point within radius of
// the world-space center. See WaveField.InjectImpulse.
func (b *Body) Impulse(center Vec2, radius, force float64) {
	if b.field.config.SampleCount == 0 {
		return
	}
	b.MarkDirty()
	b.syncOrigin()
	b.field.InjectImpulse(center, radius, force)
}

// Splash converts an impact into one impulse: radius is the object's
// half-width times CollisionRadiusMultiplier and force is the vertical speed
// converted by ImpactForce.
func (b *Body) Splash(im Impact) {
	cfg := b.field.config
	force := ImpactForce(im.VerticalSpeed, cfg.ForceMultiplier, cfg.MaxForce)
	b.Impulse(im.Center, im.Radius(cfg.CollisionRadiusMultiplier), force)
	b.splashes++
	b.lastImpact = im
}

// Splashes returns how many impacts the body has received.
func (b *Body) Splashes() int { return b.splashes }

// LastImpact returns the most recent impact passed to Splash.
func (b *Body) LastImpact() Impact { return b.lastImpact }

// Surface returns the world-space endpoints of the resting surface, the
// segment an edge trigger sits on.
func (b *Body) Surface() (left, right Vec2) {
	hw := b.field.config.Width / 2
	return Vec2{b.X - hw, b.Y}, Vec2{b.X + hw, b.Y}
}

// Bounds returns the world-space AABB of the mesh including the current
// wave heights.
func (b *Body) Bounds() Rect {
	return transformRect(b.mesh.localAABB(), translateTransform(b.X, b.Y))
}

// Vertices returns the local-space mesh vertices. The returned slice MUST
// NOT be mutated.
func (b *Body) Vertices() []ebiten.Vertex { return b.mesh.vertices }

// Indices returns the mesh triangle indices. The returned slice MUST NOT be
// mutated.
func (b *Body) Indices() []uint16 { return b.mesh.indices }

// drawVertices transforms the mesh into the target space given by geom and
// returns the reused buffer.
func (b *Body) drawVertices(geom ebiten.GeoM) []ebiten.Vertex {
	need := len(b.mesh.vertices)
	if cap(b.drawVerts) < need {
		b.drawVerts = make([]ebiten.Vertex, need)
	}
	b.drawVerts = b.drawVerts[:need]
	transform := multiplyAffine(geomTransform(geom), translateTransform(b.X, b.Y))
	transformVertices(b.mesh.vertices, b.drawVerts, transform, b.Tint)
	return b.drawVerts
}

// Draw renders the body onto dst. geom maps world space to dst pixels; see
// ScreenGeoM.
func (b *Body) Draw(dst *ebiten.Image, geom ebiten.GeoM) {
	if len(b.mesh.indices) == 0 {
		return
	}
	img := b.image
	if img == nil {
		img = ensureWhitePixel()
	}
	verts := b.drawVertices(geom)

	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = b.Blend.EbitenBlend()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(verts, b.mesh.indices, img, &triOp)
}
