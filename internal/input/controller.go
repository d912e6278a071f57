package input

// Pointer is a pointer or touch sample in client space together with the
// mapping of the drawing surface it landed on.
type Pointer struct {
	ClientX, ClientY float64 // Raw client coordinate
	OriginX, OriginY float64 // Top-left of the displayed surface in client space
	ScaleX, ScaleY   float64 // Logical units per displayed unit
}

// FieldPoint translates the pointer into field space.
func (p Pointer) FieldPoint() (x, y float64) {
	sx, sy := p.ScaleX, p.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return (p.ClientX - p.OriginX) * sx, (p.ClientY - p.OriginY) * sy
}

// Controller keeps keyboard and touch state as two independent direction
// sets. Only the current pressed state matters; nothing is queued.
type Controller struct {
	keys   Intent
	touch  Intent
	fieldW float64
	fieldH float64
}

// NewController creates a controller for a field of the given size.
func NewController(fieldW, fieldH float64) *Controller {
	return &Controller{fieldW: fieldW, fieldH: fieldH}
}

// KeyDown marks a keyboard direction pressed.
func (c *Controller) KeyDown(d Direction) {
	c.keys.Set(d, true)
}

// KeyUp marks a keyboard direction released.
func (c *Controller) KeyUp(d Direction) {
	c.keys.Set(d, false)
}

// PointerDown handles the start of a touch or a pointer press.
func (c *Controller) PointerDown(p Pointer) {
	c.applyPointer(p)
}

// PointerMove handles movement of an active touch or pressed pointer.
func (c *Controller) PointerMove(p Pointer) {
	c.applyPointer(p)
}

// PointerUp clears every touch direction.
func (c *Controller) PointerUp() {
	c.touch = Intent{}
}

// applyPointer maps the pointer onto the field: the upper half steers
// up (right side) or down (left side), the lower half steers left or right.
// Only the pair belonging to the touched half is rewritten.
func (c *Controller) applyPointer(p Pointer) {
	x, y := p.FieldPoint()
	midX, midY := c.fieldW/2, c.fieldH/2

	if y < midY {
		c.touch[DirUp] = x > midX
		c.touch[DirDown] = x < midX
	} else {
		c.touch[DirLeft] = x < midX
		c.touch[DirRight] = x > midX
	}
}

// Intent returns the union of keyboard and touch directions.
func (c *Controller) Intent() Intent {
	return c.keys.Or(c.touch)
}

// Keys returns the keyboard direction set.
func (c *Controller) Keys() Intent {
	return c.keys
}

// Touch returns the touch direction set.
func (c *Controller) Touch() Intent {
	return c.touch
}

// Reset releases every direction from both sources.
func (c *Controller) Reset() {
	c.keys = Intent{}
	c.touch = Intent{}
}
