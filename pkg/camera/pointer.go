package camera

// Pointer measures pointer motion against the window centre. The host warps
// the pointer back to the centre after every non-zero delta, which allows
// continuous rotation without the cursor hitting the window edge.
type Pointer struct {
	width   int
	height  int
	centerX int
	centerY int
}

// NewPointer creates a pointer tracker for a window of the given size.
func NewPointer(width, height int) *Pointer {
	p := &Pointer{}
	p.Resize(width, height)
	return p
}

// Resize recomputes the reference point after the window changed size.
func (p *Pointer) Resize(width, height int) {
	p.width = width
	p.height = height
	p.centerX = width / 2
	p.centerY = height / 2
}

// Center returns the reference point in window coordinates.
func (p *Pointer) Center() (x, y int) {
	return p.centerX, p.centerY
}

// Size returns the last window size.
func (p *Pointer) Size() (width, height int) {
	return p.width, p.height
}

// Delta returns the offset of (x, y) from the centre and whether the host
// has to warp the pointer back.
func (p *Pointer) Delta(x, y int) (dx, dy int, warp bool) {
	dx = x - p.centerX
	dy = y - p.centerY
	return dx, dy, dx != 0 || dy != 0
}
