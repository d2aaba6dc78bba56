package scene

// Mask selects which instances a query can see. An instance participates in
// a query when the two masks share at least one bit.
type Mask uint32

const (
	// MaskCollision marks geometry solid to movement.
	MaskCollision Mask = 1 << iota
	// MaskLineOfSight marks geometry that blocks sight lines.
	MaskLineOfSight
	// MaskNavigation marks geometry considered during nav-mesh builds.
	MaskNavigation
)

// MaskAll matches every instance.
const MaskAll = MaskCollision | MaskLineOfSight | MaskNavigation

// Matches reports whether the two masks share a bit.
func (m Mask) Matches(other Mask) bool {
	return m&other != 0
}
