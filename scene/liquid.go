package scene

// LiquidType classifies a liquid surface.
type LiquidType byte

const (
	LiquidNone LiquidType = iota
	LiquidWater
	LiquidOcean
	LiquidMagma
	LiquidSlime
)

// String returns a printable name for the liquid type.
func (lt LiquidType) String() string {
	switch lt {
	case LiquidNone:
		return "none"
	case LiquidWater:
		return "water"
	case LiquidOcean:
		return "ocean"
	case LiquidMagma:
		return "magma"
	case LiquidSlime:
		return "slime"
	default:
		return "unknown"
	}
}

// Liquid describes the liquid column at a point: the surface height in
// storage space and what kind of liquid it is.
type Liquid struct {
	Level float64
	Type  LiquidType
}
