package sim

// Kind enumerates the seven piece shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	}
	return "?"
}

// Kinds returns all piece kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// baseOffsets holds each kind's four cell offsets in rotation state 0.
var baseOffsets = [kindCount][PieceBlocks]Offset{
	KindI: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindT: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	KindS: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	KindZ: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
	KindJ: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	KindL: {{1, 1}, {-1, 0}, {0, 0}, {1, 0}},
}

// BaseOffsets returns the kind's spawn-orientation offsets.
func (k Kind) BaseOffsets() [PieceBlocks]Offset {
	return baseOffsets[k]
}

// rotateOffsets applies a 90-degree rotation about the origin to every offset:
// clockwise maps (x, y) to (y, -x), counter-clockwise maps (x, y) to (-y, x).
func rotateOffsets(offsets [PieceBlocks]Offset, clockwise bool) [PieceBlocks]Offset {
	var out [PieceBlocks]Offset
	for i, o := range offsets {
		if clockwise {
			out[i] = Offset{o.Y, -o.X}
		} else {
			out[i] = Offset{-o.Y, o.X}
		}
	}
	return out
}

// Kick tables are tried in order against a rotated shape; the first offset
// producing a valid placement wins. The I kind's elongated footprint needs the
// wider horizontal entries to rotate near walls.
var (
	genericKicks = []Offset{{0, 0}, {1, 0}, {-1, 0}, {0, 1}}
	wideKicks    = []Offset{{0, 0}, {1, 0}, {-1, 0}, {2, 0}, {-2, 0}, {0, 1}}
)

func (k Kind) kicks() []Offset {
	if k == KindI {
		return wideKicks
	}
	return genericKicks
}
