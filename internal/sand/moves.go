package sand

// MoveGroup is a set of offsets tried together. Paired groups are tried in
// an order that flips every frame.
type MoveGroup uint8

const (
	MoveDown MoveGroup = iota
	MoveDownDiagonal
	MoveSide
	MoveUp
	MoveUpDiagonal
)

type offset struct{ dx, dy int }

var moveOffsets = [...][]offset{
	MoveDown:         {{0, 1}},
	MoveDownDiagonal: {{-1, 1}, {1, 1}},
	MoveSide:         {{-1, 0}, {1, 0}},
	MoveUp:           {{0, -1}},
	MoveUpDiagonal:   {{-1, -1}, {1, -1}},
}

// offsetAt returns the i-th offset of the group in the order selected by
// the alternation bit.
func (g MoveGroup) offsetAt(i int, direction bool) offset {
	offs := moveOffsets[g]
	if !direction {
		i = len(offs) - 1 - i
	}
	return offs[i]
}

// Len returns the number of offsets in the group.
func (g MoveGroup) Len() int { return len(moveOffsets[g]) }

// MovesFor derives the ordered move list of a material. Liquids with the
// destroy ability may also rise as a last resort when liquidRise is set.
func MovesFor(m Material, liquidRise bool) []MoveGroup {
	switch m.Mobility {
	case Grain:
		return []MoveGroup{MoveDown, MoveDownDiagonal}
	case Liquid:
		moves := []MoveGroup{MoveDown, MoveDownDiagonal, MoveSide}
		if liquidRise && m.Destroys() {
			moves = append(moves, MoveUp)
		}
		return moves
	case Gas:
		return []MoveGroup{MoveUp, MoveUpDiagonal, MoveSide}
	default:
		return nil
	}
}
