package sand

import (
	"errors"
	"fmt"
)

// MaterialID indexes the material table. Zero is the empty void.
type MaterialID uint8

// Void is the reserved id for an empty cell.
const Void MaterialID = 0

// Default material ids.
const (
	Sand MaterialID = iota + 1
	Stone
	Water
	Acid
	Steam
)

// Mobility selects the movement policy applied to a material.
type Mobility uint8

const (
	Solid Mobility = iota
	Grain
	Liquid
	Gas
)

func (m Mobility) String() string {
	switch m {
	case Solid:
		return "solid"
	case Grain:
		return "grain"
	case Liquid:
		return "liquid"
	case Gas:
		return "gas"
	default:
		return fmt.Sprintf("mobility(%d)", uint8(m))
	}
}

// Ability is an optional interaction a material performs when it displaces
// a lighter neighbour.
type Ability uint8

const (
	AbilityNone Ability = iota
	AbilityDestroy
)

// Material describes an immutable substance. The base colour is expressed
// in HSLuv coordinates so shades can be jittered perceptually.
type Material struct {
	ID       MaterialID
	Name     string
	Key      rune
	Density  int
	Mobility Mobility
	Ability  Ability

	Hue        float64
	Saturation float64
	Lightness  float64
}

// Destroys reports whether the material annihilates what it displaces.
func (m Material) Destroys() bool { return m.Ability == AbilityDestroy }

// ErrInvalidTable is returned when a material table fails validation.
var ErrInvalidTable = errors.New("invalid material table")

// Table is a dense registry of materials indexed by id.
type Table struct {
	materials []Material
	byName    map[string]MaterialID
}

// DefaultMaterials returns the stock material set.
func DefaultMaterials() []Material {
	return []Material{
		{ID: Void, Name: "void", Key: '0', Mobility: Solid},
		{ID: Sand, Name: "sand", Key: '1', Density: 4, Mobility: Grain, Hue: 72, Saturation: 55, Lightness: 73},
		{ID: Stone, Name: "stone", Key: '2', Density: 6, Mobility: Solid, Hue: 0, Saturation: 0, Lightness: 46},
		{ID: Water, Name: "water", Key: '3', Density: 2, Mobility: Liquid, Hue: 240, Saturation: 85, Lightness: 64},
		{ID: Acid, Name: "acid", Key: '4', Density: 9, Mobility: Liquid, Ability: AbilityDestroy, Hue: 127, Saturation: 100, Lightness: 88},
		{ID: Steam, Name: "steam", Key: '5', Density: 0, Mobility: Gas, Hue: 0, Saturation: 0, Lightness: 88},
	}
}

// DefaultTable returns the validated stock table.
func DefaultTable() *Table {
	t, err := NewTable(DefaultMaterials()...)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable validates defs and builds a table. Entry 0 must be a zero-density
// solid void, ids must be dense and match their position, names unique.
func NewTable(defs ...Material) (*Table, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no materials", ErrInvalidTable)
	}
	if len(defs) > 256 {
		return nil, fmt.Errorf("%w: %d materials exceed id space", ErrInvalidTable, len(defs))
	}
	void := defs[0]
	if void.ID != Void || void.Density != 0 || void.Mobility != Solid || void.Ability != AbilityNone {
		return nil, fmt.Errorf("%w: entry 0 must be an inert zero-density void", ErrInvalidTable)
	}
	t := &Table{
		materials: make([]Material, len(defs)),
		byName:    make(map[string]MaterialID, len(defs)),
	}
	for i, def := range defs {
		if int(def.ID) != i {
			return nil, fmt.Errorf("%w: material %q has id %d at index %d", ErrInvalidTable, def.Name, def.ID, i)
		}
		if def.Name == "" {
			return nil, fmt.Errorf("%w: material %d has no name", ErrInvalidTable, i)
		}
		if _, dup := t.byName[def.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate material name %q", ErrInvalidTable, def.Name)
		}
		if def.Density < 0 {
			return nil, fmt.Errorf("%w: material %q has negative density", ErrInvalidTable, def.Name)
		}
		if def.Mobility > Gas {
			return nil, fmt.Errorf("%w: material %q has unknown mobility %d", ErrInvalidTable, def.Name, def.Mobility)
		}
		t.materials[i] = def
		t.byName[def.Name] = def.ID
	}
	return t, nil
}

// Len returns the number of materials including void.
func (t *Table) Len() int { return len(t.materials) }

// Valid reports whether id names a material in the table.
func (t *Table) Valid(id MaterialID) bool { return int(id) < len(t.materials) }

// Lookup returns the material for id.
func (t *Table) Lookup(id MaterialID) (Material, bool) {
	if !t.Valid(id) {
		return Material{}, false
	}
	return t.materials[id], true
}

// Density returns the density of id, or 0 for unknown ids.
func (t *Table) Density(id MaterialID) int {
	if !t.Valid(id) {
		return 0
	}
	return t.materials[id].Density
}

// ByName finds a material by name.
func (t *Table) ByName(name string) (Material, bool) {
	id, ok := t.byName[name]
	if !ok {
		return Material{}, false
	}
	return t.materials[id], true
}

// ByKey finds the material bound to a keyboard rune.
func (t *Table) ByKey(key rune) (Material, bool) {
	for _, m := range t.materials {
		if m.Key != 0 && m.Key == key {
			return m, true
		}
	}
	return Material{}, false
}

// All returns a copy of the table entries in id order.
func (t *Table) All() []Material {
	out := make([]Material, len(t.materials))
	copy(out, t.materials)
	return out
}
