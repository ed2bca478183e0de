package robot

import (
	"fmt"
	"strings"
)

// PartType is one of the buildable robot component kinds.
type PartType int

const (
	Wheel PartType = iota
	Axle
	Torso
	Plunger
	Head
	Antenna
	Powercell
)

// NumParts is the number of part types, and the number of faces on the die.
const NumParts = 7

// rule selects how a part's dependency is evaluated.
type rule int

const (
	// ruleNone: no dependency.
	ruleNone rule = iota
	// rulePaired: the dependency must have more units than this part.
	rulePaired
	// ruleFull: the dependency must be at its required quantity.
	ruleFull
)

type partInfo struct {
	name      string
	maximum   int
	rule      rule
	dependsOn PartType
}

// catalogue is indexed by PartType and never mutated.
var catalogue = [NumParts]partInfo{
	Wheel:     {name: "Wheel", maximum: 3, rule: ruleNone},
	Axle:      {name: "Axle", maximum: 3, rule: rulePaired, dependsOn: Wheel},
	Torso:     {name: "Torso", maximum: 1, rule: ruleFull, dependsOn: Axle},
	Plunger:   {name: "Plunger", maximum: 1, rule: ruleFull, dependsOn: Torso},
	Head:      {name: "Head", maximum: 1, rule: ruleFull, dependsOn: Torso},
	Antenna:   {name: "Antenna", maximum: 2, rule: ruleFull, dependsOn: Head},
	Powercell: {name: "Powercell", maximum: 4, rule: ruleFull, dependsOn: Torso},
}

// Parts returns every part type in display order.
func Parts() []PartType {
	return []PartType{Wheel, Axle, Torso, Plunger, Head, Antenna, Powercell}
}

// Valid reports whether p names one of the seven part types.
func (p PartType) Valid() bool {
	return p >= 0 && p < NumParts
}

// String returns the display name of the part.
func (p PartType) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PartType(%d)", int(p))
	}
	return catalogue[p].name
}

// Index is the 1-based die face that selects this part.
func (p PartType) Index() int {
	return int(p) + 1
}

// Maximum is the quantity of this part a complete robot has.
func (p PartType) Maximum() int {
	return catalogue[p].maximum
}

// DependsOn returns the part type that gates p, if any.
func (p PartType) DependsOn() (PartType, bool) {
	info := catalogue[p]
	if info.rule == ruleNone {
		return 0, false
	}
	return info.dependsOn, true
}

// ParsePartType resolves a case-insensitive part name.
func ParsePartType(name string) (PartType, error) {
	for _, p := range Parts() {
		if strings.EqualFold(catalogue[p].name, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown part type %q", name)
}
