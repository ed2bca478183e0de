package robot

import (
	"fmt"
	"strings"
)

// Counts is the number of units of each part type a robot holds, indexed by
// PartType. It is also used to express target quantities.
type Counts [NumParts]int

// Maxima returns the quantities of a complete robot.
func Maxima() Counts {
	var c Counts
	for _, p := range Parts() {
		c[p] = p.Maximum()
	}
	return c
}

// Get returns the count for p.
func (c Counts) Get(p PartType) int {
	return c[p]
}

// Add increments the count for p by one.
func (c *Counts) Add(p PartType) {
	c[p]++
}

// String renders the counts in display order, e.g.
// "{Wheel:3 Axle:3 Torso:1 Plunger:0 Head:0 Antenna:0 Powercell:0}".
func (c Counts) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range Parts() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%d", p, c[p])
	}
	sb.WriteByte('}')
	return sb.String()
}
