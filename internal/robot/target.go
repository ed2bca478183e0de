package robot

import (
	"fmt"

	"github.com/specialistvlad/robotbuilder/internal/dag"
)

// dependencyGraph builds the part dependency DAG from the catalogue.
func dependencyGraph() (*dag.Graph, error) {
	g := dag.New()
	for _, p := range Parts() {
		g.AddNode(p.String())
	}
	for _, p := range Parts() {
		dep, ok := p.DependsOn()
		if !ok {
			continue
		}
		if err := g.AddEdge(dep.String(), p.String()); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// BuildOrder returns the part types ordered so that each comes after the
// part it depends on.
func BuildOrder() ([]PartType, error) {
	g, err := dependencyGraph()
	if err != nil {
		return nil, err
	}
	names, err := g.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("part dependencies are unsatisfiable: %w", err)
	}

	order := make([]PartType, 0, len(names))
	for _, name := range names {
		p, err := ParsePartType(name)
		if err != nil {
			return nil, err
		}
		order = append(order, p)
	}
	return order, nil
}

// ValidateTarget checks that a robot with the given target quantities can
// be finished by the dependency rules.
func ValidateTarget(target Counts) error {
	if _, err := BuildOrder(); err != nil {
		return err
	}
	for _, p := range Parts() {
		if target[p] < 0 {
			return fmt.Errorf("quantity for %s must not be negative, got %d", p, target[p])
		}
		dep, ok := p.DependsOn()
		if ok && catalogue[p].rule == rulePaired && target[p] > target[dep] {
			return fmt.Errorf("%s quantity %d exceeds %s quantity %d; every %s needs its own %s",
				p, target[p], dep, target[dep], p, dep)
		}
	}
	return nil
}
