package blueprint

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/robotbuilder/internal/builder"
	"github.com/specialistvlad/robotbuilder/internal/ctxlog"
	"github.com/specialistvlad/robotbuilder/internal/robot"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Blueprint is the validated description of a complete robot.
type Blueprint struct {
	Target      robot.Counts
	SafetyLimit int
}

// Default returns the built-in blueprint.
func Default() *Blueprint {
	return &Blueprint{
		Target:      robot.Maxima(),
		SafetyLimit: builder.DefaultSafetyLimit,
	}
}

// BuilderOptions returns the builder options that apply this blueprint.
func (b *Blueprint) BuilderOptions() []builder.Option {
	return []builder.Option{
		builder.WithTarget(b.Target),
		builder.WithSafetyLimit(b.SafetyLimit),
	}
}

// fileRoot is the top-level schema of a blueprint file.
type fileRoot struct {
	SafetyLimit *int           `hcl:"safety_limit,optional"`
	Parts       []*partBlock   `hcl:"part,block"`
	Quantities  hcl.Expression `hcl:"quantities,optional"`
}

type partBlock struct {
	Name     string `hcl:"name,label"`
	Quantity int    `hcl:"quantity"`
}

// Load reads and parses the blueprint at path.
func Load(ctx context.Context, path string) (*Blueprint, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint: %w", err)
	}
	return Parse(ctx, src, path)
}

// Parse decodes blueprint source. filename is only used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Blueprint, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing blueprint.", "file", filename)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse blueprint %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode blueprint %s: %w", filename, diags)
	}

	bp := Default()
	if root.SafetyLimit != nil {
		if *root.SafetyLimit <= 0 {
			return nil, fmt.Errorf("safety_limit must be positive, got %d", *root.SafetyLimit)
		}
		bp.SafetyLimit = *root.SafetyLimit
	}

	seen := make(map[robot.PartType]bool)
	set := func(name string, qty int) error {
		part, err := robot.ParsePartType(name)
		if err != nil {
			return err
		}
		if seen[part] {
			return fmt.Errorf("quantity for %s set more than once", part)
		}
		seen[part] = true
		bp.Target[part] = qty
		return nil
	}

	for _, p := range root.Parts {
		if err := set(p.Name, p.Quantity); err != nil {
			return nil, fmt.Errorf("part %q: %w", p.Name, err)
		}
	}

	quantities, err := decodeQuantities(root.Quantities)
	if err != nil {
		return nil, err
	}
	for name, qty := range quantities {
		if err := set(name, qty); err != nil {
			return nil, fmt.Errorf("quantities.%s: %w", name, err)
		}
	}

	if err := robot.ValidateTarget(bp.Target); err != nil {
		return nil, fmt.Errorf("invalid blueprint %s: %w", filename, err)
	}

	logger.Debug("Blueprint parsed.", "target", bp.Target.String(), "safety_limit", bp.SafetyLimit)
	return bp, nil
}

// decodeQuantities turns the optional quantities attribute into a map.
func decodeQuantities(expr hcl.Expression) (map[string]int, error) {
	if !isExprDefined(expr) {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate quantities: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	val, err := convert.Convert(val, cty.Map(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("quantities must be a map of numbers: %w", err)
	}

	var out map[string]int
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return nil, fmt.Errorf("quantities must be whole numbers: %w", err)
	}
	return out, nil
}

// isExprDefined reports whether an attribute was written in the source. The
// decoder fills omitted optional expressions with zero-width placeholders.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	return rng.End.Byte > rng.Start.Byte
}
