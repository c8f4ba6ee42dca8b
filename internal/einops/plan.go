package einops

import "github.com/born-ml/einshape/internal/tensor"

// repeatStep records one output axis that must be created or widened by
// broadcasting rather than by reinterpretation.
type repeatStep struct {
	index int // position in the final output shape
	size  int // target length
}

// execPlan is the fully-decided execution strategy for one rearrange call.
type execPlan struct {
	// perm is the explicit axis permutation of the fast path. nil means the
	// generic path: the tensor keeps its original axis order and the final
	// reinterpretation absorbs any composite flattening.
	perm []int

	outShape tensor.Shape

	// repeats are recorded in ascending output index order; the executor
	// applies them in descending order so earlier indices stay stable.
	repeats []repeatStep
}

// buildPlan decides the execution strategy for an ellipsis-expanded pattern
// with fully-resolved axis bindings.
//
// The fast path applies when no composite token appears on either side and
// every output name is bound to an input position: a pure permutation then
// suffices. Any composite, or a brand-new output name, falls back to the
// generic path.
func buildPlan(p *Pattern, b *binding, axes Axes) *execPlan {
	plan := &execPlan{}

	if fastPathApplies(p, b) {
		seen := make(map[string]bool)
		var perm []int
		for _, tok := range p.Output {
			if seen[tok.Name] {
				// Duplicate output names are permuted on first occurrence only.
				continue
			}
			seen[tok.Name] = true
			perm = append(perm, b.pos[tok.Name])
		}
		if len(perm) > 1 {
			plan.perm = perm
		}
	}

	for _, tok := range p.Output {
		switch tok.Kind {
		case TokenGroup:
			size := 1
			for _, member := range tok.Members {
				size *= b.sizes[member]
			}
			plan.outShape = append(plan.outShape, size)

		case TokenName:
			length, hinted := axes[tok.Name]
			bound, isBound := b.sizes[tok.Name]
			if hinted && (!isBound || bound == 1) {
				// New-to-output axis, or a singleton being widened: the
				// executor materializes it by broadcast.
				plan.outShape = append(plan.outShape, length)
				plan.repeats = append(plan.repeats, repeatStep{index: len(plan.outShape) - 1, size: length})
			} else {
				plan.outShape = append(plan.outShape, bound)
			}
		}
	}

	return plan
}

// Repeat is one broadcast-materialized output axis in a described plan.
type Repeat struct {
	Index int // position in the output shape
	Size  int // target length
}

// PlanInfo describes how a pattern would be executed against a shape:
// the explicit permutation (if any), the final output shape, and the axes
// that must be materialized by broadcasting.
type PlanInfo struct {
	Permutation []int // nil when no explicit transpose is needed
	OutputShape tensor.Shape
	Repeats     []Repeat
}

// Plan runs the pipeline short of the executor: it validates the supplied
// lengths, parses the pattern, expands the ellipsis against the given shape,
// resolves every axis, and reports the resulting strategy without touching
// any data.
func Plan(shape tensor.Shape, pattern string, axes Axes) (*PlanInfo, error) {
	plan, err := compile(shape, pattern, axes)
	if err != nil {
		return nil, err
	}
	info := &PlanInfo{
		Permutation: plan.perm,
		OutputShape: plan.outShape.Clone(),
	}
	for _, step := range plan.repeats {
		info.Repeats = append(info.Repeats, Repeat{Index: step.index, Size: step.size})
	}
	return info, nil
}

func fastPathApplies(p *Pattern, b *binding) bool {
	for _, tok := range p.Input {
		if tok.Kind == TokenGroup {
			return false
		}
	}
	for _, tok := range p.Output {
		if tok.Kind == TokenGroup {
			return false
		}
		if _, ok := b.pos[tok.Name]; !ok {
			return false
		}
	}
	return true
}
