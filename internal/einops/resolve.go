package einops

import (
	"fmt"
	"sort"
	"strings"

	"github.com/born-ml/einshape/internal/tensor"
)

// validateAxes checks that every supplied axis length names an identifier
// that appears somewhere in the pattern. The check is purely syntactic and
// runs before any shape is consulted.
func validateAxes(pattern string, axes Axes) error {
	if len(axes) == 0 {
		return nil
	}

	cleaned := strings.NewReplacer("->", " ", "(", " ", ")", " ").Replace(pattern)
	identifiers := make(map[string]bool)
	for _, name := range strings.Fields(cleaned) {
		if name != "..." {
			identifiers[name] = true
		}
	}

	var missing []string
	for name := range axes {
		if !identifiers[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errorf(UnexpectedAxesLengthsKey, "axis lengths name identifiers absent from pattern: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ellipsisName generates the synthetic axis name for the i-th wildcard axis.
// The names are deterministic and cannot collide with pattern identifiers,
// which never contain the ellipsis rune.
func ellipsisName(i int) string {
	return fmt.Sprintf("…%d", i)
}

// expandEllipsis replaces the ellipsis token on both sides with n synthetic
// named tokens, where n is the input rank minus the count of explicit input
// tokens (a composite counts as one). Without an ellipsis the pattern passes
// through unchanged.
func expandEllipsis(p *Pattern, ndim int) (*Pattern, error) {
	if countEllipsis(p.Input) == 0 {
		return p, nil
	}

	nExplicit := len(p.Input) - 1
	nEllipsis := ndim - nExplicit
	if nEllipsis < 0 {
		return nil, errorf(NotEnoughDimensions, "pattern names %d explicit input axes but tensor has rank %d", nExplicit, ndim)
	}

	synthetic := make([]Token, nEllipsis)
	for i := range synthetic {
		synthetic[i] = Token{Kind: TokenName, Name: ellipsisName(i)}
	}

	return &Pattern{
		Input:  spliceEllipsis(p.Input, synthetic),
		Output: spliceEllipsis(p.Output, synthetic),
	}, nil
}

// spliceEllipsis substitutes the synthetic tokens at the ellipsis position.
func spliceEllipsis(tokens, synthetic []Token) []Token {
	out := make([]Token, 0, len(tokens)-1+len(synthetic))
	for _, t := range tokens {
		if t.Kind == TokenEllipsis {
			out = append(out, synthetic...)
			continue
		}
		out = append(out, t)
	}
	return out
}

// binding holds the per-call resolution state: every leaf axis name mapped to
// its concrete size and to the input axis position it was bound at.
//
// When the same name occurs more than once in the input pattern, the
// last-written position wins; tests pin this behavior.
type binding struct {
	sizes map[string]int
	pos   map[string]int
}

// resolveAxes walks the ellipsis-expanded input tokens against the tensor
// shape, consuming exactly one input axis per token. Trailing input axes the
// pattern does not name are deliberately not an error.
func resolveAxes(input []Token, shape tensor.Shape, axes Axes) (*binding, error) {
	b := &binding{
		sizes: make(map[string]int),
		pos:   make(map[string]int),
	}

	for pos, tok := range input {
		if pos >= len(shape) {
			return nil, errorf(NotEnoughDimensions, "pattern names %d input axes but tensor has rank %d", len(input), len(shape))
		}
		total := shape[pos]

		switch tok.Kind {
		case TokenGroup:
			known := 1
			unknown := ""
			for _, member := range tok.Members {
				if length, ok := axes[member]; ok {
					known *= length
					b.sizes[member] = length
				} else if unknown != "" {
					return nil, errorf(MultipleUnknownDimensions, "composite group has unknown members %q and %q; at most one may be inferred", unknown, member)
				} else {
					unknown = member
				}
				b.pos[member] = pos
			}
			if unknown != "" {
				if known <= 0 || total%known != 0 {
					return nil, errorf(NonDivisibleCompositeSize, "axis of size %d is not divisible by known composite product %d", total, known)
				}
				b.sizes[unknown] = total / known
			} else if total != known {
				return nil, errorf(SizeMismatchComposite, "composite members multiply to %d but the axis has size %d", known, total)
			}

		case TokenName:
			if length, ok := axes[tok.Name]; ok {
				if total != length && total != 1 {
					return nil, errorf(DimensionSizeMismatch, "axis %q has size %d but length %d was supplied", tok.Name, total, length)
				}
				// A size-1 axis keeps its size so the planner can widen it
				// with a broadcast repeat.
				b.sizes[tok.Name] = total
			} else {
				b.sizes[tok.Name] = total
			}
			b.pos[tok.Name] = pos
		}
	}

	return b, nil
}
