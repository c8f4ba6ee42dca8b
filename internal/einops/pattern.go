package einops

import "strings"

// TokenKind distinguishes the three axis token shapes a pattern side can hold.
type TokenKind int

// Axis token kinds.
const (
	// TokenName is a plain axis identifier.
	TokenName TokenKind = iota
	// TokenGroup is a parenthesized composite of identifiers addressing a
	// single physical axis.
	TokenGroup
	// TokenEllipsis is the "..." wildcard for a run of unnamed axes.
	TokenEllipsis
)

// Token is one unit of a pattern side.
type Token struct {
	Kind    TokenKind
	Name    string   // set for TokenName
	Members []string // set for TokenGroup; may be empty (size-1 axis)
}

// Pattern is a parsed rearrange pattern: the ordered axis tokens of the input
// and output sides. At most one ellipsis appears per side, and an ellipsis on
// one side implies one on the other.
type Pattern struct {
	Input  []Token
	Output []Token
}

// Parse splits a pattern on "->" and tokenizes both sides.
//
// The split happens at the first arrow; any further "->" text is absorbed
// into the output side.
func Parse(pattern string) (*Pattern, error) {
	arrow := strings.Index(pattern, "->")
	if arrow < 0 {
		return nil, errorf(MissingArrow, "pattern %q has no \"->\" separator", pattern)
	}

	input, err := scanSide(pattern[:arrow])
	if err != nil {
		return nil, err
	}
	output, err := scanSide(pattern[arrow+2:])
	if err != nil {
		return nil, err
	}

	inEllipsis := countEllipsis(input)
	outEllipsis := countEllipsis(output)
	if inEllipsis > 1 {
		return nil, errorf(MultipleEllipsisInput, "pattern %q has %d ellipsis markers on the input side", pattern, inEllipsis)
	}
	if (inEllipsis > 0) != (outEllipsis > 0) {
		return nil, errorf(EllipsisAsymmetry, "pattern %q has an ellipsis on one side only", pattern)
	}

	return &Pattern{Input: input, Output: output}, nil
}

// scanSide tokenizes one pattern side. Three token shapes are recognized, in
// priority order: a parenthesized group, the literal "...", and a maximal run
// of non-whitespace, non-paren characters.
func scanSide(s string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(s) {
		switch {
		case isSpace(s[i]):
			i++
		case s[i] == '(':
			end := strings.IndexByte(s[i:], ')')
			if end < 0 {
				return nil, errorf(MismatchedParentheses, "unclosed \"(\" in %q", strings.TrimSpace(s))
			}
			tokens = append(tokens, Token{Kind: TokenGroup, Members: strings.Fields(s[i+1 : i+end])})
			i += end + 1
		case strings.HasPrefix(s[i:], "..."):
			tokens = append(tokens, Token{Kind: TokenEllipsis})
			i += 3
		default:
			j := i
			for j < len(s) && !isSpace(s[j]) && s[j] != '(' {
				j++
			}
			tokens = append(tokens, Token{Kind: TokenName, Name: s[i:j]})
			i = j
		}
	}
	return tokens, nil
}

func countEllipsis(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if t.Kind == TokenEllipsis {
			n++
		}
	}
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
