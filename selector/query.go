// Package selector evaluates CSS-like selector token sequences against parsed
// syntax trees: class tokens match node kinds, attribute tokens test node
// properties, combinators and navigations move between nodes, and a trailing
// pseudo element extracts a scalar property instead of the node. Trees enter
// through the Node interface (see the treesitter and soup packages) and are
// never mutated.
package selector

import (
	"context"
	"errors"
	"fmt"

	"github.com/niklasfasching/treecss/util"
)

// Configuration errors abort the whole query before traversal; everything
// after validation is a per candidate match failure reported only through the
// context logger.
var (
	ErrNoTokens = errors.New("unparsable selector: no tokens")
	ErrNoClass  = errors.New("selector must begin with a class")
	ErrNoTree   = errors.New("invalid tree")
)

// Query is a validated, immutable token sequence. One Query may Execute
// concurrently against the same tree as long as the tree itself is safe for
// concurrent reads.
type Query struct {
	tokens []Token
}

func New(tokens []Token) (*Query, error) {
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	if t := tokens[0]; t.Kind != KindClass {
		return nil, fmt.Errorf("%w: got %s", ErrNoClass, t)
	}
	return &Query{tokens}, nil
}

func MustNew(tokens []Token) *Query {
	q, err := New(tokens)
	if err != nil {
		panic(err)
	}
	return q
}

// Execute seeds the candidate set with every node whose kind matches the
// leading class token (descendants before ancestors, left to right) and walks
// each candidate through the remaining tokens, flattening successes into one
// sequence of nodes or extracted scalars. An empty result is not an error.
func (q *Query) Execute(ctx context.Context, root Node) ([]any, error) {
	if root == nil {
		return nil, ErrNoTree
	}
	name := q.tokens[0].Name
	candidates := descendAll(root, func(n Node) bool { return n.Kind() == name })
	util.Debugf(ctx, "%s: %d candidates", String(q.tokens), len(candidates))
	out := []any{}
	for len(candidates) != 0 {
		n := candidates[0]
		candidates = candidates[1:]
		if r := q.walk(ctx, n, 1); r.ok {
			out = append(out, r.items...)
		}
	}
	return out, nil
}

// All is New followed by Execute.
func All(ctx context.Context, tokens []Token, root Node) ([]any, error) {
	q, err := New(tokens)
	if err != nil {
		return nil, err
	}
	return q.Execute(ctx, root)
}

// First returns the first match, or nil if nothing matches.
func First(ctx context.Context, tokens []Token, root Node) (any, error) {
	vs, err := All(ctx, tokens, root)
	if err != nil || len(vs) == 0 {
		return nil, err
	}
	return vs[0], nil
}
