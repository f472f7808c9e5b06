package selector

import (
	"context"

	"github.com/niklasfasching/treecss/util"
)

// result is the outcome of walking the remaining tokens from one value:
// either a failure or a flat list of matched nodes / extracted scalars. A
// single match is a one item list, so an empty successful walk and a failed
// walk stay distinguishable.
type result struct {
	ok    bool
	items []any
}

var failure = result{}

func matched(items ...any) result { return result{true, items} }

// walk consumes tokens[i:] against v. v is a Node until a pseudo element
// swaps in the extracted scalar; tokens that need node capabilities fail
// from then on. Mismatches and unknown names fail only this branch.
func (q *Query) walk(ctx context.Context, v any, i int) result {
	if i >= len(q.tokens) {
		return matched(v)
	}
	t := q.tokens[i]
	util.Debugf(ctx, "walk %d %s", i, t)
	n, isNode := v.(Node)
	if !isNode {
		return failure
	}
	switch t.Kind {
	case KindClass:
		if n.Kind() != t.Name {
			return failure
		}
		return q.walk(ctx, n, i+1)
	case KindID:
		f := Navigations[t.Name]
		if f == nil {
			util.Warnf(ctx, "unknown navigation %s", t)
			return failure
		}
		next := f(n)
		if next == nil {
			return failure
		}
		return q.walk(ctx, next, i+1)
	case KindAttribute:
		v, ok := n.Prop(t.Name)
		if !ok {
			return failure
		}
		if t.Operator == "" {
			if !truthy(v) {
				return failure
			}
			return q.walk(ctx, n, i+1)
		}
		if ok, err := matchAttribute(v, t); err != nil {
			util.Warnf(ctx, "%s: %s", t, err)
			return failure
		} else if !ok {
			return failure
		}
		return q.walk(ctx, n, i+1)
	case KindCombinator:
		return q.walkCombinator(ctx, n, i, t)
	case KindPseudoClass:
		f := PseudoClasses[t.Name]
		if f == nil {
			util.Warnf(ctx, "unknown pseudo class %s", t)
			return failure
		}
		next := f(n, t.Arg)
		if next == nil {
			return failure
		}
		return q.walk(ctx, next, i+1)
	case KindPseudoElement:
		v, ok := n.Prop(t.Name)
		if !ok {
			return failure
		}
		return q.walk(ctx, v, i+1)
	default:
		util.Warnf(ctx, "unknown token kind %d", t.Kind)
		return failure
	}
}

// walkCombinator continues the walk on the node(s) the combinator selects.
// Descendant and child collect every success; zero successes fail the branch
// for both (the child combinator is deliberately consistent with descendant
// here). The sibling combinators move to a single node: + to the next named
// sibling, ~ to the previous one.
func (q *Query) walkCombinator(ctx context.Context, n Node, i int, t Token) result {
	switch t.Combinator {
	case " ":
		items := []any{}
		descendAll(n, func(d Node) bool {
			r := q.walk(ctx, d, i+1)
			if r.ok {
				items = append(items, r.items...)
			}
			return r.ok
		})
		if len(items) == 0 {
			return failure
		}
		return result{true, items}
	case ">":
		items := descendChildren(n, func(c Node) result { return q.walk(ctx, c, i+1) })
		if len(items) == 0 {
			return failure
		}
		return result{true, items}
	case "+":
		if next := n.NextNamedSibling(); next != nil {
			return q.walk(ctx, next, i+1)
		}
		return failure
	case "~":
		if prev := n.PrevNamedSibling(); prev != nil {
			return q.walk(ctx, prev, i+1)
		}
		return failure
	default:
		util.Warnf(ctx, "unknown combinator %q", t.Combinator)
		return failure
	}
}
