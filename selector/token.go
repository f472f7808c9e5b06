package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant of a Token.
type Kind int

const (
	KindClass Kind = iota
	KindID
	KindAttribute
	KindCombinator
	KindPseudoClass
	KindPseudoElement
)

// Token is one pre-tokenized selector segment. Turning selector text into
// tokens is the job of an external tokenizer; the engine only consumes token
// sequences and surfaces tokenizer errors unchanged.
type Token struct {
	Kind       Kind
	Name       string // class / navigation / attribute / pseudo name
	Combinator string // " ", ">", "+", "~"
	Operator   string // "", "=", "~=", "|=", "^=", "$=", "*="
	Value      string
	Case       string // attribute case flag: "", "i", "I", "s", "S"
	Arg        int    // pseudo class argument
}

func Class(name string) Token { return Token{Kind: KindClass, Name: name} }
func ID(name string) Token    { return Token{Kind: KindID, Name: name} }
func Comb(kind string) Token  { return Token{Kind: KindCombinator, Combinator: kind} }
func Element(name string) Token {
	return Token{Kind: KindPseudoElement, Name: name}
}
func Pseudo(name string, arg int) Token {
	return Token{Kind: KindPseudoClass, Name: name, Arg: arg}
}
func Attr(name, operator, value, caseFlag string) Token {
	return Token{Kind: KindAttribute, Name: name, Operator: operator, Value: value, Case: caseFlag}
}

// String renders a token sequence back to selector syntax for diagnostics.
func String(tokens []Token) string {
	s := strings.Builder{}
	for _, t := range tokens {
		s.WriteString(t.String())
	}
	return s.String()
}

func (t Token) String() string {
	switch t.Kind {
	case KindClass:
		return "." + t.Name
	case KindID:
		return "#" + t.Name
	case KindAttribute:
		switch {
		case t.Operator == "":
			return "[" + t.Name + "]"
		case t.Case != "":
			return fmt.Sprintf("[%s%s%s %s]", t.Name, t.Operator, t.Value, t.Case)
		default:
			return fmt.Sprintf("[%s%s%s]", t.Name, t.Operator, t.Value)
		}
	case KindCombinator:
		if t.Combinator == " " {
			return " "
		}
		return " " + t.Combinator + " "
	case KindPseudoClass:
		return ":" + t.Name + "(" + strconv.Itoa(t.Arg) + ")"
	case KindPseudoElement:
		return "::" + t.Name
	default:
		return fmt.Sprintf("?%d", t.Kind)
	}
}
