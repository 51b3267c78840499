package evaluator

// Kind classifies a lexed token.
type Kind int

const (
	KindNumber Kind = iota
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindLParen
	KindRParen
)

// Token is one lexical unit of a sanitised expression.
type Token struct {
	Kind Kind
	Text string
}
