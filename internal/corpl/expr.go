package corpl

import "github.com/Icelk/iclu/internal/bytesplit"

// activation is the tri-state verdict of an option expression.
type activation uint8

const (
	activationIgnore activation = iota
	activationYes
	activationNo
)

// exprSeparator joins the conjuncts of an option expression.
var exprSeparator = []byte(" && ")

// evalOption folds an `a && b && !c` expression into an activation.
// Identifiers with unknown status drop out, so an expression partially
// evaluates when the caller has no opinion on some of them. One
// unsatisfied conjunct decides No and stops the walk; if every
// identifier was unknown the verdict is Ignore and the segment's lines
// stay untouched.
func evalOption(expr []byte, opts *Options) activation {
	result := activationIgnore
	it := bytesplit.Split(expr, exprSeparator)
	for {
		ident, ok := it.Next()
		if !ok {
			return result
		}
		negate := len(ident) > 0 && ident[0] == '!'
		if negate {
			ident = ident[1:]
		}
		active, known := opts.status(ident)
		if !known {
			continue
		}
		if result == activationIgnore {
			result = activationYes
		}
		if (negate && active) || (!negate && !active) {
			return activationNo
		}
	}
}
