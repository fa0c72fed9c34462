package arith

import (
	"math/rand"
	"testing"

	"github.com/expr-lang/expr"
)

// randTree builds a random expression tree over '+', '-', and '*' with
// small non-negative literals. Division is excluded so the tree is also
// valid input for the cross-check oracle, whose '/' promotes to float.
func randTree(r *rand.Rand, depth int) Expr {
	if depth == 0 || r.Intn(3) == 0 {
		return Literal(r.Intn(100))
	}

	ops := [...]Op{OpAdd, OpSub, OpMul}

	return Binary{
		Op:    ops[r.Intn(len(ops))],
		Left:  randTree(r, depth-1),
		Right: randTree(r, depth-1),
	}
}

func TestParse_RandomTreeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		tree := randTree(r, 4)
		source := tree.String()

		parsed, err := Parse(source)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", source, err)
		}

		if parsed.Eval() != tree.Eval() {
			t.Fatalf("Parse(%q).Eval() = %d, want %d",
				source, parsed.Eval(), tree.Eval())
		}

		if parsed.String() != source {
			t.Fatalf("Parse(%q).String() = %q, want identical rendering",
				source, parsed.String())
		}
	}
}

func TestParse_CrossCheck(t *testing.T) {
	// expr-lang evaluates the same precedence and associativity over Go
	// ints, so it serves as an independent oracle for '+', '-', and '*'.
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 100; i++ {
		tree := randTree(r, 4)
		source := tree.String()

		parsed, err := Parse(source)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", source, err)
		}

		out, err := expr.Eval(source, nil)
		if err != nil {
			t.Fatalf("oracle Eval(%q) error: %v", source, err)
		}

		want, ok := out.(int)
		if !ok {
			t.Fatalf("oracle Eval(%q) type = %T, want int", source, out)
		}

		if got := parsed.Eval(); got != want {
			t.Fatalf("Parse(%q).Eval() = %d, oracle = %d", source, got, want)
		}
	}
}
