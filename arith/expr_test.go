package arith

import "testing"

func TestExpr_String(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{
			name: "literal",
			expr: Literal(42),
			want: "42",
		},
		{
			name: "negative literal",
			expr: Literal(-3),
			want: "-3",
		},
		{
			name: "binary",
			expr: Binary{Op: OpAdd, Left: Literal(1), Right: Literal(2)},
			want: "(1 + 2)",
		},
		{
			name: "nested binary",
			expr: Binary{
				Op:   OpMul,
				Left: Binary{Op: OpSub, Left: Literal(50), Right: Literal(11)},
				Right: Binary{
					Op:    OpDiv,
					Left:  Literal(7),
					Right: Literal(2),
				},
			},
			want: "((50 - 11) * (7 / 2))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpr_EvalPure(t *testing.T) {
	expr, err := Parse("((50 - 11) * 2) + 41")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	first := expr.Eval()
	for i := 0; i < 10; i++ {
		if got := expr.Eval(); got != first {
			t.Fatalf("Eval() call %d = %d, want %d", i+2, got, first)
		}
	}

	if first != 119 {
		t.Errorf("Eval() = %d, want 119", first)
	}
}

func TestExpr_DivideByZeroPanics(t *testing.T) {
	expr, err := Parse("1 / 0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Eval() of division by zero did not panic")
		}
	}()

	expr.Eval()
}

func TestOp_String(t *testing.T) {
	ops := map[Op]string{
		OpAdd: "+",
		OpSub: "-",
		OpMul: "*",
		OpDiv: "/",
	}

	for op, want := range ops {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", byte(op), got, want)
		}
	}
}
