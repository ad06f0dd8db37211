package discount

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/velas-starlight/storefront/pkg/errors"
)

func testLedger() *Ledger {
	return NewLedger(map[string]float64{"NUEVOSITIO15": 15}, zap.NewNop())
}

func TestApply(t *testing.T) {
	l := testLedger()

	pct, err := l.Apply("NUEVOSITIO15", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pct != 15 {
		t.Errorf("expected percentage 15, got %v", pct)
	}
	if l.Amount() != 150 {
		t.Errorf("expected amount 150, got %v", l.Amount())
	}
}

func TestApply_CaseInsensitive(t *testing.T) {
	l := testLedger()

	if _, err := l.Apply("nuevositio15", 1000); err != nil {
		t.Fatalf("lowercase code should match: %v", err)
	}
	if l.Amount() != 150 {
		t.Errorf("expected amount 150, got %v", l.Amount())
	}

	if _, err := l.Apply("  NuevoSitio15  ", 200); err != nil {
		t.Fatalf("padded mixed-case code should match: %v", err)
	}
}

func TestApply_UnknownCodeLeavesStateUnchanged(t *testing.T) {
	l := testLedger()
	l.Apply("NUEVOSITIO15", 1000)

	_, err := l.Apply("NOPE", 1000)
	if err == nil {
		t.Fatal("expected error for unknown code")
	}
	var invalid *apperrors.ErrInvalidDiscountCode
	if !errors.As(err, &invalid) {
		t.Errorf("expected ErrInvalidDiscountCode, got %T", err)
	}
	if l.Amount() != 150 {
		t.Errorf("expected prior discount to survive, got %v", l.Amount())
	}
}

func TestApply_NewCodeOverwrites(t *testing.T) {
	l := NewLedger(map[string]float64{"NUEVOSITIO15": 15, "BIENVENIDA10": 10}, zap.NewNop())

	l.Apply("NUEVOSITIO15", 1000)
	l.Apply("BIENVENIDA10", 1000)

	if l.Amount() != 100 {
		t.Errorf("expected the new code to replace the amount, got %v", l.Amount())
	}
}

func TestAmount_FrozenAtApplicationTime(t *testing.T) {
	l := testLedger()
	l.Apply("NUEVOSITIO15", 1000)

	// The subtotal changing afterwards does not move the amount; it is
	// only recomputed by another Apply.
	if l.Amount() != 150 {
		t.Errorf("expected frozen amount 150, got %v", l.Amount())
	}
}

func TestClear(t *testing.T) {
	l := testLedger()
	l.Apply("NUEVOSITIO15", 1000)
	l.Clear()

	if l.Amount() != 0 {
		t.Errorf("expected 0 after clear, got %v", l.Amount())
	}
}
