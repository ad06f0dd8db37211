// Package discount validates promotional codes and tracks the single
// active discount amount.
package discount

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/pkg/errors"
)

type Ledger struct {
	mu     sync.Mutex
	codes  map[string]float64 // normalized code -> percentage off
	amount float64
	logger *zap.Logger
}

// NewLedger creates a ledger over a static code table mapping code to
// percentage off. Codes are matched case-insensitively.
func NewLedger(codes map[string]float64, logger *zap.Logger) *Ledger {
	normalized := make(map[string]float64, len(codes))
	for code, pct := range codes {
		normalized[normalize(code)] = pct
	}
	return &Ledger{
		codes:  normalized,
		logger: logger,
	}
}

// Apply looks the code up and, on a hit, sets the active discount amount
// to the given subtotal times the code's percentage. Only one discount is
// active at a time; a new valid code overwrites the previous amount. The
// amount is frozen at application time and does not track later subtotal
// changes. Returns the percentage applied.
func (l *Ledger) Apply(code string, subtotal float64) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pct, ok := l.codes[normalize(code)]
	if !ok {
		return 0, &errors.ErrInvalidDiscountCode{Code: code}
	}

	l.amount = subtotal * pct / 100
	l.logger.Info("Discount applied",
		zap.String("code", normalize(code)),
		zap.Float64("percentage", pct),
		zap.Float64("amount", l.amount),
	)
	return pct, nil
}

// Amount returns the active discount amount, zero if none.
func (l *Ledger) Amount() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.amount
}

// Clear resets the active discount to zero. Called when the cart is
// cleared.
func (l *Ledger) Clear() {
	l.mu.Lock()
	l.amount = 0
	l.mu.Unlock()
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
