package money

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// FloatHandling selects what happens when a binary float operand reaches an
// exact-decimal operation. Floats can carry rounding error invisible at the
// call site, so they are discouraged but not forbidden by default.
type FloatHandling int32

const (
	// FloatWarn converts the float via its decimal text form and emits a
	// warning through the configured warn function. The default.
	FloatWarn FloatHandling = iota

	// FloatReject makes the operation fail with ErrFloatOperand instead.
	FloatReject
)

var floatMode atomic.Int32

// SetFloatHandling switches between warning on and rejecting binary float
// operands, for callers that want strict mode.
func SetFloatHandling(h FloatHandling) {
	floatMode.Store(int32(h))
}

var (
	warnMu sync.RWMutex
	warnFn = func(msg string, args ...any) {
		slog.Warn(msg, args...)
	}
)

// SetWarnFunc replaces the function used to surface discouraged-operation
// warnings. The default logs through slog.Warn. A nil fn silences warnings.
func SetWarnFunc(fn func(msg string, args ...any)) {
	warnMu.Lock()
	warnFn = fn
	warnMu.Unlock()
}

func noteFloatOperand() error {
	if FloatHandling(floatMode.Load()) == FloatReject {
		return ErrFloatOperand
	}
	warnMu.RLock()
	fn := warnFn
	warnMu.RUnlock()
	if fn != nil {
		fn("money: binary float converted to decimal via text; consider passing a string or decimal.Decimal")
	}
	return nil
}
