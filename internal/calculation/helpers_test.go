package calculation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestLogger records every message by level
type TestLogger struct {
	mu    sync.Mutex
	Debug []string
	Info  []string
	Warn  []string
	Error []string
}

func (l *TestLogger) Debugf(format string, args ...any) { l.add(&l.Debug, format, args...) }
func (l *TestLogger) Infof(format string, args ...any)  { l.add(&l.Info, format, args...) }
func (l *TestLogger) Warnf(format string, args ...any)  { l.add(&l.Warn, format, args...) }
func (l *TestLogger) Errorf(format string, args ...any) { l.add(&l.Error, format, args...) }

func (l *TestLogger) add(dst *[]string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*dst = append(*dst, fmt.Sprintf(format, args...))
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decimalPtr(v decimal.Decimal) *decimal.Decimal {
	return &v
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, name string) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "%s: want %s, got %s", name, want, got.String())
}

func assertNear(t *testing.T, want float64, got decimal.Decimal, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want, got.InexactFloat64(), delta, msgAndArgs...)
}
