package iban

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/vortex-fintech/go-iban/foundation/logger"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls [][2]string
}

func (r *recordingObserver) ObserveValidation(country, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, [2]string{country, result})
}

func TestNewLengths(t *testing.T) {
	l, err := NewLengths(map[string]int{"GB": 22, "NL": 18})
	require.NoError(t, err)
	assert.Equal(t, []string{"GB", "NL"}, l.Codes())

	n, ok := l.Len("GB")
	assert.True(t, ok)
	assert.Equal(t, 22, n)
	assert.True(t, l.CheckLength("GB82WEST12345698765432"))
	assert.False(t, l.CheckLength("DE22790200760027913168"))
}

func TestNewLengths_Rejects(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]int
	}{
		{"lowercase", map[string]int{"gb": 22}},
		{"three letters", map[string]int{"GBR": 22}},
		{"digit", map[string]int{"G1": 22}},
		{"prefix only", map[string]int{"GB": 4}},
		{"negative", map[string]int{"GB": -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLengths(tt.m)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestLengths_WithCopies(t *testing.T) {
	base := DefaultLengths()
	ext, err := base.With("GB", 22)
	require.NoError(t, err)

	_, ok := base.Len("GB")
	assert.False(t, ok, "With must not mutate the receiver")
	assert.Len(t, ext.Codes(), len(base.Codes())+1)

	_, err = base.With("gb", 22)
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestDefaultLengths(t *testing.T) {
	assert.Equal(t, []string{"AT", "BE", "CZ", "DE", "DK", "FR"}, DefaultLengths().Codes())
	n, _ := DefaultLengths().Len("FR")
	assert.Equal(t, 27, n)
}

func TestValidator_CustomTable(t *testing.T) {
	l, err := NewLengths(map[string]int{"GB": 22})
	require.NoError(t, err)
	v := New(Options{Lengths: l})

	assert.True(t, v.Validate("GB82WEST12345698765432"))
	assert.ErrorIs(t, v.Check("DE22790200760027913168"), ErrUnsupportedCountry)
	assert.Equal(t, []string{"GB"}, v.Lengths().Codes())
}

func TestValidator_Defaults(t *testing.T) {
	v := New(Options{})
	assert.True(t, v.Validate("DE22790200760027913168"))
	assert.False(t, v.Validate("DE21790200760027913168"))
}

func TestValidator_ObserverAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := &recordingObserver{}
	v := New(Options{Logger: logger.FromZap(zap.New(core)), Observer: obs})

	ctx := logger.ContextWithTraceID(context.Background(), "trace-1")
	require.NoError(t, v.CheckContext(ctx, "DE22790200760027913168"))
	require.ErrorIs(t, v.CheckContext(ctx, "DE21790200760027913168"), ErrInvalidChecksum)
	require.ErrorIs(t, v.Check("XX21790200760027913168"), ErrUnsupportedCountry)

	assert.Equal(t, [][2]string{
		{"DE", ReasonOK},
		{"DE", ReasonInvalidChecksum},
		{"", ReasonUnsupportedCountry},
	}, obs.calls)

	require.Equal(t, 2, logs.Len())
	first := logs.All()[0].ContextMap()
	assert.Equal(t, "DE****************3168", first["iban"])
	assert.Equal(t, ReasonInvalidChecksum, first["reason"])
	assert.Equal(t, "trace-1", first["trace_id"])
	assert.Equal(t, ReasonUnsupportedCountry, logs.All()[1].ContextMap()["reason"])
}

func TestValidator_ConcurrentUse(t *testing.T) {
	obs := &recordingObserver{}
	v := New(Options{Observer: obs})

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			for _, s := range validIBANs {
				if err := v.Check(s); err != nil {
					return err
				}
				if Validate(s + "0") {
					t.Errorf("unexpected valid %q", s+"0")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, obs.calls, 32*len(validIBANs))
}
