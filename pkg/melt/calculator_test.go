package melt

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedCalculator(p Params) (*Calculator, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewCalculator(zap.New(core).Sugar(), p), logs
}

func TestCalculatorCalculate(t *testing.T) {
	calc, logs := newObservedCalculator(Params{Factor: 4})

	result := calc.Calculate([]float64{-5, 0, 3, 7})

	assert.Equal(t, []float64{0, 0, 12, 28}, result)

	entries := logs.FilterMessage("computed degree-day melt").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(4), fields["samples"])
	assert.Equal(t, 40.0, fields["total_melt_mm"])
}

func TestCalculatorCalculateGrid(t *testing.T) {
	calc, logs := newObservedCalculator(Params{Factor: 3})

	result := calc.CalculateGrid([][]float64{{1, -1}, {4, 2}})

	assert.Equal(t, [][]float64{{3, 0}, {12, 6}}, result)

	entries := logs.FilterMessage("computed degree-day melt grid").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(2), fields["rows"])
	assert.Equal(t, int64(4), fields["samples"])
	assert.Equal(t, 21.0, fields["total_melt_mm"])
}

func TestCalculatorSetParams(t *testing.T) {
	calc, logs := newObservedCalculator(Params{Factor: 1})

	calc.SetParams(Params{Factor: 2.5, Threshold: 1})

	assert.Equal(t, Params{Factor: 2.5, Threshold: 1}, calc.Params())
	assert.Equal(t, []float64{2.5, 10}, calc.Calculate([]float64{2, 5}))
	assert.Equal(t, 1, logs.FilterMessage("degree-day parameters updated").Len())
}

func TestCalculatorNilLogger(t *testing.T) {
	calc := NewCalculator(nil, Params{Factor: 2})
	assert.Equal(t, []float64{0, 4}, calc.Calculate([]float64{-1, 2}))
}

func TestCalculatorConcurrentUse(t *testing.T) {
	calc, _ := newObservedCalculator(Params{Factor: 1})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(f float64) {
			defer wg.Done()
			calc.SetParams(Params{Factor: f})
		}(float64(i))
		go func() {
			defer wg.Done()
			assert.Len(t, calc.Calculate([]float64{1, 2, 3}), 3)
		}()
	}
	wg.Wait()
}
