// Package melt estimates snowmelt with the degree-day (temperature-index) model.
// Every temperature above the threshold contributes (T - threshold) * factor of melt;
// temperatures at or below the threshold contribute nothing.
package melt

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultThreshold is the temperature (°C) above which melt occurs when no threshold is given.
const DefaultThreshold = 0.0

// Params holds the degree-day model coefficients for a site.
type Params struct {
	Factor    float64 // mm °C⁻¹ day⁻¹
	Threshold float64 // °C
}

// DegreeDay returns daily melt (mm) for daily mean temperatures (°C) using DefaultThreshold.
func DegreeDay(temps []float64, factor float64) []float64 {
	return DegreeDayThreshold(temps, factor, DefaultThreshold)
}

// DegreeDayThreshold returns max(t - threshold, 0) * factor for each temperature.
// temps is not modified. NaN and Inf propagate the way IEEE-754 arithmetic does.
func DegreeDayThreshold(temps []float64, factor, threshold float64) []float64 {
	out := make([]float64, len(temps))
	if len(out) == 0 {
		return out
	}

	copy(out, temps)
	floats.AddConst(-threshold, out)
	for i, v := range out {
		out[i] = math.Max(v, 0)
	}
	floats.Scale(factor, out)

	return out
}

// DegreeDayGrid applies DegreeDayThreshold to each row of a 2-D temperature grid.
// Rows may differ in length; each output row matches its input row.
func DegreeDayGrid(temps [][]float64, factor, threshold float64) [][]float64 {
	out := make([][]float64, len(temps))
	for i, row := range temps {
		out[i] = DegreeDayThreshold(row, factor, threshold)
	}
	return out
}

// DegreeDayDense is the matrix form of DegreeDayThreshold. The result has the
// same dimensions as temps.
func DegreeDayDense(temps mat.Matrix, factor, threshold float64) *mat.Dense {
	var out mat.Dense
	if r, c := temps.Dims(); r == 0 || c == 0 {
		return &out
	}

	out.Apply(func(_, _ int, v float64) float64 {
		return math.Max(v-threshold, 0) * factor
	}, temps)

	return &out
}

// Melt is DegreeDayThreshold with p's coefficients.
func (p Params) Melt(temps []float64) []float64 {
	return DegreeDayThreshold(temps, p.Factor, p.Threshold)
}

// MeltGrid is DegreeDayGrid with p's coefficients.
func (p Params) MeltGrid(temps [][]float64) [][]float64 {
	return DegreeDayGrid(temps, p.Factor, p.Threshold)
}

// MeltDense is DegreeDayDense with p's coefficients.
func (p Params) MeltDense(temps mat.Matrix) *mat.Dense {
	return DegreeDayDense(temps, p.Factor, p.Threshold)
}
