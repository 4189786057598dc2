package scanfilter

// Filter transforms one range frame into a new frame of the same length.
// Implementations never modify the input slice.
type Filter interface {
	Update(frame []float64) ([]float64, error)
}

var (
	_ Filter = (*RangeFilter)(nil)
	_ Filter = (*TempMedianFilter)(nil)
)
