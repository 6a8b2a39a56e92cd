package frequency_test

import (
	"fmt"

	"github.com/Vijay06092004/digital-signal-processing/stats/frequency"
)

func ExampleCalculate() {
	s := frequency.Calculate([]float64{10, 1, 1, 1, 1}, 0.5)
	fmt.Printf("centroid=%.2f Hz flatness=%.2f\n", s.Centroid, s.Flatness)
	// Output:
	// centroid=1.25 Hz flatness=1.00
}
