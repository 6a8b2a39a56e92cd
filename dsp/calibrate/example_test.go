package calibrate_test

import (
	"fmt"

	"github.com/Vijay06092004/digital-signal-processing/dsp/calibrate"
)

func ExampleCalibrator_Sample() {
	c, err := calibrate.New(calibrate.Config{FullScale: 1 << 16, ZeroOffset: 0.5, ScaleFactor: 0.25})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f\n", c.Sample(1<<15+1<<14))

	// Output:
	// 1.00
}
