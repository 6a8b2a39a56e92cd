// Package calibrate converts raw fixed-point ADC codes into physical units.
//
// A conversion has two steps. The raw code is first normalized against the
// converter's full-scale value; the normalized value is then shifted by the
// zero offset and divided by the scale factor:
//
//	physical = (raw/fullScale - zeroOffset) / scaleFactor
//
// The two steps are exposed separately because some conditioning paths filter
// the normalized value and convert only the filter output.
package calibrate
