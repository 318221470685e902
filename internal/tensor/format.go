package tensor

import (
	"math"
	"strconv"
	"strings"
)

// Pretty renders a 2D tensor one row per line:
//
//	 [1, 2.5, 3]
//	 [4, 5, 6.125]
//
// Values are rounded to 3 decimal places (half away from zero) and printed in
// their shortest form, so 2.0 prints as "2".
func (t *Tensor) Pretty() (string, error) {
	if len(t.shape) != 2 {
		return "", rankError("pretty", t.shape)
	}

	rows, cols := t.shape[0], t.shape[1]
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		sb.WriteString(" [")
		for j, v := range t.data[i*cols : (i+1)*cols] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatValue(v))
		}
		sb.WriteString("]\n")
	}
	return sb.String(), nil
}

// maxFractional is the magnitude from which float64 values have no
// fractional digits left to round.
const maxFractional = 1 << 52

func formatValue(v float64) string {
	if math.Abs(v) >= maxFractional {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	rounded := math.Round(v*1000) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
