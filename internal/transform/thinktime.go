package transform

import (
	"fmt"
	"math"

	"github.com/wesleyorama2/plangen/internal/model"
)

// DefaultThinkTime is the token emitted for an undefined think time.
// It shares the wire shape of the parameterized form so the engine
// needs a single parser.
const DefaultThinkTime = "norm(0.00 0.00)"

// FormatThinkTime renders a think time for the engine. Both numbers
// are written with exactly two decimals and a period separator; Go's
// fmt package is locale-independent, which makes this a stable wire
// format. Non-finite input is a logic bug in the caller and is
// rejected with an error rather than formatted.
func FormatThinkTime(tt *model.ThinkTime) (string, error) {
	if tt == nil {
		return DefaultThinkTime, nil
	}
	if !isFinite(tt.Mean) || !isFinite(tt.Deviation) {
		return "", fmt.Errorf("non-finite think time: mean=%v deviation=%v", tt.Mean, tt.Deviation)
	}
	return fmt.Sprintf("norm(%.2f %.2f)", tt.Mean, tt.Deviation), nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
