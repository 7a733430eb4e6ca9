// Package report renders the calculated outcome of a form as a printable
// page, localized the way the original reports were: pt-BR decimal commas and
// the final mean spelled out as its formula.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a score with the given number of decimals using the
// pt-BR decimal comma. Non-finite values render as 0.
func FormatValue(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return strings.Replace(strconv.FormatFloat(value, 'f', decimals, 64), ".", ",", 1)
}

// Formula spells the final mean out as "(a + b + c) / n = r".
func Formula(scores []float64, result float64) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = FormatValue(s, 2)
	}
	return fmt.Sprintf("(%s) / %d = %s",
		strings.Join(parts, " + "), len(scores), FormatValue(result, 2))
}
