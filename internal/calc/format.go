package calc

import (
	"math"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// Color codes used by dashboards and exports.
const (
	colorRed    = "#dc2626"
	colorAmber  = "#d97706"
	colorYellow = "#ca8a04"
	colorGreen  = "#16a34a"
	colorGray   = "#6b7280"
)

// FormatCurrency renders amount as a whole-dollar string with thousands
// grouping, e.g. 1234.56 -> "$1,235".
func FormatCurrency(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return currencyPrinter.Sprintf("-$%v", number.Decimal(-rounded))
	}
	return currencyPrinter.Sprintf("$%v", number.Decimal(rounded))
}

// FormatPercentage renders value as a fixed-decimal percent string. The
// number of decimals defaults to 1.
func FormatPercentage(value float64, decimals ...int) string {
	places := 1
	if len(decimals) > 0 {
		places = decimals[0]
	}
	return strconv.FormatFloat(value, 'f', places, 64) + "%"
}

// MarginColor maps a profit margin to a display color.
func MarginColor(margin float64) string {
	switch {
	case margin < 10:
		return colorRed
	case margin < 15:
		return colorAmber
	case margin < 20:
		return colorYellow
	default:
		return colorGreen
	}
}

// RiskColor maps a risk level to a display color.
func RiskColor(riskLevel string) string {
	switch riskLevel {
	case RiskLow:
		return colorGreen
	case RiskMedium:
		return colorAmber
	case RiskHigh:
		return colorRed
	default:
		return colorGray
	}
}

// NewSessionID returns an opaque token for correlating an estimate with
// caller-side analytics. It is not a persistence key.
func NewSessionID() string {
	return "calc_" + uuid.NewString()
}
