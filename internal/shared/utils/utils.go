package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

// UnmarshalTask decodes an asynq task payload into dest.
func UnmarshalTask(t *asynq.Task, dest interface{}) error {
	if len(t.Payload()) == 0 {
		return fmt.Errorf("task %s has an empty payload", t.Type())
	}
	return json.Unmarshal(t.Payload(), dest)
}

// DigitsOnly strips everything but ASCII digits ("01310-100" -> "01310100").
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParsePositiveInt parses path parameters such as product ids.
func ParsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%q must be positive", s)
	}
	return n, nil
}

// ApplyDiscount returns price * (1 - percent/100) rounded to cents.
func ApplyDiscount(price decimal.Decimal, percent int) decimal.Decimal {
	factor := decimal.NewFromInt(100 - int64(percent)).Div(decimal.NewFromInt(100))
	return price.Mul(factor).Round(2)
}
