package pkg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BRL price helpers.
//
// Gifts carry a display price string like "R$ 199,99"; the payment gateway
// takes integer minor units (centavos). Conversion rounds half-up at the
// cents boundary.

var ErrInvalidPrice = errors.New("invalid price")

// ParseBRL converts "R$ 199,99" (also accepts "199,99", "1.234,56" or
// "199.99") into centavos.
func ParseBRL(s string) (int64, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "R$")
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, ErrInvalidPrice
	}

	neg := strings.HasPrefix(v, "-")
	if neg {
		v = strings.TrimSpace(v[1:])
	}

	// Brazilian format uses "." for thousands and "," for decimals. A value
	// with only a "." is treated as a decimal point.
	if strings.Contains(v, ",") {
		v = strings.ReplaceAll(v, ".", "")
		v = strings.Replace(v, ",", ".", 1)
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if neg {
		f = -f
	}
	return CentsFromReais(f), nil
}

// CentsFromReais rounds half-up at the cents boundary.
func CentsFromReais(reais float64) int64 {
	if reais < 0 {
		return -CentsFromReais(-reais)
	}
	return int64(reais*100 + 0.5)
}

// FormatBRL renders centavos as "R$ 199,99".
func FormatBRL(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100
	s := fmt.Sprintf("R$ %s,%02d", groupThousands(whole), frac)
	if neg {
		return "-" + s
	}
	return s
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
