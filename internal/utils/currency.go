package utils

import "fmt"

// FormatBRL renders an amount of cents as Brazilian Real, e.g.
// 123456 -> "R$ 1.234,56".  Amounts are minor units throughout the
// application, so this is the only place a price becomes a string.
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	reais := cents / 100
	frac := cents % 100
	return fmt.Sprintf("%sR$ %s,%02d", sign, groupThousands(reais), frac)
}

// groupThousands inserts "." separators every three digits, pt-BR style.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
