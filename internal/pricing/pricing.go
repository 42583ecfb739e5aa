// Package pricing holds the scan price list and coupon rules. The server is
// the single authority for prices; clients only render what it returns.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// BasePrice is the list price of one DEXA scan in INR.
const BasePrice = 2999

// Coupon is a discount code with its human-readable label.
type Coupon struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	Label           string `json:"label"`
}

var coupons = map[string]Coupon{
	"FIRST50":     {Code: "FIRST50", DiscountPercent: 50, Label: "50% off your first scan"},
	"BODYINSIGHT": {Code: "BODYINSIGHT", DiscountPercent: 20, Label: "20% off"},
	"WELCOME":     {Code: "WELCOME", DiscountPercent: 10, Label: "10% off"},
}

// Lookup finds a coupon by code. Input is trimmed and uppercased before the
// lookup, so " first50 " and "FIRST50" are the same code.
func Lookup(code string) (Coupon, bool) {
	c, ok := coupons[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Quote computes the final price for a base price and discount percentage,
// rounded to the nearest rupee.
func Quote(basePrice, discountPercent int) int {
	return int(math.Round(float64(basePrice) * (1 - float64(discountPercent)/100)))
}

// FormatPrice renders an INR amount with Indian digit grouping, e.g.
// 2999 -> "₹2,999" and 299999 -> "₹2,99,999".
func FormatPrice(amount int) string {
	var b strings.Builder
	b.WriteString("₹")
	if amount < 0 {
		b.WriteString("-")
		amount = -amount
	}
	b.WriteString(groupIndian(amount))
	return b.String()
}

func groupIndian(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	// Last three digits form one group, the rest group in pairs.
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}
