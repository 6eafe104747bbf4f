package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// AgingBucket is one contiguous day-range partition of pending receivables.
// Ranges are inclusive on both ends; the current bucket runs to zero days
// overdue and the overflow bucket is unbounded above.
type AgingBucket struct {
	Label    string
	FromDays int
	ToDays   int
	Amount   decimal.Decimal
	Count    int
}

// CurrentBucketLabel names the bucket for invoices not yet overdue.
const CurrentBucketLabel = "Current"

// BuildAgingBuckets builds n+2 empty buckets from ordered day boundaries
// [b1 < b2 < ... < bn]: Current (<= 0 days), one bucket per boundary range
// (prev+1 .. b_i), and an unbounded overflow bucket (> bn). The buckets are
// contiguous and non-overlapping by construction, so every days-overdue value
// matches exactly one bucket.
func BuildAgingBuckets(boundaries []int) []AgingBucket {
	buckets := make([]AgingBucket, 0, len(boundaries)+2)
	buckets = append(buckets, AgingBucket{
		Label:    CurrentBucketLabel,
		FromDays: math.MinInt32,
		ToDays:   0,
		Amount:   decimal.Zero,
	})

	prev := 0
	for _, b := range boundaries {
		buckets = append(buckets, AgingBucket{
			Label:    fmt.Sprintf("%d-%d days", prev+1, b),
			FromDays: prev + 1,
			ToDays:   b,
			Amount:   decimal.Zero,
		})
		prev = b
	}

	buckets = append(buckets, AgingBucket{
		Label:    fmt.Sprintf("> %d days", prev),
		FromDays: prev + 1,
		ToDays:   math.MaxInt32,
		Amount:   decimal.Zero,
	})

	return buckets
}

// PlaceInBucket accumulates amount into the first (and only) bucket covering
// daysOverdue.
func PlaceInBucket(buckets []AgingBucket, daysOverdue int, amount decimal.Decimal) {
	for i := range buckets {
		if daysOverdue >= buckets[i].FromDays && daysOverdue <= buckets[i].ToDays {
			buckets[i].Amount = buckets[i].Amount.Add(amount)
			buckets[i].Count++
			return
		}
	}
}
