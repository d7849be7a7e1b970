// Package daterange provides calendar-date values and inclusive date ranges.
//
// The APOD API keys every picture by a calendar date and rejects range
// queries longer than about 100 days. This package supplies the Date value
// type used throughout apodgrab and the chunking logic that splits an
// oversized range into API-sized sub-ranges.
//
// # Usage
//
//	start, _ := daterange.Parse("2024-01-01")
//	end, _ := daterange.Parse("2024-09-06")
//	r, _ := daterange.New(start, end)
//
//	for _, sub := range r.Chunk(100) {
//	    // sub covers at most 101 calendar days
//	}
//
// Dates are plain year/month/day values with no time zone; two dates are
// equal exactly when they format to the same YYYY-MM-DD string.
package daterange
