package store

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	time.DateTime,
	time.DateOnly,
}

// LenientTime decodes a stored timestamp. Anything unparseable yields the zero
// time and false so that one bad record cannot break a listing.
func LenientTime(raw json.RawMessage) (time.Time, bool) {
	var s string

	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, false
	}

	s = strings.TrimSpace(s)

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// LenientAmount decodes a stored amount given either as a JSON number or a
// numeric string. Malformed values collapse to zero.
func LenientAmount(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero
	}

	var d decimal.Decimal

	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Zero
	}

	return d
}
