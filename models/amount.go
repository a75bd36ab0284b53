package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a money value the backend sends either as a JSON number, a numeric string
// ("1234.50") or null. Unparseable strings decode to zero, matching how the portal has
// always displayed them.
type Amount float64

// UnmarshalJSON accepts numbers, numeric strings and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = ParseAmount(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

// Float returns the amount as a float64.
func (a Amount) Float() float64 {
	return float64(a)
}

// ParseAmount reads an amount typed by a person or sent as a string. Thousands separators
// are ignored and anything unparseable is zero.
func ParseAmount(s string) Amount {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Amount(v)
}
