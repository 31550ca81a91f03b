package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Decimal is a display-oriented decimal. The backend serializes decimal
// fields as strings ("12.50") but accepts plain numbers on input, so both
// shapes are decoded and numbers are emitted.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*d = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("decimal %q: %w", s, err)
		}
		*d = Decimal(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*d = Decimal(v)
	return nil
}

func (d Decimal) Float() float64 { return float64(d) }

func (d Decimal) String() string {
	return strconv.FormatFloat(float64(d), 'f', 2, 64)
}
