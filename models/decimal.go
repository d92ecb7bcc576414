package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal is a decimal number that keeps the exact text it was created from.
// Comparisons use the parsed value; serialization writes the original text
// back, so "4.90" stays "4.90". The zero value is a null decimal.
type Decimal struct {
	text  string
	value decimal.Decimal
}

// ParseDecimal parses s as a decimal number.
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return Decimal{text: s, value: v}, nil
}

// MustDecimal is like ParseDecimal but panics on malformed input.
func MustDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the original text, or "" for a null decimal.
func (d Decimal) String() string {
	return d.text
}

// IsNull reports whether d holds no value.
func (d Decimal) IsNull() bool {
	return d.text == ""
}

// Cmp compares the numeric values of d and o.
func (d Decimal) Cmp(o Decimal) int {
	return d.value.Cmp(o.value)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	if d.IsNull() {
		return []byte("null"), nil
	}
	return json.Marshal(d.text)
}

// UnmarshalJSON accepts a quoted decimal ("75.00"), a bare JSON number, or null.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = Decimal{}
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	parsed, err := ParseDecimal(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer; decimals are stored as TEXT.
func (d Decimal) Value() (driver.Value, error) {
	if d.IsNull() {
		return nil, nil
	}
	return d.text, nil
}

// Scan implements sql.Scanner.
func (d *Decimal) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Decimal{}
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	case int64:
		*d = Decimal{text: fmt.Sprintf("%d", v), value: decimal.NewFromInt(v)}
		return nil
	case float64:
		n := decimal.NewFromFloat(v)
		*d = Decimal{text: n.String(), value: n}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Decimal", src)
	}
}

func (d *Decimal) scanText(s string) error {
	if s == "" {
		*d = Decimal{}
		return nil
	}
	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
