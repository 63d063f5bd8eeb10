package gift

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field is a merge-patch wrapper distinguishing "key absent" (Set false,
// leave the stored value alone) from "explicit null" (Set true, Value nil,
// clear the stored value) from "value present" (Set true, Value non-nil).
type Field[T any] struct {
	Set   bool
	Value *T
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// PriceField decodes a price that clients may send as a number, a numeric
// string, an empty string, or null. Empty string, null and zero all
// normalize to "no price".
type PriceField struct {
	Set   bool
	Value *float64
}

func (f *PriceField) UnmarshalJSON(b []byte) error {
	f.Set = true
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		f.Value = nil
		return nil
	}

	var v float64
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			f.Value = nil
			return nil
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		v = p
	} else if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	if v == 0 {
		f.Value = nil
		return nil
	}
	f.Value = &v
	return nil
}
