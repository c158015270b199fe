package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat accepts a JSON number, a numeric string, an empty string, or null
// and normalizes to a value-or-absent float. Clients send numeric form fields
// in all four shapes.
type FlexFloat struct {
	Value *float64
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		f.Value = nil
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			f.Value = nil
			return nil
		}
		n, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", str)
		}
		f.Value = &n
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	f.Value = &n
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// FlexInt is FlexFloat for whole numbers; fractional input is rejected.
type FlexInt struct {
	Value *int
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var ff FlexFloat
	if err := ff.UnmarshalJSON(data); err != nil {
		return err
	}
	if ff.Value == nil {
		f.Value = nil
		return nil
	}
	n := int(*ff.Value)
	if float64(n) != *ff.Value {
		return fmt.Errorf("not a whole number: %v", *ff.Value)
	}
	f.Value = &n
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}
