package response_models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Amount is a money or distance figure read from model output. Anything that
// is not a JSON number decodes to 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

func (a Amount) Float() float64 { return float64(a) }

// AmountPtr returns a pointer to v as an Amount.
func AmountPtr(v float64) *Amount {
	a := Amount(v)
	return &a
}

// DayNumber is a 1-based day index. Non-integer values decode to 0, which
// no valid day uses.
type DayNumber int

func (d *DayNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		*d = 0
		return nil
	}
	*d = DayNumber(int(f))
	return nil
}

// StringList accepts an array of strings or a single string. Non-string
// array elements are dropped and every other shape yields an empty list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		*l = StringList{}
		return nil
	}

	out := make(StringList, 0, len(items))
	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) == nil {
			out = append(out, s)
		}
	}
	*l = out
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Text is a free-form string field that tolerates scalar or structured values.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*t = ""
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(s)
	case trimmed[0] == '{' || trimmed[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return err
		}
		*t = Text(buf.String())
	default:
		*t = Text(trimmed)
	}
	return nil
}

// IsObject reports whether raw holds a JSON object.
func IsObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// IsNumber reports whether raw holds a JSON number.
func IsNumber(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(string(trimmed), 64)
	return err == nil
}

// DecodeList decodes a JSON array element by element, skipping elements that
// do not fit T. The second result is false when raw is absent or not an array.
func DecodeList[T any](raw json.RawMessage) ([]T, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return []T{}, false
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, true
}

// OrEmpty returns s, or a non-nil empty slice when s is nil.
func OrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// keepRaw decodes data into the typed view v as far as each field's type
// allows and returns a private copy of data. Mistyped fields stay at their
// zero value in v; the element itself is never rejected.
func keepRaw(data []byte, v interface{}) json.RawMessage {
	_ = json.Unmarshal(data, v)
	return append(json.RawMessage(nil), data...)
}

// emitRaw returns raw when the element came from decoded JSON, otherwise the
// encoding of the typed view.
func emitRaw(raw json.RawMessage, typed interface{}) ([]byte, error) {
	if raw != nil {
		return raw, nil
	}
	return json.Marshal(typed)
}

// setRawField sets key on a raw JSON object. Non-object raw is returned as is.
func setRawField(raw json.RawMessage, key string, value interface{}) json.RawMessage {
	if !IsObject(raw) {
		return raw
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return raw
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return raw
	}
	obj[key] = encoded
	out, err := json.Marshal(obj)
	if err != nil {
		return raw
	}
	return out
}
