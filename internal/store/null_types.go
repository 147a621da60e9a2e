package store

import (
	"encoding/json"
)

// NullFloat64 is a float64 that may be absent. It marshals to JSON null
// when not valid, never to 0.
type NullFloat64 struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// MarshalJSON implements the json.Marshaler interface
func (nf NullFloat64) MarshalJSON() ([]byte, error) {
	if !nf.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nf.Value)
}

// NewNullFloat64 converts a nullable column scanned as *float64.
func NewNullFloat64(f *float64) NullFloat64 {
	if f == nil {
		return NullFloat64{}
	}
	return NullFloat64{Value: *f, Valid: true}
}
