package assessment

import (
	"bytes"
	"encoding/json"
)

// Nullable is a patch field that tells "not sent" apart from "sent as null".
// Set is false when the key was absent; Value is nil when it was null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Some returns a patch field that sets v.
func Some[T any](v T) Nullable[T] { return Nullable[T]{Set: true, Value: &v} }

// Null returns a patch field that clears the target.
func Null[T any]() Nullable[T] { return Nullable[T]{Set: true} }

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

func (n Nullable[T]) apply(dst **T) {
	if !n.Set {
		return
	}
	if n.Value == nil {
		*dst = nil
		return
	}
	v := *n.Value
	*dst = &v
}
