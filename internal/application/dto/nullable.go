package dto

import (
	"bytes"
	"encoding/json"
)

// Nullable distingue en un PATCH entre campo ausente, campo enviado como null y campo con valor.
//   - ausente: Set=false
//   - null:    Set=true, Value=nil
//   - valor:   Set=true, Value!=nil
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON solo se invoca cuando la clave está presente, incluso con null.
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

// MarshalJSON serializa el valor o null.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Some construye un Nullable con valor.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null construye un Nullable enviado explícitamente como null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}
