package project

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Auto is a setting that is either a value or the string "auto".
type Auto[T int | float64] struct {
	Set   bool
	Value T
}

// Fixed returns a set value.
func Fixed[T int | float64](v T) Auto[T] {
	return Auto[T]{Set: true, Value: v}
}

// UnmarshalYAML accepts "auto", an empty value or a number.
func (a *Auto[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		switch strings.ToLower(strings.TrimSpace(node.Value)) {
		case "", "auto", "~", "null":
			*a = Auto[T]{}
			return nil
		}
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("line %d: want a number or auto: %w", node.Line, err)
	}
	v := T(f)
	if math.IsNaN(f) || float64(v) != f {
		return fmt.Errorf("line %d: %q is not a valid %T", node.Line, node.Value, v)
	}
	*a = Fixed(v)
	return nil
}

// MarshalYAML writes "auto" for an unset value.
func (a Auto[T]) MarshalYAML() (interface{}, error) {
	if !a.Set {
		return "auto", nil
	}
	return a.Value, nil
}

func (a Auto[T]) String() string {
	if !a.Set {
		return "auto"
	}
	return fmt.Sprint(a.Value)
}
