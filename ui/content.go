package ui

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrWrongAssetType is returned by LoadAs when an asset exists but is not of
// the requested type.
var ErrWrongAssetType = errors.New("ui: asset has unexpected type")

// ContentLoader loads assets by path. It is only usable once a rendering
// context exists, which is why components load content in a separate phase.
type ContentLoader interface {
	Load(path string) (any, error)
}

// LoadAs loads path and asserts the result to T.
func LoadAs[T any](loader ContentLoader, path string) (T, error) {
	var zero T
	if loader == nil {
		return zero, fmt.Errorf("loading %s: nil loader", path)
	}
	v, err := loader.Load(path)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("loading %s as %v: %w", path, reflect.TypeFor[T](), ErrWrongAssetType)
	}
	return t, nil
}
