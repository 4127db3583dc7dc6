package images

import (
	"math"
	"reflect"
)

// IsBlank reports whether value carries no information: nil, a nil
// pointer, an empty string, an empty collection or NaN.
func IsBlank(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return IsBlank(v.Elem().Interface())
	case reflect.String:
		return v.Len() == 0
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	case reflect.Array:
		return v.Len() == 0
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	case reflect.Struct:
		return v.NumField() == 0
	case reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
