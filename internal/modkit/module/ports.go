package module

import "reflect"

// PortsOf finds a value implementing T in a module's port bundle
// the bundle itself is checked first, then its exported struct fields
func PortsOf[T any](m Module) (T, bool) { return portIn[T](m.Ports()) }

func portIn[T any](p any) (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}

	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}
