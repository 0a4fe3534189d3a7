package domain

// Get reads a field and asserts its concrete type. A value of another type is
// reported as absent, the same as a field that was never set.
func Get[T Value](r MetadataRetrieve, f *Field, idx ...int) (T, bool) {
	var zero T
	v, ok := r.Get(f, idx...)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// GetString reads a Text or Enum field as a plain string.
func GetString(r MetadataRetrieve, f *Field, idx ...int) (string, bool) {
	v, ok := r.Get(f, idx...)
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case Text:
		return string(s), true
	case Enum:
		return string(s), true
	default:
		return "", false
	}
}

// RefIDs collects the populated positions of a repeated reference field.
func RefIDs(r MetadataRetrieve, f *Field, owner ...int) []string {
	n := r.RefCount(f, owner...)
	out := make([]string, 0, n)
	idx := append(append(make([]int, 0, len(owner)+1), owner...), 0)
	for i := 0; i < n; i++ {
		idx[len(idx)-1] = i
		if s, ok := GetString(r, f, idx...); ok {
			out = append(out, s)
		}
	}
	return out
}

// ValidIndex reports whether idx has the field's arity and no negative entry.
func ValidIndex(f *Field, idx []int) bool {
	if len(idx) != f.Arity() {
		return false
	}
	for _, i := range idx {
		if i < 0 {
			return false
		}
	}
	return true
}
