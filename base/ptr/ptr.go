package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// Int return a pointer to the input value
func Int(value int) *int {
	return &value
}

// Float64 return a pointer to the input value
func Float64(value float64) *float64 {
	return &value
}

// Bool return a pointer to the input value
func Bool(value bool) *bool {
	return &value
}

// IntValue dereferences p, falling back to def for nil
func IntValue(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// Float64Value dereferences p, falling back to def for nil
func Float64Value(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
