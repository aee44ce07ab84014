package w3s

// Ptr returns a pointer to the given value. Optional request fields are
// pointers so unset fields stay off the wire entirely; Ptr keeps literals
// usable inline:
//
//	req.Name = w3s.Ptr("treasury")
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p, or the zero value if p is nil.
func Deref[T any](p *T) T {
	if p != nil {
		return *p
	}
	var zero T
	return zero
}
