// Package attachment provides a container of named values of arbitrary type.
//
// A Set maps names to slots. Each slot pairs the exact type a value was
// stored as with a reference counted cell holding the value. Reads are typed:
// Get[int] only returns a value that was stored as an int, and a name that is
// absent reads the same as a name holding some other type.
//
// Values are shared rather than copied. Get hands out a Handle that keeps the
// value alive and Merge shares cells between sets. In-place mutation through
// AllMut is only granted while the set holds the sole reference to a value.
//
// Set is meant for use from one goroutine. SharedSet carries the same
// contract behind a lock, and both satisfy Container so the typed accessors
// work with either.
package attachment
