// Package bytesutil provides allocation-free byte/string conversions used
// on the line-scanning hot path.
package bytesutil

import "unsafe"

// ToUnsafeString converts b to a string without copying.
//
// The returned string is valid only as long as b is not modified or
// garbage-collected. Used on the scan hot path where a LineSlice or field
// range is passed to something that expects a string (e.g. strconv,
// regexp) but must not be copied.
func ToUnsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// ToUnsafeBytes converts s to a byte slice without copying.
//
// The returned slice is valid only as long as s is not modified or
// garbage-collected; it must never be written to.
func ToUnsafeBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
