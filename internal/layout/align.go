// Package layout provides the byte-alignment arithmetic shared by the parameter
// and result area allocators.
package layout

// AlignTo rounds size up to the next multiple of align. align must be > 0.
//
// Grounded on original_source/oracle/src/statement/memory.rs (align_size_to).
func AlignTo(size, align int) int {
	if size%align == 0 {
		return size
	}
	return (size/align + 1) * align
}
