package oraclient

import (
	"github.com/rs/zerolog"
)

// logger is the package-wide structured sink for the debug events logged when
// this package builds an *Error (SPEC_FULL.md §2 Ambient Stack). Disabled by
// default so those events stay quiet unless a caller opts in. The ORA-01406
// truncation warning (internal/results) and the OCI library-load event
// (internal/oci) are written to zerolog's global logger instead, so neither
// this default nor SetLogger affects them.
var logger = zerolog.Nop()

// SetLogger redirects the debug events written through logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}
