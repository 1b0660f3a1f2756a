//go:build windows

package oci

import (
	"syscall"
)

// loadOCILibrary loads the OCI library on Windows.
func loadOCILibrary(libPath string) (uintptr, error) {
	handle, err := syscall.LoadLibrary(libPath)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}
