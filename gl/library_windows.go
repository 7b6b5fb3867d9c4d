//go:build windows

package gl

import (
	"strings"

	"golang.org/x/sys/windows"
)

func loadLibrary(path string) (uintptr, error) {
	// Explicit paths bypass the DLL search order; bare names use the safe
	// default search plus any directories added via AddDllDirectory.
	flags := uintptr(windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS | windows.LOAD_LIBRARY_SEARCH_USER_DIRS)
	if strings.ContainsAny(path, `/\`) {
		flags = windows.LOAD_WITH_ALTERED_SEARCH_PATH
	}
	handle, err := windows.LoadLibraryEx(path, 0, flags)
	if err != nil || handle == 0 {
		return 0, err
	}
	return uintptr(handle), nil
}

func getSymbol(handle uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), symbol)
}

func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}

func addNativeSearchDirectory(dir string) error {
	p, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return err
	}
	_, err = windows.AddDllDirectory(p)
	return err
}
