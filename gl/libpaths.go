package gl

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// driverLibraryNames returns the candidate driver library names for the
// current platform, most preferred first. The linux names follow the
// libglvnd layout: the legacy libGL wrapper first, then the dispatch
// libraries it fronts.
func driverLibraryNames() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"opengl32.dll"}
	case "darwin":
		return []string{
			"/System/Library/Frameworks/OpenGL.framework/Versions/Current/OpenGL",
			"/System/Library/Frameworks/OpenGL.framework/OpenGL",
		}
	default:
		return []string{
			"libGL.so.1",
			"libGL.so",
			"libOpenGL.so.0",
			"libGLESv2.so.2",
			"libEGL.so.1",
		}
	}
}

func defaultSearchDirectories() []string {
	switch runtime.GOOS {
	case "linux":
		return []string{
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/lib64",
			"/usr/lib",
			"/usr/local/lib",
		}
	case "freebsd":
		return []string{
			"/usr/local/lib",
			"/usr/lib",
		}
	default:
		return nil
	}
}

// driverLibraryCandidates produces the ordered list of paths Open should
// try when no explicit library path was configured. For each platform name
// it first yields concrete files found under the extra and default search
// directories, then the bare name so the OS loader can apply its own search
// rules.
func driverLibraryCandidates(extraDirs []string) []string {
	dirs := append(append([]string(nil), extraDirs...), defaultSearchDirectories()...)

	var candidates []string
	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		candidates = append(candidates, path)
	}

	for _, name := range driverLibraryNames() {
		if filepath.IsAbs(name) {
			add(name)
			continue
		}
		for _, dir := range dirs {
			matches, err := filepath.Glob(filepath.Join(dir, name+"*"))
			if err != nil {
				continue
			}
			sort.Strings(matches)
			for _, match := range matches {
				if validLibraryFile(match) {
					add(match)
				}
			}
		}
		add(name)
	}
	return candidates
}

func validLibraryFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
