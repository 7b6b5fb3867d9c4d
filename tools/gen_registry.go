// Package main generates the builtin command alias table from the Khronos
// gl.xml registry.
//
// NOTE: This generator uses simple regex-based line scanning which works for
// the current gl.xml layout but may be fragile with future registry changes.
// In a future PR, we should consider parsing the registry with encoding/xml
// so nested <require>/<remove> blocks survive formatting changes.
//
// See: https://github.com/KhronosGroup/OpenGL-Registry
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <path-to-gl.xml>\n", os.Args[0])
		os.Exit(1)
	}

	registryPath := os.Args[1]
	file, err := os.Open(registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open registry file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Regex patterns
	featurePattern := regexp.MustCompile(`<feature api="gl" name="GL_VERSION_(\d)_(\d)"`)
	extensionPattern := regexp.MustCompile(`<extension name="(GL_\w+)"`)
	commandRefPattern := regexp.MustCompile(`<command name="(gl\w+)"\s*/>`)
	featureEndPattern := regexp.MustCompile(`</feature>`)
	extensionEndPattern := regexp.MustCompile(`</extension>`)

	coreCommands := make(map[string]coreEntry)
	extensionCommands := make(map[string][]string)

	var currentFeature *coreEntry
	var currentExtension string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if matches := featurePattern.FindStringSubmatch(line); len(matches) > 2 {
			major, _ := strconv.Atoi(matches[1])
			minor, _ := strconv.Atoi(matches[2])
			currentFeature = &coreEntry{major: major, minor: minor}
			continue
		}
		if featureEndPattern.MatchString(line) {
			currentFeature = nil
			continue
		}
		if matches := extensionPattern.FindStringSubmatch(line); len(matches) > 1 {
			currentExtension = matches[1]
			continue
		}
		if extensionEndPattern.MatchString(line) {
			currentExtension = ""
			continue
		}

		matches := commandRefPattern.FindStringSubmatch(line)
		if len(matches) < 2 {
			continue
		}
		symbol := matches[1]

		if currentFeature != nil {
			// The earliest feature requiring a command is its promotion
			// version.
			if existing, ok := coreCommands[symbol]; !ok ||
				currentFeature.major < existing.major ||
				(currentFeature.major == existing.major && currentFeature.minor < existing.minor) {
				coreCommands[symbol] = *currentFeature
			}
		} else if currentExtension != "" {
			extensionCommands[symbol] = append(extensionCommands[symbol], currentExtension)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	if len(coreCommands) < 2500 || len(coreCommands) > 4000 {
		fmt.Fprintf(os.Stderr, "Warning: Parsed %d core commands, expected ~3000 (valid range: 2500-4000). Registry may have changed.\n", len(coreCommands))
	}

	// Validate key commands to catch parser bugs
	keyCommands := map[string]coreEntry{
		"glGetString":  {1, 0},
		"glGetStringi": {3, 0},
		"glGenBuffers": {1, 5},
	}
	for symbol, want := range keyCommands {
		got, ok := coreCommands[symbol]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: Key command '%s' not found. Parser may be broken.\n", symbol)
			os.Exit(1)
		}
		if got != want {
			fmt.Fprintf(os.Stderr, "Error: Key command '%s' parsed at version %d.%d, expected %d.%d. Parser may be broken.\n",
				symbol, got.major, got.minor, want.major, want.minor)
			os.Exit(1)
		}
	}

	generateGoTable(coreCommands, extensionCommands, registryPath)
}

type coreEntry struct {
	major, minor int
}

// vendorOrder ranks suffixed aliases when a core command has several. ARB
// variants track the core semantics most closely, EXT next, vendor suffixes
// last.
var vendorOrder = []string{"ARB", "EXT", "OES", "KHR", "NV", "ATI", "AMD", "APPLE", "SGIS", "SGIX", "IBM", "MESA"}

func vendorRank(symbol string) int {
	for i, suffix := range vendorOrder {
		if strings.HasSuffix(symbol, suffix) {
			return i
		}
	}
	return len(vendorOrder)
}

func generateGoTable(coreCommands map[string]coreEntry, extensionCommands map[string][]string, registryPath string) {
	names := make([]string, 0, len(coreCommands))
	for symbol := range coreCommands {
		names = append(names, symbol)
	}
	sort.Strings(names)

	fmt.Println("package gl")
	fmt.Println()
	fmt.Printf("// Auto-generated from: %s\n", registryPath)
	fmt.Printf("// Generated on: %s\n", time.Now().Format(time.RFC3339))
	fmt.Println("// Generator: tools/gen_registry.go")
	fmt.Printf("// Parsed %d core commands\n", len(names))
	fmt.Println("//")
	fmt.Println("// DO NOT EDIT MANUALLY - regenerate using tools/gen_registry.go")
	fmt.Println("func generatedCommands() []Command {")
	fmt.Println("\treturn []Command{")

	for _, symbol := range names {
		entry := coreCommands[symbol]
		logical := strings.TrimPrefix(symbol, "gl")

		fmt.Printf("\t\t{Name: %q, Candidates: []Candidate{\n", logical)
		if entry.major == 1 && entry.minor == 0 {
			fmt.Printf("\t\t\talways(%q),\n", symbol)
		} else {
			fmt.Printf("\t\t\tcore(%q, %d, %d),\n", symbol, entry.major, entry.minor)
		}

		// Suffixed equivalents, most portable vendor first.
		aliases := suffixedAliases(symbol, extensionCommands)
		sort.SliceStable(aliases, func(i, j int) bool {
			return vendorRank(aliases[i].symbol) < vendorRank(aliases[j].symbol)
		})
		for _, alias := range aliases {
			fmt.Printf("\t\t\text(%q, %q),\n", alias.symbol, alias.extension)
		}

		fmt.Println("\t\t}},")
	}

	fmt.Println("\t}")
	fmt.Println("}")
}

type aliasEntry struct {
	symbol    string
	extension string
}

// suffixedAliases finds extension commands whose name is the core symbol plus
// a known vendor suffix.
func suffixedAliases(core string, extensionCommands map[string][]string) []aliasEntry {
	var aliases []aliasEntry
	for _, suffix := range vendorOrder {
		candidate := core + suffix
		extensions, ok := extensionCommands[candidate]
		if !ok {
			continue
		}
		aliases = append(aliases, aliasEntry{symbol: candidate, extension: extensions[0]})
	}
	return aliases
}
