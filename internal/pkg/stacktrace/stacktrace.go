// Package stacktrace shortens goroutine stack dumps for panic logs.
package stacktrace

import "strings"

// InternalPaths returns the "internal/...go:line" frames of a raw stack trace,
// dropping runtime and third-party frames.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		_, rest, ok := strings.Cut(line, "/internal/")
		if !ok {
			continue
		}
		file, pos, ok := strings.Cut(rest, ".go:")
		if !ok {
			continue
		}
		lineNo, _, _ := strings.Cut(pos, " ")
		paths = append(paths, "internal/"+file+".go:"+lineNo)
	}
	return paths
}
