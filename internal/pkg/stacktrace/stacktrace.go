// Package stacktrace condenses panic stacks down to the frames that belong
// to this repository, keeping log lines readable.
package stacktrace

import "strings"

// InternalPaths extracts "internal/...go:line" frames from a raw stack dump.
// It returns nil when no internal frame is present.
func InternalPaths(stack []byte) []string {
	var paths []string

	for line := range strings.Lines(string(stack)) {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, "/internal/")
		if idx == -1 || !strings.Contains(line, ".go:") {
			continue
		}

		frame := line[idx+1:]
		if cut := strings.IndexByte(frame, ' '); cut != -1 {
			frame = frame[:cut]
		}
		paths = append(paths, frame)
	}

	return paths
}
