package s3

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ProbeDuration runs ffprobe against a local media file and returns its
// duration in seconds.
func ProbeDuration(path string) (float64, error) {
	cmd := exec.Command(
		"ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed: %v: %s", err, strings.TrimSpace(stderr.String()))
	}

	return parseProbeOutput(stdout.Bytes())
}

// parseProbeOutput extracts the duration value from ffprobe output
func parseProbeOutput(output []byte) (float64, error) {
	value := strings.TrimSpace(string(output))
	if value == "" || value == "N/A" {
		return 0, fmt.Errorf("no duration in ffprobe output")
	}

	duration, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %v", value, err)
	}
	return duration, nil
}
