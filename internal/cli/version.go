package cli

import (
	"cmp"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

// versionRe matches banners such as `mkvmerge v32.0.0 ('Astral Progressions') 64-bit`.
var versionRe = regexp.MustCompile(`^(.+)\s+v(\d+)\.(\d+)\.(\d+)\s+\('(.+)'\)(?:\s+(\d+)-bit)?$`)

// Version is a major.minor.patch triple.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 when v is older than, equal to, or newer than other.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}

	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}

	return cmp.Compare(v.Patch, other.Patch)
}

// VersionInfo is the parsed `--version` banner of a binary.
type VersionInfo struct {
	Program  string  `json:"program"`
	Version  Version `json:"version"`
	Codename string  `json:"codename"`
	// Bits is 32 or 64, or 0 when the banner does not say.
	Bits int `json:"bits,omitempty"`
}

// ParseVersion parses the first line of a `--version` banner.
func ParseVersion(binary Binary, output string) (VersionInfo, error) {
	line := strings.TrimSpace(output)
	if first, _, ok := strings.Cut(line, "\n"); ok {
		line = strings.TrimSpace(first)
	}

	m := versionRe.FindStringSubmatch(line)
	if m == nil {
		return VersionInfo{}, &errors.VersionParseError{Binary: string(binary), Output: line}
	}

	// The digit groups cannot fail to convert.
	major, _ := strconv.Atoi(m[2])
	minor, _ := strconv.Atoi(m[3])
	patch, _ := strconv.Atoi(m[4])

	info := VersionInfo{
		Program:  m[1],
		Version:  Version{Major: major, Minor: minor, Patch: patch},
		Codename: m[5],
	}

	if m[6] != "" {
		info.Bits, _ = strconv.Atoi(m[6])
	}

	return info, nil
}

// ReadVersion runs `<path> --version` and parses the banner.
func ReadVersion(ctx context.Context, binary Binary, path string) (VersionInfo, error) {
	//nolint:gosec // G204: the path comes from discovery
	cmd := exec.CommandContext(ctx, path, "--version")

	output, err := cmd.Output()
	if err != nil {
		return VersionInfo{}, &errors.StartError{Binary: string(binary), Err: err}
	}

	return ParseVersion(binary, string(output))
}
