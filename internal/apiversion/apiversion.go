// Package apiversion parses and matches "major[.minor]" API versions carried in
// the URL path, e.g. /api/v1/... or /api/v2.0/...
package apiversion

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrInvalid     = errors.New("invalid api version")
	ErrUnsupported = errors.New("unsupported api version")
)

// Version is a major.minor API version. The zero minor is implied when omitted.
type Version struct {
	Major int
	Minor int
}

// Parse accepts "1", "1.0", "2.1". Negative numbers, empty parts and more than two
// components are rejected with ErrInvalid.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, fmt.Errorf("%w: empty", ErrInvalid)
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	major, err := parseComponent(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	v := Version{Major: major}
	if len(parts) == 2 {
		minor, err := parseComponent(parts[1])
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		v.Minor = minor
	}
	return v, nil
}

func parseComponent(s string) (int, error) {
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalid
	}
	return strconv.Atoi(s)
}

// String always renders both components, so "1" and "1.0" print alike.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Less orders versions by major then minor.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// Set is an immutable, sorted collection of supported versions.
type Set struct {
	versions []Version
	header   string
}

// NewSet parses every entry; duplicates collapse. At least one version is required.
func NewSet(raw ...string) (*Set, error) {
	seen := make(map[Version]struct{}, len(raw))
	versions := make([]Version, 0, len(raw))
	for _, r := range raw {
		v, err := Parse(strings.TrimSpace(r))
		if err != nil {
			return nil, err
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		versions = append(versions, v)
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: no versions configured", ErrInvalid)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i].Less(versions[j]) })

	names := make([]string, len(versions))
	for i, v := range versions {
		names[i] = v.String()
	}
	return &Set{versions: versions, header: strings.Join(names, ", ")}, nil
}

// Contains reports whether v is supported.
func (s *Set) Contains(v Version) bool {
	for _, sv := range s.versions {
		if sv == v {
			return true
		}
	}
	return false
}

// Resolve parses raw and checks it against the set.
func (s *Set) Resolve(raw string) (Version, error) {
	v, err := Parse(raw)
	if err != nil {
		return Version{}, err
	}
	if !s.Contains(v) {
		return Version{}, fmt.Errorf("%w: %s", ErrUnsupported, v)
	}
	return v, nil
}

// Versions returns a copy of the supported versions, lowest first.
func (s *Set) Versions() []Version {
	out := make([]Version, len(s.versions))
	copy(out, s.versions)
	return out
}

// Default is the lowest supported version.
func (s *Set) Default() Version { return s.versions[0] }

// Latest is the highest supported version.
func (s *Set) Latest() Version { return s.versions[len(s.versions)-1] }

// Header is the value reported in the api-supported-versions response header.
func (s *Set) Header() string { return s.header }
