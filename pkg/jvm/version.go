// SPDX-License-Identifier: Apache-2.0

package jvm

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersion parses a Java version string into a semantic version.
// Legacy 1.x versions drop the leading "1." (1.8.0_292 is 8.0.292) and
// components past the third become build metadata (11.0.22.1 is 11.0.22+1).
func ParseVersion(raw string) (*semver.Version, error) {
	v := strings.Trim(strings.TrimSpace(raw), `"`)
	if v == "" {
		return nil, NewVersionError(nil, raw)
	}

	core, rest := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, rest = v[:i], v[i:]
	}

	parts := strings.Split(strings.ReplaceAll(core, "_", "."), ".")
	if len(parts) > 1 && parts[0] == "1" {
		if n, err := strconv.Atoi(parts[1]); err == nil && n < 9 {
			parts = parts[1:]
		}
	}
	if len(parts) > 3 {
		extra := strings.Join(parts[3:], ".")
		parts = parts[:3]
		if strings.Contains(rest, "+") {
			rest += "." + extra
		} else {
			rest += "+" + extra
		}
	}

	ver, err := semver.NewVersion(strings.Join(parts, ".") + rest)
	if err != nil {
		return nil, NewVersionError(err, raw)
	}
	return ver, nil
}

// SortByVersion orders items by ascending Java version. Items whose version
// is empty or does not parse go last and keep their relative order.
func SortByVersion[T any](items []T, version func(T) string) {
	parsed := make([]*semver.Version, len(items))
	for i, item := range items {
		parsed[i], _ = ParseVersion(version(item))
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := parsed[idx[a]], parsed[idx[b]]
		switch {
		case va == nil:
			return false
		case vb == nil:
			return true
		default:
			return va.LessThan(vb)
		}
	})

	sorted := make([]T, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}
