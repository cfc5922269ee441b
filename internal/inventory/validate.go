// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Validate checks names are present and unique, OS families are known and
// declared versions are semantic versions.
func (s Spec) Validate() error {
	seen := make(map[string]bool, len(s.Nodes))
	for i, n := range s.Nodes {
		field := fmt.Sprintf("nodes[%d]", i)
		if n.Name == "" {
			return NewValidationError(field, "%s: name is required", field)
		}
		if seen[n.Name] {
			return NewValidationError(field, "%s: duplicate node name %q", field, n.Name)
		}
		seen[n.Name] = true
		if err := n.validate(field); err != nil {
			return err
		}
	}

	if s.Controller != nil {
		if err := s.Controller.validate("controller"); err != nil {
			return err
		}
	}

	ids := make(map[string]bool, len(s.Tools))
	for i, d := range s.Tools {
		field := fmt.Sprintf("tools[%d]", i)
		if d.ID == "" {
			return NewValidationError(field, "%s: id is required", field)
		}
		if ids[d.ID] {
			return NewValidationError(field, "%s: duplicate descriptor id %q", field, d.ID)
		}
		ids[d.ID] = true

		for j, inst := range d.Installations {
			instField := fmt.Sprintf("%s.installations[%d]", field, j)
			if inst.Name == "" {
				return NewValidationError(instField, "%s: name is required", instField)
			}
			if inst.Version != "" {
				if _, err := semver.NewVersion(inst.Version); err != nil {
					return NewValidationError(instField, "%s: invalid version %q: %v", instField, inst.Version, err)
				}
			}
		}
	}

	return nil
}

func (n NodeSpec) validate(field string) error {
	switch n.OS {
	case "", OSLinux, OSDarwin, OSWindows:
	default:
		return NewValidationError(field, "%s: unsupported os %q, expected one of [%s %s %s]",
			field, n.OS, OSLinux, OSDarwin, OSWindows)
	}

	for i, loc := range n.ToolLocations {
		locField := fmt.Sprintf("%s.toolLocations[%d]", field, i)
		if loc.Type == "" || loc.Name == "" {
			return NewValidationError(locField, "%s: type and name are required", locField)
		}
	}
	return nil
}
