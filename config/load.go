package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// profileFile is the top-level layout of a profiles file.
type profileFile struct {
	Profiles []Params `hcl:"profile,block"`
}

// LoadFile reads the HCL file at path. See Parse.
func LoadFile(path string) (*Profiles, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source into profiles. The result starts from Builtin();
// a profile in src may replace a built-in of the same name, but two profiles
// in src may not share a name. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Profiles, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w", filename, diags)
	}

	var root profileFile
	if diags = gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %w", filename, diags)
	}

	ps := Builtin()
	seen := make(map[string]struct{}, len(root.Profiles))
	for _, raw := range root.Profiles {
		if _, dup := seen[raw.Name]; dup {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateProfile, raw.Name, filename)
		}
		seen[raw.Name] = struct{}{}

		p, err := raw.Resolve()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		ps.byName[p.Name] = p
	}
	return ps, nil
}
