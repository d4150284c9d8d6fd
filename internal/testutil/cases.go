package testutil

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"
)

// Case is one entry of the YAML case corpus. Source is written in marker
// syntax: every parenthesized expression or pattern expected to be
// removable is wrapped in OpenMark and CloseMark, and every unmarked
// parenthesized node is expected to be kept.
type Case struct {
	Name    string `yaml:"name"`
	Source  string `yaml:"source"`
	Version string `yaml:"version,omitempty"`
	Checked bool   `yaml:"checked,omitempty"`
	// Oracle selects the reassociation oracle: "semantic" (the default)
	// or "never".
	Oracle string `yaml:"oracle,omitempty"`
	Note   string `yaml:"note,omitempty"`
}

// LoadCases reads a YAML file holding a list of cases.
func LoadCases(t testing.TB, path string) []Case {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read cases %s: %v", path, err)
	}
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("failed to parse cases %s: %v", path, err)
	}
	for i, c := range cases {
		if c.Name == "" {
			t.Fatalf("%s: case %d has no name", path, i)
		}
	}
	return cases
}

// LoadCaseDir reads every *.yaml file in dir, keyed by file name without
// extension.
func LoadCaseDir(t testing.TB, dir string) map[string][]Case {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		t.Fatalf("failed to list cases in %s: %v", dir, err)
	}
	if len(paths) == 0 {
		t.Fatalf("no case files in %s", dir)
	}
	slices.Sort(paths)
	out := make(map[string][]Case, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		out[name[:len(name)-len(filepath.Ext(name))]] = LoadCases(t, p)
	}
	return out
}
