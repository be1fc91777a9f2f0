package rewrite

import (
	"os"
	"path/filepath"
)

// GeneratedModuleRef is the deterministic pairing of a generated
// implementation module's on-disk path and its presence. Existence is the
// single bit that selects the rewrite strategy for a call.
type GeneratedModuleRef struct {
	Path   string
	Exists bool
}

// ResolveGeneratedModule computes the conventional location of a previously
// generated implementation module for (source unit path, synthesized name):
// the unit's directory, the fixed subfolder, the name, the source extension.
// Pure function of its inputs plus one filesystem existence check; results
// are not cached across units.
func ResolveGeneratedModule(unitPath, subdir, name string) GeneratedModuleRef {
	p := filepath.Join(filepath.Dir(unitPath), subdir, name+".go")
	_, err := os.Stat(p)
	return GeneratedModuleRef{Path: p, Exists: err == nil}
}
