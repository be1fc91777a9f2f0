// Package loader turns Go packages on disk into rewrite units using the
// go/packages driver.
package loader

import (
	"golang.org/x/tools/go/packages"

	"github.com/teranos/askit/errors"
	"github.com/teranos/askit/logger"
	"github.com/teranos/askit/rewrite"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Load type-checks the packages matched by patterns and returns one rewrite
// unit per source file. Packages with load or type errors abort the pass;
// partial type information would make variable resolution unreliable.
func Load(dir string, patterns ...string) ([]*rewrite.Unit, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Mode: loadMode,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "loading packages")
	}

	var units []*rewrite.Unit
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			for _, pkgErr := range pkg.Errors {
				logger.Logger.Errorw("package error", "package", pkg.PkgPath, "error", pkgErr.Msg)
			}
			return nil, errors.Newf("package %s has %d errors", pkg.PkgPath, len(pkg.Errors))
		}

		resolver := rewrite.NewGoResolver(pkg.Types, pkg.TypesInfo)
		for _, file := range pkg.Syntax {
			units = append(units, &rewrite.Unit{
				Path:       pkg.Fset.Position(file.Pos()).Filename,
				ImportPath: pkg.PkgPath,
				Fset:       pkg.Fset,
				File:       file,
				Resolver:   resolver,
			})
		}
	}

	logger.Logger.Debugw("loaded rewrite units", "patterns", patterns, "units", len(units))
	return units, nil
}
