// Package config resolves where puzzle inputs live.
package config

import (
	"os"
	"path/filepath"

	"github.com/dshills/aoc2023/internal/input"
)

// EnvHome names the environment variable holding the project root.
const EnvHome = "AOC_HOME"

// ResolveHome picks the project root holding puzzle_inputs/. An explicit
// value wins, then $AOC_HOME, then the nearest ancestor of the working
// directory that has a puzzle_inputs directory, then the working directory.
func ResolveHome(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvHome); env != "" {
		return env, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if root, ok := FindRoot(wd); ok {
		return root, nil
	}
	return wd, nil
}

// FindRoot walks up from start looking for a directory containing puzzle_inputs.
func FindRoot(start string) (string, bool) {
	dir := filepath.Clean(start)
	for {
		fi, err := os.Stat(filepath.Join(dir, input.Dir))
		if err == nil && fi.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
