package main

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/script"
)

//go:embed scripts/circle.lua
var circleScript string

// scripts prefers the files in the scripts directory over the embedded defaults.
type scripts struct {
	engine *script.Engine
	dir    string
}

func loadScripts(engine *script.Engine, dir string) (*scripts, error) {
	// shared functions are optional
	if path := filepath.Join(dir, "init.lua"); fileExists(path) {
		if err := engine.DoFile(path); err != nil {
			return nil, err
		}
	}

	return &scripts{engine: engine, dir: dir}, nil
}

func (s *scripts) Sequence(seq *pulse.Sequence, name string, embedded string, funcs script.Funcs) error {
	if path := filepath.Join(s.dir, name); fileExists(path) {
		return s.engine.SequenceFile(seq, path, funcs)
	}

	return s.engine.Sequence(seq, embedded, funcs)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
