// Package fixture embeds the encoded inputs the benchmarks decode. There are
// two sets: Current (data/) and Legacy (testdata/). Files with the same name in
// both sets are versioned independently and need not be byte-identical.
package fixture

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Set selects one of the embedded fixture directories.
type Set string

const (
	Current Set = "data"
	Legacy  Set = "testdata"
)

//go:embed data/*
var current embed.FS

//go:embed testdata/*
var legacy embed.FS

// Fixture is a named, read-only encoded input.
type Fixture struct {
	Set  Set
	Name string
	Data []byte
}

// Slice returns a fixture whose Data is f.Data[lo:hi], e.g. the raw deflate
// stream inside a gzip file.
func (f Fixture) Slice(lo, hi int) Fixture {
	return Fixture{
		Set:  f.Set,
		Name: fmt.Sprintf("%s[%d:%d]", f.Name, lo, hi),
		Data: f.Data[lo:hi:hi],
	}
}

func (s Set) fs() (fs.FS, error) {
	switch s {
	case Current:
		return current, nil
	case Legacy:
		return legacy, nil
	default:
		return nil, fmt.Errorf("%s is not a fixture set", s)
	}
}

// Load reads name from set.
func Load(set Set, name string) (Fixture, error) {
	fsys, err := set.fs()
	if err != nil {
		return Fixture{}, err
	}
	b, err := fs.ReadFile(fsys, string(set)+"/"+name)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture %s/%s: %w", set, name, err)
	}
	return Fixture{Set: set, Name: name, Data: b}, nil
}

// MustLoad is like Load but panics on error. It is meant for static tables.
func MustLoad(set Set, name string) Fixture {
	f, err := Load(set, name)
	if err != nil {
		panic(err)
	}
	return f
}

// Names lists the files in set, sorted.
func Names(set Set) ([]string, error) {
	fsys, err := set.fs()
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(fsys, string(set))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
