// Package brawllib parses the binary artifacts of the Brawl modding
// ecosystem into structured in-memory representations: WiiRD/Gecko code
// lists into a nested code tree (see the wiird package) and PSA action
// script tables into typed scripts (see the psa package).
//
// Parse failures inside a code or event stream are reported through the
// zerolog global logger and yield a partial result; this package emits
// log events but never configures the sink.
package brawllib

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GamendeMier/brawllib/internal/utils"
	"github.com/GamendeMier/brawllib/wiird"
)

// The codeset a Brawl mod patches the game with. It is usually located in
// the codes folder but can also be in the main sub folder, e.g. LXP 2.1,
// so every subdirectory of the mod root is checked.
const codesetName = "RSBE01.gct"

// BrawlMod locates mod artifacts under a brawl dump and an optional mod
// directory. It is very cheap to create; all the actual work happens in
// the Load* methods.
type BrawlMod struct {
	brawlPath string
	modPath   string
}

// New returns a BrawlMod for the given brawl dump path and mod path. An
// empty modPath means vanilla brawl.
func New(brawlPath, modPath string) *BrawlMod {
	return &BrawlMod{
		brawlPath: brawlPath,
		modPath:   modPath,
	}
}

// LoadWiiRDCodesetRaw locates the mod's gct codeset and returns its raw
// code stream with the 8 byte header removed.
func (m *BrawlMod) LoadWiiRDCodesetRaw() ([]byte, error) {
	codesetPath, err := m.findCodeset()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(codesetPath)
	if err != nil {
		return nil, &utils.CodesetError{Path: codesetPath, Cause: err}
	}
	if len(data) < 8 {
		return nil, fmt.Errorf("not a WiiRD gct codeset file %q: file size is less than 8 bytes", codesetPath)
	}
	return data[8:], nil // Skip the header.
}

// LoadWiiRDCodeset locates the mod's gct codeset and decodes it.
func (m *BrawlMod) LoadWiiRDCodeset() (wiird.Block, error) {
	codesetPath, err := m.findCodeset()
	if err != nil {
		return wiird.Block{}, err
	}
	return wiird.LoadGCT(codesetPath)
}

func (m *BrawlMod) findCodeset() (string, error) {
	if m.modPath == "" {
		return "", errors.New("not a mod, vanilla brawl does not have a WiiRD codeset")
	}

	entries, err := os.ReadDir(m.modPath)
	if err != nil {
		return "", fmt.Errorf("cannot read brawl mod directory %q: %w", m.modPath, err)
	}
	for _, entry := range entries {
		codesetPath := filepath.Join(m.modPath, entry.Name(), codesetName)
		if _, err := os.Stat(codesetPath); err == nil {
			return codesetPath, nil
		}
	}
	return "", fmt.Errorf("cannot find the WiiRD codeset (%s) in any subdirectory of %q", codesetName, m.modPath)
}
