// receipt-scanner-app - app icon generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package generate writes the app icon files.
package generate

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oscarsailing/receipt-scanner-app/internal/icon"
	"github.com/oscarsailing/receipt-scanner-app/internal/pngenc"
)

// Target is one output image.
type Target struct {
	Size int
	Name string
}

// Targets lists the generated icons, in the order they are written.
var Targets = []Target{
	{Size: 192, Name: "icon-192.png"},
	{Size: 512, Name: "icon-512.png"},
}

// Config controls a single generator run. Zero fields take defaults.
type Config struct {
	// OutDir is the directory the icons are written to.
	// The default is the current working directory.
	OutDir string

	// Rasterizer draws the icon. The default is icon.Receipt.
	Rasterizer icon.Rasterizer

	// Encoder serialises the icon. The default is pngenc.Manual.
	Encoder pngenc.Encoder

	// Stdout receives one progress line per file. The default is os.Stdout.
	Stdout io.Writer

	// Proof, if set, is called after each PNG has been written with the
	// target and the output directory, to write additional files.
	Proof func(t Target, outDir string) (string, error)
}

// Result describes a written file.
type Result struct {
	Target
	Path  string
	Bytes int
}

func (cfg *Config) setDefaults() {
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.Rasterizer == nil {
		cfg.Rasterizer = icon.Receipt{}
	}
	if cfg.Encoder == nil {
		cfg.Encoder = pngenc.Manual{}
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
}

// Run generates all Targets. Existing files are overwritten. The run
// stops at the first error; files written before it are left in place.
func Run(cfg Config) ([]Result, error) {
	cfg.setDefaults()

	var results []Result
	for _, t := range Targets {
		res, err := writeIcon(&cfg, t)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		fmt.Fprintf(cfg.Stdout, "Created %s (%d bytes)\n", t.Name, res.Bytes)

		if cfg.Proof != nil {
			proofPath, err := cfg.Proof(t, cfg.OutDir)
			if err != nil {
				return results, fmt.Errorf("writing proof for %s: %w", t.Name, err)
			}
			fmt.Fprintf(cfg.Stdout, "Created %s\n", filepath.Base(proofPath))
		}
	}
	fmt.Fprintln(cfg.Stdout, "Done.")
	return results, nil
}

func writeIcon(cfg *Config, t Target) (Result, error) {
	b := cfg.Rasterizer.Rasterize(t.Size)

	var buf bytes.Buffer
	if err := cfg.Encoder.Encode(&buf, b); err != nil {
		return Result{}, fmt.Errorf("encoding %s: %w", t.Name, err)
	}

	fileName := filepath.Join(cfg.OutDir, t.Name)
	if err := os.WriteFile(fileName, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", t.Name, err)
	}
	return Result{Target: t, Path: fileName, Bytes: buf.Len()}, nil
}

// ProofName returns the PDF file name belonging to a target.
func ProofName(t Target) string {
	return strings.TrimSuffix(t.Name, filepath.Ext(t.Name)) + ".pdf"
}
