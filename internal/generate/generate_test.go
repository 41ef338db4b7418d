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

package generate

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oscarsailing/receipt-scanner-app/internal/card"
	"github.com/oscarsailing/receipt-scanner-app/internal/icon"
	"github.com/oscarsailing/receipt-scanner-app/internal/pngenc"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	results, err := Run(Config{OutDir: dir, Stdout: &out})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	for i, want := range Targets {
		res := results[i]
		data, err := os.ReadFile(filepath.Join(dir, want.Name))
		if err != nil {
			t.Fatal(err)
		}
		if len(data) == 0 || len(data) != res.Bytes {
			t.Errorf("%s: %d bytes on disk, result says %d", want.Name, len(data), res.Bytes)
		}

		chunks, err := pngenc.ReadChunks(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s: %v", want.Name, err)
		}
		hdr, err := pngenc.ParseHeader(chunks[0].Data)
		if err != nil {
			t.Fatal(err)
		}
		if int(hdr.Width) != want.Size || int(hdr.Height) != want.Size {
			t.Errorf("%s: IHDR says %dx%d", want.Name, hdr.Width, hdr.Height)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s: %v", want.Name, err)
		}
		if !icon.FromImage(img).Equal(icon.Receipt{}.Rasterize(want.Size)) {
			t.Errorf("%s: decoded pixels differ from the rasterizer output", want.Name)
		}
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || lines[2] != "Done." {
		t.Errorf("unexpected output:\n%s", out.String())
	}
	if !strings.HasPrefix(lines[0], "Created icon-192.png (") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestRunOverwrites(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "icon-192.png")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(Config{OutDir: dir, Stdout: io.Discard}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte(pngenc.Signature)) {
		t.Error("existing file was not replaced")
	}
}

func TestRunMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	results, err := Run(Config{OutDir: dir, Stdout: io.Discard})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want fs.ErrNotExist", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results after failure", len(results))
	}
	if !strings.Contains(err.Error(), "icon-192.png") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestRunAlternateBackends(t *testing.T) {
	dir := t.TempDir()
	var proofs []string
	cfg := Config{
		OutDir:     dir,
		Rasterizer: card.Card{},
		Encoder:    pngenc.Std{},
		Stdout:     io.Discard,
		Proof: func(tg Target, outDir string) (string, error) {
			name := filepath.Join(outDir, ProofName(tg))
			proofs = append(proofs, name)
			return name, os.WriteFile(name, []byte("%PDF-"), 0o644)
		},
	}
	if _, err := Run(cfg); err != nil {
		t.Fatal(err)
	}
	for _, tg := range Targets {
		data, err := os.ReadFile(filepath.Join(dir, tg.Name))
		if err != nil {
			t.Fatal(err)
		}
		cfgImg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		if cfgImg.Width != tg.Size || cfgImg.Height != tg.Size {
			t.Errorf("%s: %dx%d", tg.Name, cfgImg.Width, cfgImg.Height)
		}
	}
	if len(proofs) != 2 || filepath.Base(proofs[1]) != "icon-512.pdf" {
		t.Errorf("proofs = %v", proofs)
	}
}

func TestProofError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(Config{
		OutDir: t.TempDir(),
		Stdout: io.Discard,
		Proof:  func(Target, string) (string, error) { return "", boom },
	})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want boom", err)
	}
}
