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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oscarsailing/receipt-scanner-app/internal/pngenc"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "List the chunks of a PNG file and verify their checksums",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	fileName := args[0]
	f, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("reading %s: %w", fileName, err)
	}
	defer f.Close()

	chunks, err := pngenc.ReadChunks(f)
	if err != nil && !errors.Is(err, pngenc.ErrChecksum) {
		return fmt.Errorf("parsing %s: %w", fileName, err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "File: %s\n", fileName)
	for _, c := range chunks {
		status := "ok"
		if !c.Valid() {
			status = "BAD CRC"
		}
		fmt.Fprintf(w, "  %s  %8d bytes  crc %08x  %s\n", c.Type, len(c.Data), c.CRC, status)

		if c.Type == "IHDR" {
			if h, herr := pngenc.ParseHeader(c.Data); herr == nil {
				fmt.Fprintf(w, "        %d x %d, depth %d, colour type %d, interlace %d\n",
					h.Width, h.Height, h.BitDepth, h.ColorType, h.InterlaceMethod)
			}
		}
	}
	return err
}
