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

// Command genicons writes icon-192.png and icon-512.png for the
// receipt scanner web app.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oscarsailing/receipt-scanner-app/internal/card"
	"github.com/oscarsailing/receipt-scanner-app/internal/generate"
	"github.com/oscarsailing/receipt-scanner-app/internal/icon"
	"github.com/oscarsailing/receipt-scanner-app/internal/pngenc"
	"github.com/oscarsailing/receipt-scanner-app/internal/scene"
)

var rootCmd = &cobra.Command{
	Use:           "genicons",
	Short:         "Generate the app icons (icon-192.png, icon-512.png)",
	Args:          cobra.NoArgs,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringP("out", "o", ".", "Output directory")
	rootCmd.Flags().String("design", "receipt", "Icon design (receipt, card)")
	rootCmd.Flags().String("encoder", "manual", "PNG encoder (manual, std)")
	rootCmd.Flags().Bool("proof", false, "Also write vector PDF proofs (card design only)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out")
	design, _ := cmd.Flags().GetString("design")
	encoder, _ := cmd.Flags().GetString("encoder")
	proof, _ := cmd.Flags().GetBool("proof")

	cfg := generate.Config{
		OutDir: outDir,
		Stdout: cmd.OutOrStdout(),
	}

	switch design {
	case "receipt":
		cfg.Rasterizer = icon.Receipt{}
	case "card":
		cfg.Rasterizer = card.Card{}
	default:
		return fmt.Errorf("unknown design %q", design)
	}

	switch encoder {
	case "manual":
		cfg.Encoder = pngenc.Manual{}
	case "std":
		cfg.Encoder = pngenc.Std{}
	default:
		return fmt.Errorf("unknown encoder %q", encoder)
	}

	if proof {
		if design != "card" {
			return fmt.Errorf("--proof needs --design card")
		}
		cfg.Proof = writeProof
	}

	_, err := generate.Run(cfg)
	return err
}

func writeProof(t generate.Target, outDir string) (string, error) {
	fileName := filepath.Join(outDir, generate.ProofName(t))
	return fileName, scene.WriteProofFile(card.Scene(t.Size), fileName)
}
