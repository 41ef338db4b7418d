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

// Package pngenc writes icon buffers as PNG files.
//
// The Manual encoder emits the smallest valid container: the signature
// followed by one IHDR, one IDAT and one IEND chunk, with unfiltered
// 8-bit RGBA scanlines.
package pngenc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image/png"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/oscarsailing/receipt-scanner-app/internal/icon"
)

// Signature is the fixed 8-byte PNG file header.
const Signature = "\x89PNG\r\n\x1a\n"

// IHDR field values used by the Manual encoder.
const (
	bitDepth8     = 8
	colorTypeRGBA = 6
	filterNone    = 0
)

// ErrInvalidBuffer is returned when asked to encode an empty or
// non-square buffer.
var ErrInvalidBuffer = errors.New("pngenc: buffer must be square and non-empty")

// Encoder serialises a pixel buffer as a PNG stream.
type Encoder interface {
	Encode(w io.Writer, b *icon.Buffer) error
}

// Manual builds the PNG container by hand.
type Manual struct{}

// Encode writes b to w as an RGBA PNG.
func (Manual) Encode(w io.Writer, b *icon.Buffer) error {
	if !b.Square() {
		return ErrInvalidBuffer
	}

	idat, err := compressScanlines(b)
	if err != nil {
		return err
	}

	cw := &chunkWriter{w: w}
	cw.writeSignature()
	cw.writeChunk("IHDR", Header{
		Width:     uint32(b.Width),
		Height:    uint32(b.Height),
		BitDepth:  bitDepth8,
		ColorType: colorTypeRGBA,
	}.Bytes())
	cw.writeChunk("IDAT", idat)
	cw.writeChunk("IEND", nil)
	return cw.err
}

// Scanlines returns the uncompressed image data: every row is prefixed
// with a filter-type byte of zero, followed by 4 bytes per pixel in
// R, G, B, A order.
func Scanlines(b *icon.Buffer) []byte {
	stride := 1 + 4*b.Width
	raw := make([]byte, 0, stride*b.Height)
	for y := range b.Height {
		raw = append(raw, filterNone)
		for _, p := range b.Row(y) {
			raw = append(raw, p.R, p.G, p.B, p.A)
		}
	}
	return raw
}

// compressScanlines returns the zlib stream for the IDAT chunk.
func compressScanlines(b *icon.Buffer) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(Scanlines(b)); err != nil {
		return nil, fmt.Errorf("compressing scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compressing scanlines: %w", err)
	}
	return buf.Bytes(), nil
}

// Header holds the fields of an IHDR chunk.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          byte
	ColorType         byte
	CompressionMethod byte
	FilterMethod      byte
	InterlaceMethod   byte
}

// headerLen is the size of the IHDR chunk data.
const headerLen = 13

// Bytes returns the 13-byte IHDR chunk data.
func (h Header) Bytes() []byte {
	data := make([]byte, headerLen)
	binary.BigEndian.PutUint32(data[0:4], h.Width)
	binary.BigEndian.PutUint32(data[4:8], h.Height)
	data[8] = h.BitDepth
	data[9] = h.ColorType
	data[10] = h.CompressionMethod
	data[11] = h.FilterMethod
	data[12] = h.InterlaceMethod
	return data
}

// ParseHeader decodes IHDR chunk data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) != headerLen {
		return Header{}, fmt.Errorf("pngenc: IHDR has %d bytes, want %d", len(data), headerLen)
	}
	return Header{
		Width:             binary.BigEndian.Uint32(data[0:4]),
		Height:            binary.BigEndian.Uint32(data[4:8]),
		BitDepth:          data[8],
		ColorType:         data[9],
		CompressionMethod: data[10],
		FilterMethod:      data[11],
		InterlaceMethod:   data[12],
	}, nil
}

// Std delegates to the standard library's image/png encoder.
type Std struct{}

// Encode writes b to w using image/png.
func (Std) Encode(w io.Writer, b *icon.Buffer) error {
	if !b.Square() {
		return ErrInvalidBuffer
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, b.Image())
}
