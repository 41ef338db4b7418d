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

package pngenc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

// Errors returned by ReadChunks.
var (
	ErrBadSignature = errors.New("pngenc: missing PNG signature")
	ErrTruncated    = errors.New("pngenc: truncated chunk")
	ErrChecksum     = errors.New("pngenc: chunk checksum mismatch")
)

// maxChunkLen is the largest data length permitted by the PNG format.
const maxChunkLen = 1<<31 - 1

// chunkWriter writes length-prefixed, checksummed chunks.
// The first write error is kept in err; later writes are skipped.
type chunkWriter struct {
	w   io.Writer
	err error
	tmp [8]byte
}

func (cw *chunkWriter) write(p []byte) {
	if cw.err != nil {
		return
	}
	_, cw.err = cw.w.Write(p)
}

func (cw *chunkWriter) writeSignature() {
	cw.write([]byte(Signature))
}

// writeChunk writes one chunk. The checksum covers the type and the
// data, never the length field.
func (cw *chunkWriter) writeChunk(typ string, data []byte) {
	binary.BigEndian.PutUint32(cw.tmp[0:4], uint32(len(data)))
	copy(cw.tmp[4:8], typ)
	cw.write(cw.tmp[:8])
	cw.write(data)

	binary.BigEndian.PutUint32(cw.tmp[0:4], Checksum(typ, data))
	cw.write(cw.tmp[:4])
}

// Checksum returns the CRC-32 of the chunk type followed by the data.
func Checksum(typ string, data []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	return crc.Sum32()
}

// Chunk is a single decoded PNG chunk.
type Chunk struct {
	Type string
	Data []byte
	CRC  uint32 // the checksum stored in the file
}

// Valid reports whether the stored checksum matches the contents.
func (c Chunk) Valid() bool {
	return c.CRC == Checksum(c.Type, c.Data)
}

// ReadChunks reads a PNG stream and returns its chunks in file order.
// Reading stops after IEND or at the end of the input. Chunks whose
// checksum does not match are returned together with ErrChecksum, so
// that callers can still report them.
func ReadChunks(r io.Reader) ([]Chunk, error) {
	var sig [len(Signature)]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return nil, ErrBadSignature
	}
	if string(sig[:]) != Signature {
		return nil, ErrBadSignature
	}

	var chunks []Chunk
	var badCRC bool
	var hdr [8]byte
	for {
		_, err := io.ReadFull(r, hdr[:])
		if err == io.EOF {
			break
		} else if err != nil {
			return chunks, ErrTruncated
		}

		n := binary.BigEndian.Uint32(hdr[0:4])
		if n > maxChunkLen {
			return chunks, fmt.Errorf("pngenc: chunk length %d too large", n)
		}
		c := Chunk{
			Type: string(hdr[4:8]),
			Data: make([]byte, n),
		}
		if _, err := io.ReadFull(r, c.Data); err != nil {
			return chunks, ErrTruncated
		}
		if _, err := io.ReadFull(r, hdr[:4]); err != nil {
			return chunks, ErrTruncated
		}
		c.CRC = binary.BigEndian.Uint32(hdr[:4])
		if !c.Valid() {
			badCRC = true
		}
		chunks = append(chunks, c)

		if c.Type == "IEND" {
			break
		}
	}

	if badCRC {
		return chunks, ErrChecksum
	}
	return chunks, nil
}
