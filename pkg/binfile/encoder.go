// Package binfile serializes the reconciled star registry into the compact
// positionally-indexed binary catalog format.
//
// The stream is written in registry-key order. A reader reconstructs block
// membership from three 0xFE category markers and primary-block gaps from
// 0xFF bytes, so the writer must emit exactly one entry per key with no
// reordering. Layout per record:
//
//	flamsteed      uint8
//	bayer rank     uint8
//	bayer index    uint8
//	constellation  uint8
//	RA             float32 (float64 when the 0xFD header flag is present)
//	Dec            float32 (or float64)
//	pm RA          float32
//	pm Dec         float32
//	magnitude      uint8, quantized
//	trailer        block-dependent (see encodeTrailer)
//	name length    uint8
//	name           raw UTF-8 bytes
package binfile

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/agentstation/skymap/pkg/catalog"
	"github.com/agentstation/skymap/pkg/errors"
)

// Framing bytes of the catalog stream.
const (
	// DoublePrecisionFlag is the optional single leading byte signalling
	// that coordinates are 8-byte doubles. Absence means 4-byte floats.
	DoublePrecisionFlag = 0xFD

	// BlockMarker advances the reader to the next record category. Two
	// consecutive markers skip an empty category.
	BlockMarker = 0xFE

	// GapByte stands in for an absent primary-block key.
	GapByte = 0xFF
)

// byteOrder is the integer byte order of all multi-byte fields.
var byteOrder = binary.LittleEndian

// Options configures the encoder.
type Options struct {
	// DoublePrecision writes coordinates as float64 and emits the
	// leading 0xFD flag.
	DoublePrecision bool
}

// Write serializes the registry to w in key order 1..Last. Any write
// failure aborts immediately: partial output is unusable by readers that
// depend on exact block boundaries, so callers must discard it.
func Write(w io.Writer, reg *catalog.Registry, opts Options) error {
	bw := bufio.NewWriter(w)
	enc := &encoder{w: bw, reg: reg, double: opts.DoublePrecision}

	if opts.DoublePrecision {
		enc.byte(DoublePrecisionFlag)
	}

	// Primary block: the only block where keys may be absent.
	for key := 1; key <= reg.PrimaryEnd(); key++ {
		if rec, ok := reg.Get(key); ok {
			enc.record(rec)
		} else {
			enc.byte(GapByte)
		}
	}

	enc.byte(BlockMarker)
	enc.block(reg.PrimaryEnd()+1, reg.BrightEnd())
	enc.byte(BlockMarker)
	enc.block(reg.BrightEnd()+1, reg.AstroEnd())
	enc.byte(BlockMarker)
	enc.block(reg.AstroEnd()+1, reg.Last())

	if enc.err != nil {
		return errors.WrapIO("write", "catalog", enc.err)
	}
	if err := bw.Flush(); err != nil {
		return errors.WrapIO("flush", "catalog", err)
	}
	return nil
}

// QuantizeMagnitude maps a visual magnitude to its single-byte encoding:
// clamp(round((mag + 2.0) * 10), 0, 255). The unknown-magnitude sentinel
// saturates to 255.
func QuantizeMagnitude(mag float64) byte {
	q := math.Round((mag + 2.0) * 10)
	if q < 0 {
		return 0
	}
	if q > 255 {
		return 255
	}
	return byte(q)
}

// encoder tracks the first write error so the hot path stays unconditional.
type encoder struct {
	w      io.Writer
	reg    *catalog.Registry
	double bool
	err    error
}

// block writes the dense key range [from, to].
func (e *encoder) block(from, to int) {
	for key := from; key <= to; key++ {
		if rec, ok := e.reg.Get(key); ok {
			e.record(rec)
		}
	}
}

func (e *encoder) record(rec *catalog.StarRecord) {
	e.byte(byte(rec.Flamsteed))
	e.byte(byte(rec.BayerRank))
	e.byte(byte(rec.BayerIndex))
	e.byte(byte(rec.Constellation))

	e.coord(rec.RA)
	e.coord(rec.Dec)
	e.write(float32(rec.PMRA))
	e.write(float32(rec.PMDec))

	e.byte(QuantizeMagnitude(rec.Mag))

	e.encodeTrailer(rec)

	name := rec.Name
	if len(name) > 255 {
		name = name[:255]
	}
	e.byte(byte(len(name)))
	if e.err == nil && len(name) > 0 {
		_, e.err = e.w.Write([]byte(name))
	}
}

// encodeTrailer writes the block-dependent identifier trailer. Block
// membership follows from the record's key and the sealed boundaries.
func (e *encoder) encodeTrailer(rec *catalog.StarRecord) {
	switch {
	case rec.Key > e.reg.AstroEnd():
		// Deep-sky: signed catalog number (NGC positive, IC negative)
		// plus the Messier number.
		e.write(int16(rec.DeepSky.Signed()))
		e.byte(byte(rec.Messier))
	case rec.Key > e.reg.BrightEnd():
		// Astrometry: 24-bit identifier, high byte then 16-bit low word.
		e.byte(byte(rec.HIP >> 16))
		e.write(uint16(rec.HIP & 0xFFFF))
	case rec.Key > e.reg.PrimaryEnd():
		e.write(uint16(rec.HR))
	default:
		// Primary block records carry no trailer.
	}
}

// coord writes a coordinate at the stream's configured precision.
func (e *encoder) coord(v float64) {
	if e.double {
		e.write(v)
	} else {
		e.write(float32(v))
	}
}

func (e *encoder) byte(b byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write([]byte{b})
}

func (e *encoder) write(v any) {
	if e.err != nil {
		return
	}
	e.err = binary.Write(e.w, byteOrder, v)
}
