// Package formats provides codecs for landscape data formats.
package formats

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/nvollmar/landforge/internal/terrain"
)

// Landblock terrain format errors.
var (
	ErrInvalidLandblockMagic       = errors.New("invalid landblock magic: expected 'LBTR'")
	ErrUnsupportedLandblockVersion = errors.New("unsupported landblock version")
	ErrTruncatedLandblockData      = errors.New("truncated landblock data")
)

// On-disk layout: 4-byte magic "LBTR", version [major, minor], then 81
// packed corner samples of 3 bytes each: a little-endian uint16
// bitfield (road bits 0-1, terrain type bits 2-6, scenery bits 11-15)
// followed by a height table index byte. The bitfield layout is part
// of the terrain document contract and must not change.
const (
	landblockMagic     = "LBTR"
	landblockHeaderLen = 6
	entryLen           = 3
	LandblockDataLen   = landblockHeaderLen + terrain.EntriesPerLandblock*entryLen

	roadMask     = 0x0003
	typeShift    = 2
	typeMask     = 0x001f
	sceneryShift = 11
	sceneryMask  = 0x001f
)

// EncodeLandblock serializes 81 terrain entries into the landblock
// terrain format.
func EncodeLandblock(entries []terrain.TerrainEntry) ([]byte, error) {
	if len(entries) != terrain.EntriesPerLandblock {
		return nil, fmt.Errorf("%d terrain entries, want %d", len(entries), terrain.EntriesPerLandblock)
	}

	data := make([]byte, LandblockDataLen)
	copy(data, landblockMagic)
	data[4] = 1 // major
	data[5] = 0 // minor

	for i, e := range entries {
		bits := uint16(e.Road)&roadMask |
			(uint16(e.Type)&typeMask)<<typeShift |
			(uint16(e.Scenery)&sceneryMask)<<sceneryShift
		off := landblockHeaderLen + i*entryLen
		binary.LittleEndian.PutUint16(data[off:], bits)
		data[off+2] = e.Height
	}
	return data, nil
}

// DecodeLandblock parses landblock terrain data into 81 entries.
func DecodeLandblock(data []byte) ([]terrain.TerrainEntry, error) {
	if len(data) < landblockHeaderLen {
		return nil, ErrTruncatedLandblockData
	}
	if string(data[0:4]) != landblockMagic {
		return nil, ErrInvalidLandblockMagic
	}
	if data[4] != 1 {
		return nil, fmt.Errorf("%w: %d.%d", ErrUnsupportedLandblockVersion, data[4], data[5])
	}
	if len(data) < LandblockDataLen {
		return nil, ErrTruncatedLandblockData
	}

	entries := make([]terrain.TerrainEntry, terrain.EntriesPerLandblock)
	for i := range entries {
		off := landblockHeaderLen + i*entryLen
		bits := binary.LittleEndian.Uint16(data[off:])
		entries[i] = terrain.TerrainEntry{
			Road:    byte(bits & roadMask),
			Type:    byte((bits >> typeShift) & typeMask),
			Scenery: byte((bits >> sceneryShift) & sceneryMask),
			Height:  data[off+2],
		}
	}
	return entries, nil
}
