package nds

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/ndshome/ndstrim/crc"
)

// Header format constants. All offsets are into the raw header buffer and
// all multi-byte fields are little-endian.
const (
	// HeaderLength is the total length of the header in bytes
	HeaderLength = 0x1000

	// HeaderCRCRange is the number of leading header bytes covered by the
	// header CRC
	HeaderCRCRange = 0x15E

	// LogoLength is the length of the Nintendo logo image in bytes
	LogoLength = 156

	// LogoChecksum is the checksum of the logo image in every valid ROM
	LogoChecksum = 0xCF56

	// TitleLength is the length of the title field in bytes
	TitleLength = 12

	// GameCodeLength is the length of the game code field in bytes
	GameCodeLength = 4

	// MakerCodeLength is the length of the maker code field in bytes
	MakerCodeLength = 2
)

// Field offsets within the header.
const (
	OffsetTitle         = 0x000
	OffsetGameCode      = 0x00C
	OffsetMakerCode     = 0x010
	OffsetUnitCode      = 0x012
	OffsetNTRRomSize    = 0x080
	OffsetHeaderSize    = 0x084
	OffsetLogo          = 0x0C0
	OffsetLogoCRC       = 0x15C
	OffsetHeaderCRC     = 0x15E
	OffsetNTRTWLRomSize = 0x210
)

// Header is the parsed and validated ROM header.
type Header struct {
	// Title is the short game title, NUL padding removed
	Title string

	// GameCode is the 4-character game code
	GameCode string

	// MakerCode is the 2-character licensee code
	MakerCode string

	// UnitCode discriminates the target hardware:
	//   0x00 = NTR-only (original DS)
	//   else = NTR+TWL (DS and DSi)
	UnitCode byte

	// NTRRomSize is the declared content size of an NTR-only ROM
	NTRRomSize uint32

	// HeaderSize is the header size the ROM declares for itself
	HeaderSize uint32

	// Logo is the fixed logo image displayed at boot
	Logo [LogoLength]byte

	// LogoCRC is the checksum the ROM reports for its logo image. It is
	// informational only: validation checks the computed logo checksum
	// against the fixed LogoChecksum constant, never against this field.
	LogoCRC uint16

	// HeaderCRC is the checksum the ROM reports for bytes [0, 0x15E) of
	// the header
	HeaderCRC uint16

	// NTRTWLRomSize is the declared content size of an NTR+TWL ROM
	NTRTWLRomSize uint32
}

// NTROnly returns true if the header belongs to a ROM for the original
// hardware generation only.
func (h *Header) NTROnly() bool {
	return h.UnitCode == 0x00
}

// ParseHeader parses and validates a raw header buffer.
//
// The buffer must hold at least HeaderLength bytes. The header CRC is
// recomputed over the first HeaderCRCRange bytes and the logo checksum over
// the logo image; a mismatch on either returns ErrMalformedHeader.
func ParseHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderLength {
		return nil, fmt.Errorf("short header: got %d bytes, expected %d", len(buf), HeaderLength)
	}

	h := &Header{
		Title:         trimTitle(buf[OffsetTitle : OffsetTitle+TitleLength]),
		GameCode:      string(buf[OffsetGameCode : OffsetGameCode+GameCodeLength]),
		MakerCode:     string(buf[OffsetMakerCode : OffsetMakerCode+MakerCodeLength]),
		UnitCode:      buf[OffsetUnitCode],
		NTRRomSize:    binary.LittleEndian.Uint32(buf[OffsetNTRRomSize:]),
		HeaderSize:    binary.LittleEndian.Uint32(buf[OffsetHeaderSize:]),
		LogoCRC:       binary.LittleEndian.Uint16(buf[OffsetLogoCRC:]),
		HeaderCRC:     binary.LittleEndian.Uint16(buf[OffsetHeaderCRC:]),
		NTRTWLRomSize: binary.LittleEndian.Uint32(buf[OffsetNTRTWLRomSize:]),
	}
	copy(h.Logo[:], buf[OffsetLogo:OffsetLogo+LogoLength])

	if sum := crc.Checksum(buf[:HeaderCRCRange]); sum != h.HeaderCRC {
		return nil, fmt.Errorf("%w: header checksum 0x%04X, computed 0x%04X", ErrMalformedHeader, h.HeaderCRC, sum)
	}
	if sum := crc.Checksum(h.Logo[:]); sum != LogoChecksum {
		return nil, fmt.Errorf("%w: logo checksum 0x%04X, expected 0x%04X", ErrMalformedHeader, sum, LogoChecksum)
	}

	return h, nil
}

// ReadHeader reads HeaderLength bytes from r and parses them. A reader that
// runs out of bytes before a full header is read is an I/O failure, not a
// malformed header.
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	return ParseHeader(buf)
}

// trimTitle strips the NUL padding from a raw title field.
func trimTitle(raw []byte) string {
	return strings.TrimRight(string(raw), "\x00")
}
