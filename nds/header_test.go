package nds

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndshome/ndstrim/crc"
)

// buildHeader returns a valid raw header with the given unit code and
// declared ROM sizes. The logo is filled with deterministic content forged
// to checksum to LogoChecksum, and the header CRC is computed last so the
// result passes validation.
func buildHeader(t *testing.T, unitCode byte, ntrSize, twlSize uint32) []byte {
	t.Helper()

	buf := make([]byte, HeaderLength)
	copy(buf[OffsetTitle:], "TRIMTEST")
	copy(buf[OffsetGameCode:], "ATRP")
	copy(buf[OffsetMakerCode:], "01")
	buf[OffsetUnitCode] = unitCode
	binary.LittleEndian.PutUint32(buf[OffsetNTRRomSize:], ntrSize)
	binary.LittleEndian.PutUint32(buf[OffsetHeaderSize:], HeaderLength)
	binary.LittleEndian.PutUint32(buf[OffsetNTRTWLRomSize:], twlSize)

	fillLogo(t, buf[OffsetLogo:OffsetLogo+LogoLength])
	binary.LittleEndian.PutUint16(buf[OffsetLogoCRC:], LogoChecksum)
	refreshHeaderCRC(buf)

	return buf
}

// refreshHeaderCRC recomputes the header CRC field after buf was modified.
func refreshHeaderCRC(buf []byte) {
	sum := crc.Checksum(buf[:HeaderCRCRange])
	binary.LittleEndian.PutUint16(buf[OffsetHeaderCRC:], sum)
}

// fillLogo writes deterministic content whose checksum equals LogoChecksum.
// The first 154 bytes are a fixed pattern; the final two are brute-forced to
// land the CRC on the required value.
func fillLogo(t *testing.T, logo []byte) {
	t.Helper()

	for i := 0; i < len(logo)-2; i++ {
		logo[i] = byte(i*7 + 3)
	}
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			logo[len(logo)-2] = byte(a)
			logo[len(logo)-1] = byte(b)
			if crc.Checksum(logo) == LogoChecksum {
				return
			}
		}
	}
	t.Fatal("no 2-byte suffix lands the logo checksum on the required value")
}

func TestParseHeader(t *testing.T) {
	buf := buildHeader(t, 0x00, 0x20000, 0x40000)

	h, err := ParseHeader(buf)
	require.NoError(t, err)

	assert.Equal(t, "TRIMTEST", h.Title)
	assert.Equal(t, "ATRP", h.GameCode)
	assert.Equal(t, "01", h.MakerCode)
	assert.Equal(t, byte(0x00), h.UnitCode)
	assert.True(t, h.NTROnly())
	assert.Equal(t, uint32(0x20000), h.NTRRomSize)
	assert.Equal(t, uint32(HeaderLength), h.HeaderSize)
	assert.Equal(t, uint32(0x40000), h.NTRTWLRomSize)
	assert.Equal(t, uint16(LogoChecksum), crc.Checksum(h.Logo[:]))
}

func TestParseHeaderDualMode(t *testing.T) {
	buf := buildHeader(t, 0x02, 0x20000, 0x40000)

	h, err := ParseHeader(buf)
	require.NoError(t, err)
	assert.False(t, h.NTROnly())
}

func TestParseHeaderBadHeaderCRC(t *testing.T) {
	buf := buildHeader(t, 0x00, 0x20000, 0x40000)
	buf[OffsetUnitCode] ^= 0xFF // invalidates the stored header CRC

	_, err := ParseHeader(buf)
	require.Error(t, err)
	assert.True(t, IsMalformedHeader(err))
}

func TestParseHeaderBadLogo(t *testing.T) {
	buf := buildHeader(t, 0x00, 0x20000, 0x40000)
	buf[OffsetLogo] ^= 0xFF
	// keep the header CRC consistent so only the logo check can fail
	refreshHeaderCRC(buf)

	_, err := ParseHeader(buf)
	require.Error(t, err)
	assert.True(t, IsMalformedHeader(err))
}

func TestParseHeaderLogoCRCFieldIgnored(t *testing.T) {
	// the self-reported logo CRC field is informational; a bogus value must
	// not fail validation as long as the computed logo checksum is correct
	buf := buildHeader(t, 0x00, 0x20000, 0x40000)
	binary.LittleEndian.PutUint16(buf[OffsetLogoCRC:], 0x1234)
	refreshHeaderCRC(buf)

	h, err := ParseHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), h.LogoCRC)
}

func TestParseHeaderShortBuffer(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderLength-1))
	require.Error(t, err)
	assert.False(t, IsMalformedHeader(err))
	assert.False(t, IsAlreadyTrimmed(err))
}

func TestReadHeader(t *testing.T) {
	buf := buildHeader(t, 0x00, 0x20000, 0x40000)

	h, err := ReadHeader(bytes.NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, "TRIMTEST", h.Title)
}

func TestReadHeaderShortReader(t *testing.T) {
	buf := buildHeader(t, 0x00, 0x20000, 0x40000)

	_, err := ReadHeader(bytes.NewReader(buf[:0x200]))
	require.Error(t, err)
	assert.False(t, IsMalformedHeader(err))
}
