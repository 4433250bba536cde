// Package nds provides parsing, validation and trimming for Nintendo DS(i)
// ROM images.
//
// # Header Format
//
// Every ROM starts with a fixed 4 KiB header. Multi-byte integers are
// little-endian and all offsets are exact; the fields relevant to trimming
// are:
//
//	offset  size  field
//	0x000   12    title
//	0x00C   4     game code
//	0x010   2     maker code
//	0x012   1     unit code (0x00 = NTR-only, otherwise NTR+TWL)
//	0x080   4     NTR ROM size
//	0x084   4     header size
//	0x0C0   156   Nintendo logo image
//	0x15C   2     Nintendo logo CRC (self-reported, not validated)
//	0x15E   2     header CRC, covering bytes [0x000, 0x15E)
//	0x210   4     NTR+TWL ROM size
//
// A header is valid when its header CRC matches the computed checksum of the
// first 0x15E bytes and the logo image's checksum equals the fixed value
// 0xCF56 shared by all licensed ROMs.
//
// # Trimming
//
// The declared ROM size marks the end of meaningful content; everything
// beyond it is padding added to reach a power-of-two cartridge size. NTR+TWL
// ROMs are trimmed to the NTR+TWL ROM size verbatim. NTR-only ROMs are
// trimmed to the NTR ROM size, extended by 0x88 bytes when an RSA
// certificate follows the ROM data (required by some titles for Download
// Play).
//
// # Usage
//
// Open a ROM and trim it in place:
//
//	rom, err := nds.Open("game.nds")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rom.Close()
//
//	fmt.Printf("trimming from %d to %d bytes\n", rom.Size(), rom.TrimmedSize())
//	if err := rom.Trim(); err != nil {
//	    log.Fatal(err)
//	}
//
// Or write the trimmed image to a new file, leaving the source untouched:
//
//	err = rom.TrimTo("game.trim.nds")
//
// # Error Handling
//
// Open distinguishes three failure classes: ErrMalformedHeader for checksum
// mismatches, ErrAlreadyTrimmed when a file has no padding to remove, and
// wrapped I/O errors for everything else. Hitting end-of-file while probing
// for the certificate marker is deliberately reported as ErrAlreadyTrimmed
// rather than an I/O failure.
package nds
