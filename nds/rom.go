package nds

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Certificate marker constants. Some NTR-only titles carry an RSA
// certificate directly after the ROM data; it must survive trimming for
// Download Play to keep working.
const (
	// CertificateLength is the length of the certificate region in bytes
	CertificateLength = 0x88

	// certificateMarkerLength is the length of the marker probe
	certificateMarkerLength = 2
)

// certificateMarker is the signature at the start of a certificate region.
// Equals "ac".
var certificateMarker = [certificateMarkerLength]byte{0x61, 0x63}

// File is an open, validated ROM image.
//
// A File is created by Open and owns its underlying file handle until Close
// is called. It is not safe for concurrent use.
type File struct {
	handle *os.File
	header *Header

	// size is the on-disk file size recorded at open time
	size int64

	// trimmedSize is the computed end of meaningful content
	trimmedSize int64
}

// Open opens the ROM at path for reading and writing and validates it.
//
// The header is read and verified, the content size is computed, and the
// file is left open for a subsequent Trim or TrimTo. Open fails with
// ErrMalformedHeader when validation fails and with ErrAlreadyTrimmed when
// the file holds no padding beyond the computed content size.
func Open(path string) (*File, error) {
	handle, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	header, err := ReadHeader(handle)
	if err != nil {
		_ = handle.Close()
		return nil, err
	}

	fi, err := handle.Stat()
	if err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	trimmedSize, err := computeTrimmedSize(handle, header)
	if err != nil {
		_ = handle.Close()
		return nil, err
	}

	if fi.Size() <= trimmedSize {
		_ = handle.Close()
		return nil, ErrAlreadyTrimmed
	}

	return &File{
		handle:      handle,
		header:      header,
		size:        fi.Size(),
		trimmedSize: trimmedSize,
	}, nil
}

// computeTrimmedSize computes the end of the ROM's meaningful content.
//
// NTR+TWL ROMs end exactly at the declared NTR+TWL ROM size. NTR-only ROMs
// end at the declared NTR ROM size, extended by the certificate region when
// the marker is found there. End-of-file during the marker probe means the
// file already ends at the declared size with no room for a certificate, so
// it is reported as ErrAlreadyTrimmed rather than as an I/O failure.
func computeTrimmedSize(handle *os.File, header *Header) (int64, error) {
	if !header.NTROnly() {
		return int64(header.NTRTWLRomSize), nil
	}

	trimmedSize := int64(header.NTRRomSize)

	cert, err := hasCertificate(handle, trimmedSize)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrAlreadyTrimmed
		}
		return 0, fmt.Errorf("failed to probe for certificate at 0x%X: %w", trimmedSize, err)
	}
	if cert {
		trimmedSize += CertificateLength
	}

	return trimmedSize, nil
}

// hasCertificate reads the two bytes at offset and reports whether they are
// the certificate marker.
func hasCertificate(handle io.ReaderAt, offset int64) (bool, error) {
	var buf [certificateMarkerLength]byte
	if _, err := handle.ReadAt(buf[:], offset); err != nil {
		return false, err
	}
	return buf == certificateMarker, nil
}

// Header returns the ROM's parsed header.
func (f *File) Header() *Header {
	return f.header
}

// Size returns the on-disk file size recorded when the ROM was opened.
func (f *File) Size() int64 {
	return f.size
}

// TrimmedSize returns the computed size of the ROM's meaningful content.
func (f *File) TrimmedSize() int64 {
	return f.trimmedSize
}

// Trim shrinks the underlying file to the trimmed size in place. The
// discarded padding cannot be recovered.
func (f *File) Trim() error {
	if err := f.handle.Truncate(f.trimmedSize); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	return nil
}

// TrimTo writes the trimmed image to a new file at dest, creating or
// overwriting it. The source file is left untouched.
func (f *File) TrimTo(dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	// earlier header and marker reads moved the read position
	if _, err := f.handle.Seek(0, io.SeekStart); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to seek to start: %w", err)
	}

	if _, err := io.CopyN(out, f.handle, f.trimmedSize); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy trimmed image: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dest, err)
	}
	return nil
}

// Close releases the underlying file handle.
func (f *File) Close() error {
	return f.handle.Close()
}
