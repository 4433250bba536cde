// Package crc implements the CRC-16 checksum used by the Nintendo DS
// cartridge header format.
//
// The algorithm is CRC-16/MODBUS: a table-free, bit-reflected CRC with
// polynomial 0xA001 and initial value 0xFFFF, no final XOR. The same
// function validates both the header region and the embedded logo image.
//
// # Usage
//
//	sum := crc.Checksum(data)
//	if sum != expected {
//	    // checksum mismatch
//	}
package crc
