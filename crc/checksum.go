package crc

// Checksum algorithm constants.
const (
	// Polynomial is the reflected CRC-16/MODBUS polynomial (0xA001)
	Polynomial = 0xA001

	// InitialValue is the accumulator seed
	InitialValue = 0xFFFF

	// BitsPerByte is the number of shift rounds performed per input byte
	BitsPerByte = 8
)

// Checksum computes the CRC-16 of data.
//
// For each input byte the byte is XORed into the low 8 bits of the
// accumulator, then the accumulator is shifted right 8 times, XORing in the
// polynomial whenever the bit shifted out was set. The final accumulator is
// the checksum; there is no final XOR.
//
// The function is pure and deterministic: the same input always yields the
// same 16-bit value on every platform.
func Checksum(data []byte) uint16 {
	crc := uint16(InitialValue)

	for _, b := range data {
		crc ^= uint16(b)
		for i := 0; i < BitsPerByte; i++ {
			carry := crc&0x1 != 0
			crc >>= 1
			if carry {
				crc ^= Polynomial
			}
		}
	}

	return crc
}
