package protocol

// CRC16InitialValue seeds a fresh checksum
const CRC16InitialValue = uint16(0xFFFF)

// CRC16 calculates the reflected CCITT checksum (CRC-16/MCRF4XX, no final
// xor) that closes a boot trace dump
func CRC16(data []byte) uint16 {
	return UpdateCRC16(CRC16InitialValue, data)
}

// UpdateCRC16 folds data into a running checksum, so records can be
// checksummed one at a time without building a contiguous buffer
func UpdateCRC16(crc uint16, data []byte) uint16 {
	for _, b := range data {
		b = b ^ uint8(crc&0xFF)
		b = b ^ (b << 4)
		b16 := uint16(b)
		crc = (b16<<8 | crc>>8) ^ (b16 >> 4) ^ (b16 << 3)
	}
	return crc
}
