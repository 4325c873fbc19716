package internal

import "hash/crc32"

// UpdateCRC32 folds data into a running IEEE checksum, so a dump can be
// checksummed line by line.
func UpdateCRC32(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, crc32.IEEETable, data)
}
