package executable

import "math/bits"

var cryptData = [...]byte{0x8C, 0x53, 0xB8, 0xA7, 0x9E, 0x0F, 0x0A, 0xCB, 0x28, 0x62, 0x2D, 0x50, 0x7E, 0x05, 0x3D, 0x4E, 0x35}

// chunkSize is the unit the code section is encrypted in
const chunkSize = 2027

// isEncrypted reports whether a format version scrambles its variable table and code.
// 4.00 files are stored in the clear.
func isEncrypted(version int) bool {
	return version >= 300 && version < 400
}

func crypt3(block []byte) {
	n := len(block)
	for i := range block {
		block[i] ^= cryptData[i%len(cryptData)] + byte(n-i)
	}
}

func decrypt2(block []byte) {
	size := len(block)
	dx := size >> 1
	seed := uint16(0xDB24)
	rc := 0

	i := 0
	for ; dx > 0; dx-- {
		dl := byte(dx)
		rc = int(byte(seed) + dl)
		cur := uint16(block[i]) | uint16(block[i+1])<<8
		out := bits.RotateLeft16(cur, -rc) ^ seed
		block[i] = byte(out) ^ dl
		block[i+1] = byte(out>>8) ^ dl
		seed = cur
		i += 2
	}
	if size%2 == 1 {
		block[i] = bits.RotateLeft8(block[i]^byte(seed), -rc)
	}
}

func encrypt2(block []byte) {
	size := len(block)
	dx := size >> 1
	seed := uint16(0xDB24)
	rc := 0

	i := 0
	for ; dx > 0; dx-- {
		dl := uint16(byte(dx))
		rc = int(seed&0xFF + dl)
		cur := uint16(block[i]) | uint16(block[i+1])<<8
		out := bits.RotateLeft16(cur^seed^(dl|dl<<8), rc)
		block[i] = byte(out)
		block[i+1] = byte(out >> 8)
		seed = out
		i += 2
	}
	if size%2 == 1 {
		block[i] = bits.RotateLeft8(block[i], rc) ^ byte(seed)
	}
}

// decrypt reverses encrypt for one chunk
func decrypt(block []byte, version int) {
	if !isEncrypted(version) {
		return
	}
	if version >= 330 {
		crypt3(block)
	}
	decrypt2(block)
	if version >= 340 && len(block) > 0 {
		block[0] ^= 'T'
	}
}

func encrypt(block []byte, version int) {
	if !isEncrypted(version) || len(block) == 0 {
		return
	}
	if version >= 340 {
		block[0] ^= 'T'
	}
	encrypt2(block)
	if version >= 330 {
		crypt3(block)
	}
}

// encryptChunks encrypts data in place. When the code is RLE packed and a chunk ends
// on a zero byte, the following run length byte is left in the clear.
func encryptChunks(data []byte, version int, rle bool) {
	for offset := 0; offset < len(data); {
		skip := rle && offset+chunkSize-1 < len(data) && data[offset+chunkSize-1] == 0
		encrypt(data[offset:min(offset+chunkSize, len(data))], version)
		offset += chunkSize
		if skip {
			offset++
		}
	}
}

func decryptChunks(data []byte, version int, rle bool) {
	for offset := 0; offset < len(data); {
		chunk := data[offset:min(offset+chunkSize, len(data))]
		decrypt(chunk, version)
		if rle && offset+chunkSize < len(data) && chunk[chunkSize-1] == 0 {
			offset++
		}
		offset += chunkSize
	}
}
