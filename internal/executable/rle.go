package executable

// encodeRLE packs runs of zero bytes as a zero followed by the run length
func encodeRLE(src []byte) []byte {
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		cur := src[i]
		i++
		if cur != 0 {
			out = append(out, cur)
			continue
		}
		count := 1
		for i < len(src) && count < 255 && src[i] == 0 {
			i++
			count++
		}
		out = append(out, 0, byte(count))
	}
	return out
}

func decodeRLE(src []byte) []byte {
	out := make([]byte, 0, len(src)*2)
	for i := 0; i < len(src); {
		cur := src[i]
		i++
		out = append(out, cur)
		if cur != 0 {
			continue
		}
		if i >= len(src) {
			break
		}
		count := int(src[i])
		i++
		for ; count > 1; count-- {
			out = append(out, 0)
		}
	}
	return out
}
