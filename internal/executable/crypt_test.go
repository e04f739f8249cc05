package executable

import (
	"bytes"
	"testing"
)

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func primeData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		if isPrime(i) {
			data[i] = byte(i)
		}
	}
	return data
}

func TestDecryptKnownBlock(t *testing.T) {
	block := []byte{188, 113, 184, 117, 181, 219, 236, 219, 189, 187, 189}
	decrypt(block, 300)
	want := []byte{25, 0, 0, 0, 0, 0, 0, 0, 0, 7, 0}
	if !bytes.Equal(block, want) {
		t.Fatalf("decrypt = %v, want %v", block, want)
	}
}

func TestCryptPrimitivesInvert(t *testing.T) {
	original := []byte("Hello World here I'am.")

	buf := bytes.Clone(original)
	crypt3(buf)
	if bytes.Equal(buf, original) {
		t.Fatal("crypt3 left the data unchanged")
	}
	crypt3(buf)
	if !bytes.Equal(buf, original) {
		t.Fatalf("crypt3 twice = %q", buf)
	}

	buf = bytes.Clone(original)
	encrypt2(buf)
	if bytes.Equal(buf, original) {
		t.Fatal("encrypt2 left the data unchanged")
	}
	decrypt2(buf)
	if !bytes.Equal(buf, original) {
		t.Fatalf("decrypt2(encrypt2) = %q", buf)
	}

	large := primeData(chunkSize)
	buf = bytes.Clone(large)
	encrypt2(buf)
	decrypt2(buf)
	if !bytes.Equal(buf, large) {
		t.Fatal("encrypt2 round trip of a full chunk differs")
	}
}

func TestChunksRoundTrip(t *testing.T) {
	for _, version := range []int{300, 330, 340} {
		for _, rle := range []bool{false, true} {
			want := primeData(chunkSize * 16)
			data := bytes.Clone(want)
			encryptChunks(data, version, rle)
			if bytes.Equal(data, want) {
				t.Fatalf("version %d: encryptChunks left the data unchanged", version)
			}
			decryptChunks(data, version, rle)
			if !bytes.Equal(data, want) {
				t.Errorf("version %d rle=%v: round trip differs", version, rle)
			}
		}
	}
}

func TestUnencryptedVersions(t *testing.T) {
	for _, version := range []int{100, 200, 400} {
		data := []byte{1, 2, 3, 4, 5}
		encryptChunks(data, version, false)
		if !bytes.Equal(data, []byte{1, 2, 3, 4, 5}) {
			t.Errorf("version %d: data was encrypted", version)
		}
	}
}

func TestRLE(t *testing.T) {
	if got := encodeRLE(make([]byte, 9)); !bytes.Equal(got, []byte{0, 9}) {
		t.Fatalf("encodeRLE(9 zeros) = %v", got)
	}

	tests := [][]byte{
		{0, 1, 2, 3, 4, 5},
		{0, 1, 2, 0, 3, 4, 5, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 2, 3, 4, 0, 6, 7, 0, 9},
		make([]byte, 600),
	}
	for _, data := range tests {
		encoded := encodeRLE(data)
		if len(encoded) == len(data) {
			t.Errorf("encodeRLE(%v) did not change the length", data)
		}
		if got := decodeRLE(encoded); !bytes.Equal(got, data) {
			t.Errorf("decodeRLE(encodeRLE(%v)) = %v", data, got)
		}
	}
}
