// Package loader decodes LC-3 binary program images: a big-endian origin
// address followed by a contiguous run of big-endian 16-bit words.
package loader

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-lc3/lc3/vm"
)

// MemorySize is the number of addressable words in LC-3 memory.
const MemorySize = 1 << 16

// Image is a decoded program image, ready to be applied to memory with
// LoadInto. Decoding is kept independent of any live Memory so images can
// be inspected and tested without constructing an emulator.
type Image struct {
	// Origin is the address at which Words[0] loads.
	Origin uint16

	// Words are the image's contents, one element per memory word, in
	// host byte order.
	Words []uint16
}

// Load reads path and decodes it into an Image. The first two bytes are
// the big-endian origin; every subsequent pair of bytes is a big-endian
// word. A trailing odd byte is ignored. The word count is clamped to
// 65536-Origin, so an image cannot overflow past the end of memory.
func Load(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	var originBytes [2]byte
	if _, err := readFull(f, originBytes[:]); err != nil {
		return Image{}, fmt.Errorf("read origin: %w", err)
	}
	origin := binary.BigEndian.Uint16(originBytes[:])

	maxWords := MemorySize - int(origin)
	words := make([]uint16, 0, maxWords)

	var wordBytes [2]byte
	for len(words) < maxWords {
		n, err := readFull(f, wordBytes[:])
		if n == 2 {
			words = append(words, binary.BigEndian.Uint16(wordBytes[:]))
			continue
		}
		if err != nil {
			break // EOF, possibly after a trailing odd byte; ignore it
		}
	}

	return Image{Origin: origin, Words: words}, nil
}

// readFull reads exactly len(buf) bytes, or returns the number read along
// with the first error (including io.EOF) encountered.
func readFull(f *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := f.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// LoadInto writes img's words into mem starting at img.Origin, overlaying
// whatever was previously at those addresses. Multiple images may be
// applied to the same Memory in sequence; each only touches its own
// address range.
func LoadInto(mem *vm.Memory, img Image) {
	addr := img.Origin
	for _, w := range img.Words {
		mem.Write(addr, w)
		addr++
	}
}
