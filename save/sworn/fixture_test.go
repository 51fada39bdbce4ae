package sworn

import (
	"strconv"
)

// encodeText packs text the way the game does, with an arbitrary low nibble.
func encodeText(text string) []byte {
	bs := make([]byte, 0, len(text))
	for _, char := range text {
		if char == ' ' {
			bs = append(bs, 0x05)
			continue
		}
		bs = append(bs, byte(char-'a'+1)<<4|0x05)
	}
	return bs
}

func encodeDigits(value int) []byte {
	bs := []byte{}
	for _, digit := range strconv.Itoa(value) {
		bs = append(bs, byte(digit-'0')<<4|0x03)
	}
	return bs
}

// textSegment is a segment with a label and no value.
func textSegment(text string) []byte {
	bs := []byte{0xD0, 0xA0, 0x02, 0x22}
	bs = append(bs, encodeText(text)...)
	return append(bs, 0x22, 0x11, 0x01)
}

// valueSegment is a segment in the shape both scans agree on.
func valueSegment(text string, value int) []byte {
	bs := []byte{0xD0, 0xA0, 0x02, 0x02, 0x22}
	bs = append(bs, encodeText(text)...)
	bs = append(bs, 0x22, 0xA3, 0x02)
	bs = append(bs, encodeDigits(value)...)
	return append(bs, 0xC2, 0x40, 0x01)
}

func file(segments ...[]byte) []byte {
	bs := []byte{0x07}
	for _, segment := range segments {
		bs = append(bs, segment...)
	}
	return bs
}
