package utf8x

import "testing"

func TestDecodeASCII(t *testing.T) {
	cp, stride, res := Decode([]byte("A"), 0)
	if res != Success || cp != 'A' || stride != 1 {
		t.Errorf("got (%d, %d, %v), want ('A', 1, Success)", cp, stride, res)
	}
}

func TestDecodeTwoByte(t *testing.T) {
	// U+00E9 'é' = 0xC3 0xA9
	cp, stride, res := Decode([]byte{0xC3, 0xA9}, 0)
	if res != Success || cp != 0x00E9 || stride != 2 {
		t.Errorf("got (%#x, %d, %v), want (0xE9, 2, Success)", cp, stride, res)
	}
}

func TestDecodeThreeByte(t *testing.T) {
	// U+2603 '☃' = 0xE2 0x98 0x83
	cp, stride, res := Decode([]byte{0xE2, 0x98, 0x83}, 0)
	if res != Success || cp != 0x2603 || stride != 3 {
		t.Errorf("got (%#x, %d, %v), want (0x2603, 3, Success)", cp, stride, res)
	}
}

func TestDecodeFourByte(t *testing.T) {
	// U+1F600 '😀' = 0xF0 0x9F 0x98 0x80
	cp, stride, res := Decode([]byte{0xF0, 0x9F, 0x98, 0x80}, 0)
	if res != Success || cp != 0x1F600 || stride != 4 {
		t.Errorf("got (%#x, %d, %v), want (0x1F600, 4, Success)", cp, stride, res)
	}
}

func TestDecodeEndOfData(t *testing.T) {
	_, _, res := Decode(nil, 0)
	if res != EndOfData {
		t.Errorf("empty data: got %v, want EndOfData", res)
	}

	_, _, res = Decode([]byte{0xE2, 0x98}, 0)
	if res != EndOfData {
		t.Errorf("truncated 3-byte sequence: got %v, want EndOfData", res)
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	_, _, res := Decode([]byte("abc"), 5)
	if res != OutOfRange {
		t.Errorf("got %v, want OutOfRange", res)
	}
	_, _, res = Decode([]byte("abc"), -1)
	if res != OutOfRange {
		t.Errorf("negative offset: got %v, want OutOfRange", res)
	}
}

func TestDecodeInvalidStartByte(t *testing.T) {
	_, _, res := Decode([]byte{0xFF}, 0)
	if res != InvalidStartByte {
		t.Errorf("got %v, want InvalidStartByte", res)
	}
	_, _, res = Decode([]byte{0x80}, 0)
	if res != InvalidStartByte {
		t.Errorf("lone continuation byte: got %v, want InvalidStartByte", res)
	}
}

func TestDecodeInvalidContinueByte(t *testing.T) {
	_, _, res := Decode([]byte{0xC3, 0x20}, 0)
	if res != InvalidContinueByte {
		t.Errorf("got %v, want InvalidContinueByte", res)
	}
}

func TestDecodeAtOffset(t *testing.T) {
	data := []byte("x\xC3\xA9y")
	cp, stride, res := Decode(data, 1)
	if res != Success || cp != 0x00E9 || stride != 2 {
		t.Errorf("got (%#x, %d, %v), want (0xE9, 2, Success)", cp, stride, res)
	}
}
