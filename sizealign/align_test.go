package sizealign

import "testing"

func TestPadding(t *testing.T) {
	tests := []struct {
		size  int
		align Align
		want  int
	}{
		{0, 16, 0},
		{1, 16, 15},
		{15, 16, 1},
		{16, 16, 0},
		{17, 16, 15},
		{3, 4, 1},
	}

	for _, tt := range tests {
		if got := Padding(tt.size, tt.align); got != tt.want {
			t.Errorf("Padding(%d, %d) = %d, want %d", tt.size, tt.align, got, tt.want)
		}
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		size  int
		align Align
		want  int
	}{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{17, 16, 32},
	}

	for _, tt := range tests {
		if got := AlignUp(tt.size, tt.align); got != tt.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", tt.size, tt.align, got, tt.want)
		}
	}
}

func TestForBytes(t *testing.T) {
	tests := []struct {
		bytes int
		want  Align
	}{
		{0, Min},
		{1, Min},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{1000, 1024},
		{1 << 14, Max},
		{1 << 20, Max},
	}

	for _, tt := range tests {
		if got := ForBytes(tt.bytes); got != tt.want {
			t.Errorf("ForBytes(%d) = %d, want %d", tt.bytes, got, tt.want)
		}
	}
}
