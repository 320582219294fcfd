package source

import "testing"

func TestRangeValid(t *testing.T) {
	src := New("test.c", []byte("int x;"))

	tests := []struct {
		name  string
		r     Range
		valid bool
	}{
		{"empty at start", Range{src, 0, 0}, true},
		{"full range", Range{src, 0, 6}, true},
		{"insertion point mid", Range{src, 3, 3}, true},
		{"begin after end", Range{src, 4, 2}, false},
		{"end past length", Range{src, 0, 100}, false},
		{"negative begin", Range{src, -1, 2}, false},
	}

	for _, tt := range tests {
		if got := tt.r.Valid(); got != tt.valid {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestRangeText(t *testing.T) {
	src := New("test.c", []byte("int x;"))
	r := Range{src, 0, 3}
	if got := string(r.Text()); got != "int" {
		t.Errorf("Text() = %q, want %q", got, "int")
	}
}

func TestRangeString(t *testing.T) {
	src := New("test.c", []byte("int x;"))
	r := Range{src, 0, 3}
	if got := r.String(); got != "test.c[0:3]" {
		t.Errorf("String() = %q, want %q", got, "test.c[0:3]")
	}
}
