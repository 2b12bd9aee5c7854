package format

import "testing"

func TestAlign4(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{1, 4},
		{3, 4},
		{4, 4},
		{5, 8},
		{6, 8},
		{8, 8},
		{9, 12},
	}

	for _, tt := range tests {
		if got := Align4(tt.in); got != tt.want {
			t.Errorf("Align4(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLengthFieldMasks(t *testing.T) {
	field := PlaceholderFlag | 24
	if field&LengthMask != 24 {
		t.Errorf("LengthMask: got %d, want 24", field&LengthMask)
	}
	if field&PlaceholderFlag == 0 {
		t.Error("PlaceholderFlag not set in composed field")
	}
	if PropHeaderSize != PropNameLen+LengthFieldSize {
		t.Errorf("PropHeaderSize = %d, want %d", PropHeaderSize, PropNameLen+LengthFieldSize)
	}
}
