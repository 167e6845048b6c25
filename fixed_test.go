package vita49

import (
	"errors"
	"testing"
)

func TestToFixedBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		fracBits  uint
		totalBits uint
		signed    bool
		want      uint64
		wantErr   bool
	}{
		{name: "q9.7 max", value: 255.9921875, fracBits: 7, totalBits: 16, signed: true, want: 0x7FFF},
		{name: "q9.7 min", value: -256, fracBits: 7, totalBits: 16, signed: true, want: 0x8000},
		{name: "q9.7 overflow", value: 256, fracBits: 7, totalBits: 16, signed: true, wantErr: true},
		{name: "q9.7 underflow", value: -256.5, fracBits: 7, totalBits: 16, signed: true, wantErr: true},
		{name: "q10.6 max", value: 511.984375, fracBits: 6, totalBits: 16, signed: true, want: 0x7FFF},
		{name: "q10.6 min", value: -512, fracBits: 6, totalBits: 16, signed: true, want: 0x8000},
		{name: "unsigned negative", value: -1, fracBits: 20, totalBits: 64, signed: false, wantErr: true},
		{name: "truncates toward zero", value: 1.0078125 + 0.001, fracBits: 7, totalBits: 16, signed: true, want: 129},
		{name: "truncates toward zero negative", value: -1.0078125 - 0.001, fracBits: 7, totalBits: 16, signed: true, want: 0xFF7F},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := toFixed(tc.value, tc.fracBits, tc.totalBits, tc.signed)
			if tc.wantErr {
				if !errors.Is(err, ErrRange) {
					t.Fatalf("expected ErrRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("toFixed returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("toFixed = 0x%X, want 0x%X", got, tc.want)
			}
		})
	}
}

func TestFrequencyRoundTrip(t *testing.T) {
	for _, hz := range []float64{0, 1, 100e6, 8e6, 6.25e3, 40e3, 9.123456789e9} {
		raw, err := encHz(hz, false)
		if err != nil {
			t.Fatalf("encHz(%v) returned error: %v", hz, err)
		}
		if got := decHzU(raw); got != float64(int64(hz*1048576))/1048576 {
			t.Fatalf("decHzU(encHz(%v)) = %v", hz, got)
		}
	}
	raw, err := encHz(-5e6, true)
	if err != nil {
		t.Fatalf("encHz signed returned error: %v", err)
	}
	if got := decHzI(raw); got != -5e6 {
		t.Fatalf("decHzI = %v, want -5e6", got)
	}
}

func TestDB7RoundTrip(t *testing.T) {
	for _, db := range []float64{0, -1.5, 2.25, 255.9921875, -256} {
		raw, err := encDB7(db)
		if err != nil {
			t.Fatalf("encDB7(%v) returned error: %v", db, err)
		}
		if got := decDB7(raw); got != db {
			t.Fatalf("decDB7(encDB7(%v)) = %v", db, got)
		}
	}
}

func TestTemp6RoundTrip(t *testing.T) {
	for _, c := range []float64{0, 21.5, -40, 511.984375, -512} {
		raw, err := encTemp6(c)
		if err != nil {
			t.Fatalf("encTemp6(%v) returned error: %v", c, err)
		}
		if got := decTemp6(raw); got != c {
			t.Fatalf("decTemp6(encTemp6(%v)) = %v", c, got)
		}
	}
}

func TestGainWord(t *testing.T) {
	g := Gain{Stage1Db: -1.5, Stage2Db: 2.25}
	word, err := gainWord(g)
	if err != nil {
		t.Fatalf("gainWord returned error: %v", err)
	}
	if word != 0x0120FF40 {
		t.Fatalf("gainWord = 0x%08X, want 0x0120FF40", word)
	}
	if got := gainFromWord(word); got != g {
		t.Fatalf("gainFromWord = %+v, want %+v", got, g)
	}
	if _, err := gainWord(Gain{Stage1Db: 300}); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange for out-of-range gain, got %v", err)
	}
}
