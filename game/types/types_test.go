package types

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"Easy", Easy, false},
		{"normal", Normal, false},
		{" HARD ", Hard, false},
		{"Abusive", Abusive, false},
		{"insane", Normal, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyTables(t *testing.T) {
	tests := []struct {
		d        Difficulty
		mult     float64
		count    int
		forgives bool
	}{
		{Easy, 0.7, 1, true},
		{Normal, 1, 1, false},
		{Hard, 1.5, 7, false},
		{Abusive, 2, 23, false},
	}
	for _, tt := range tests {
		if got := tt.d.Multiplier(); got != tt.mult {
			t.Errorf("%v multiplier = %v", tt.d, got)
		}
		if got := tt.d.PlacementCount(); got != tt.count {
			t.Errorf("%v placement count = %d", tt.d, got)
		}
		if got := tt.d.ForgivesSelfCollision(); got != tt.forgives {
			t.Errorf("%v forgives = %v", tt.d, got)
		}
	}
	if Abusive.Next() != Easy {
		t.Error("Next does not wrap")
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#47bcdf")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Color{R: 0x47, G: 0xbc, B: 0xdf}) {
		t.Errorf("got %+v", c)
	}
	if _, err := ParseHex("#fff"); err == nil {
		t.Error("short color accepted")
	}
	if _, err := ParseHex("#zzzzzz"); err == nil {
		t.Error("non-hex color accepted")
	}
}

func TestFillAt(t *testing.T) {
	f := Gradient(Black, White, 100)
	if f.At(0) != Black {
		t.Errorf("top = %+v", f.At(0))
	}
	if f.At(500) != White {
		t.Errorf("past span = %+v", f.At(500))
	}
	if mid := f.At(50); mid.R < 120 || mid.R > 135 {
		t.Errorf("middle = %+v", mid)
	}
	if s := Solid(Red); s.IsGradient() || s.At(40) != Red {
		t.Error("solid fill varies")
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 10, Height: 5}
	for _, p := range []Point{{0, 0}, {9, 4}} {
		if !g.Contains(p) {
			t.Errorf("%v should be inside", p)
		}
	}
	for _, p := range []Point{{-1, 0}, {10, 0}, {0, 5}, {0, -1}} {
		if g.Contains(p) {
			t.Errorf("%v should be outside", p)
		}
	}
}
