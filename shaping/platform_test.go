package shaping

import "testing"

func TestIsMutable(t *testing.T) {
	cases := []struct {
		name string
		addr uintptr
		want bool
	}{
		{"below window", SRAMBase - 1, false},
		{"at base", SRAMBase, true},
		{"middle", SRAMBase + 0x1000, true},
		{"at extent", SRAMExtent, true},
		{"above window", SRAMExtent + 1, false},
	}
	for _, c := range cases {
		if got := IsMutable(c.addr); got != c.want {
			t.Errorf("%s: IsMutable(%#x) = %v, want %v", c.name, c.addr, got, c.want)
		}
	}
}
