package conv

import "testing"

func TestUtoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{115200, "115200"},
		{^uint64(0), "18446744073709551615"},
	} {
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Utoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
	if len(Utoa(nil, 5)) != 0 {
		t.Fatal("Utoa on empty buffer should return empty")
	}
}

func TestAppendHelpers(t *testing.T) {
	b := AppendUint([]byte("tx="), 42)
	b = append(b, ' ')
	b = AppendHex32(b, 0x3f201000)
	if got, want := string(b), "tx=42 0x3F201000"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	var short [4]byte
	if len(U32Hex(short[:], 1)) != 0 {
		t.Fatal("U32Hex should refuse a short buffer")
	}
}
