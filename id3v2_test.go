package id3v2

import "testing"

func TestSynchsafe28RoundTrip(t *testing.T) {
	for _, n := range []uint32{0, 1, 127, 128, 200, 1 << 20, 1<<28 - 1} {
		enc := encodeSynchsafe28(n)
		if got := synchsafe(enc[:]); got != n {
			t.Errorf("synchsafe(encodeSynchsafe28(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestSynchsafe35RoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 127, 128, 1 << 30, 1<<35 - 1} {
		enc := encodeSynchsafe35(n)
		if got := synchsafe64(enc[:]); got != n {
			t.Errorf("synchsafe64(encodeSynchsafe35(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestU24(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0xff}
	if got, want := u24(b), uint32(0x010203); got != want {
		t.Errorf("u24(%x) = %#x, want %#x", b, got, want)
	}
}

func TestVersionFromMajor(t *testing.T) {
	cases := []struct {
		major   byte
		want    Version
		wantErr bool
	}{
		{2, Version2_2, false},
		{3, Version2_3, false},
		{4, Version2_4, false},
		{9, VersionUnknown, true},
	}
	for _, c := range cases {
		got, err := versionFromMajor(c.major)
		if (err != nil) != c.wantErr {
			t.Errorf("versionFromMajor(%d) error = %v, wantErr %v", c.major, err, c.wantErr)
		}
		if got != c.want {
			t.Errorf("versionFromMajor(%d) = %v, want %v", c.major, got, c.want)
		}
	}
}

func TestVersionDecodable(t *testing.T) {
	for _, v := range []Version{Version2_2, Version2_3, Version2_4} {
		if !v.Decodable() {
			t.Errorf("%v.Decodable() = false, want true", v)
		}
	}
	for _, v := range []Version{VersionUnknown, Version1_1, Version1_2} {
		if v.Decodable() {
			t.Errorf("%v.Decodable() = true, want false", v)
		}
	}
}
