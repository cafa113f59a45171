package update

import "testing"

func TestNewer(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"v1.2.0", "v1.1.9", true},
		{"1.2.0", "v1.2.0", false},
		{"v0.9.0", "1.0.0", false},
		{"v2.0.0-rc.1", "v2.0.0", false},
		{"garbage", "v1.0.0", false},
		{"v1.0.0", "garbage", false},
	}
	for _, c := range cases {
		if got := Newer(c.a, c.b); got != c.want {
			t.Errorf("Newer(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestCheck_SkipsWhenOffline(t *testing.T) {
	latest, newer, err := Check("v1.0.0", true)
	if err != nil || newer || latest != "" {
		t.Fatalf("offline check must be a no-op, got (%q, %v, %v)", latest, newer, err)
	}
}
