package updater

import "testing"

func TestParseSemver(t *testing.T) {
	tests := []struct {
		in      string
		want    Semver
		wantErr bool
	}{
		{in: "1.2.3", want: Semver{Major: 1, Minor: 2, Patch: 3}},
		{in: "v0.4.0", want: Semver{Minor: 4}},
		{in: "2.0.0-rc.1", want: Semver{Major: 2, Pre: "rc.1"}},
		{in: "1.2", wantErr: true},
		{in: "dev", wantErr: true},
		{in: "1.x.0", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSemver(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSemver(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSemver(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSemver(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSemverLessThan(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0.0", "2.0.0", true},
		{"1.2.0", "1.3.0", true},
		{"1.2.3", "1.2.4", true},
		{"1.2.3", "1.2.3", false},
		{"2.0.0", "1.9.9", false},
		{"1.0.0-rc.1", "1.0.0", true},
		{"1.0.0", "1.0.0-rc.1", false},
		{"1.0.0-rc.1", "1.0.0-rc.2", true},
	}

	for _, tt := range tests {
		a, err := ParseSemver(tt.a)
		if err != nil {
			t.Fatalf("ParseSemver(%q): %v", tt.a, err)
		}
		b, err := ParseSemver(tt.b)
		if err != nil {
			t.Fatalf("ParseSemver(%q): %v", tt.b, err)
		}
		if got := a.LessThan(b); got != tt.want {
			t.Errorf("%s < %s = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
