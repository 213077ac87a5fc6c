package versions

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		id     string
		want   ParsedVersion
		wantOK bool
	}{
		{id: "1.20.1", want: ParsedVersion{1, 20, 1}, wantOK: true},
		{id: "1.21", want: ParsedVersion{1, 21, 0}, wantOK: true},
		{id: "b1.7.3", want: ParsedVersion{1, 7, 3}, wantOK: true},
		{id: "1.20.5-pre1", want: ParsedVersion{1, 20, 5}, wantOK: true},
		{id: "1.14_combat-212796", want: ParsedVersion{1, 14, 0}, wantOK: true},
		{id: "a1.0.16_02", want: ParsedVersion{1, 0, 16}, wantOK: true},
		{id: "23w45a", wantOK: false},
		{id: "rd-132211", wantOK: false},
		{id: "", wantOK: false},
		{id: "1.RV-Pre1", wantOK: false},
		{id: "1.99999999999999999999999", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParseVersion(tt.id)
		if ok != tt.wantOK {
			t.Errorf("ParseVersion(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestParsedVersionCompare(t *testing.T) {
	a := ParsedVersion{1, 20, 4}
	b := ParsedVersion{1, 20, 5}

	if a.Compare(b) >= 0 {
		t.Errorf("%s should sort before %s", a, b)
	}
	if b.Compare(a) <= 0 {
		t.Errorf("%s should sort after %s", b, a)
	}
	if a.Compare(a) != 0 {
		t.Errorf("%s should equal itself", a)
	}
	if !b.AtLeast(java21Since) {
		t.Errorf("%s should reach the Java 21 floor", b)
	}
	if a.AtLeast(java21Since) {
		t.Errorf("%s should not reach the Java 21 floor", a)
	}
}
