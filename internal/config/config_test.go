package config

import "testing"

func TestParseXffRule(t *testing.T) {
	tests := []struct {
		raw      string
		truncate int
		app      bool
		wantErr  bool
	}{
		{raw: "", truncate: -1, app: false},
		{raw: "-1", truncate: -1, app: false},
		{raw: "0", truncate: 0, app: false},
		{raw: "0:append", truncate: 0, app: true},
		{raw: "-1:append", truncate: -1, app: true},
		{raw: " 3 : append ", truncate: 3, app: true},
		{raw: "abc", wantErr: true},
		{raw: "-2", wantErr: true},
		{raw: "1:bogus", wantErr: true},
	}

	for _, tt := range tests {
		rule, err := ParseXffRule(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseXffRule(%q) accepted", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseXffRule(%q) failed: %v", tt.raw, err)
			continue
		}
		if rule.Truncate != tt.truncate || rule.Append != tt.app {
			t.Errorf("ParseXffRule(%q) = %+v", tt.raw, rule)
		}
	}
}

func TestParseKeyValueCSV(t *testing.T) {
	m := parseKeyValueCSV("app=grip-gate, env=dev ,bad,=x,k=")
	if m["app"] != "grip-gate" || m["env"] != "dev" {
		t.Errorf("map = %v", m)
	}
	if _, ok := m["bad"]; ok {
		t.Error("entry without '=' should be skipped")
	}
	if _, ok := m[""]; ok {
		t.Error("empty key should be skipped")
	}
	if v, ok := m["k"]; !ok || v != "" {
		t.Errorf("k = %q (ok=%v), want empty value kept", v, ok)
	}
}
