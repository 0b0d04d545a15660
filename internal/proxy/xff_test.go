package proxy

import (
	"reflect"
	"testing"
)

func TestXffRuleApply(t *testing.T) {
	tests := []struct {
		name  string
		rule  XffRule
		chain []string
		peer  string
		want  []string
	}{
		{
			name:  "no truncate no append keeps chain",
			rule:  XffRule{Truncate: -1},
			chain: []string{"1.1.1.1", "2.2.2.2"},
			peer:  "3.3.3.3",
			want:  []string{"1.1.1.1", "2.2.2.2"},
		},
		{
			name:  "append only",
			rule:  XffRule{Truncate: -1, Append: true},
			chain: []string{"1.1.1.1"},
			peer:  "3.3.3.3",
			want:  []string{"1.1.1.1", "3.3.3.3"},
		},
		{
			name:  "truncate zero drops chain",
			rule:  XffRule{Truncate: 0, Append: true},
			chain: []string{"1.1.1.1", "2.2.2.2"},
			peer:  "3.3.3.3",
			want:  []string{"3.3.3.3"},
		},
		{
			name:  "truncate keeps last entries",
			rule:  XffRule{Truncate: 2},
			chain: []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"},
			peer:  "4.4.4.4",
			want:  []string{"2.2.2.2", "3.3.3.3"},
		},
		{
			name:  "truncate larger than chain",
			rule:  XffRule{Truncate: 5, Append: true},
			chain: []string{"1.1.1.1"},
			peer:  "2.2.2.2",
			want:  []string{"1.1.1.1", "2.2.2.2"},
		},
		{
			name: "empty chain append",
			rule: XffRule{Truncate: -1, Append: true},
			peer: "2.2.2.2",
			want: []string{"2.2.2.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Apply(tt.chain, tt.peer)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitAndJoinChain(t *testing.T) {
	entries := splitChain([]string{"1.1.1.1, 2.2.2.2", " 3.3.3.3 ", ""})
	want := []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("splitChain = %v, want %v", entries, want)
	}

	if got := joinChain(entries); got != "1.1.1.1, 2.2.2.2, 3.3.3.3" {
		t.Errorf("joinChain = %q", got)
	}
}
