package typescript

import (
	"testing"
)

func TestEscapeReservedWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"interface", "interface_"},
		{"class", "class_"},
		{"type", "type_"},
		{"default", "default_"},
		{"MyType", "MyType"},
		{"_private", "_private"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeReservedWord(tt.input)
			if got != tt.want {
				t.Errorf("escapeReservedWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"LolSummonerSummoner", "LolSummonerSummoner"},
		{"lol-item-sets-ItemSet", "lol_item_sets_ItemSet"},
		{"Record", "Record_"},
		{"Promise", "Promise_"},
		{"LCUEndpoints", "LCUEndpoints_"},
		{"delete", "delete_"},
		{"2fa", "_2fa"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := typeName(tt.input); got != tt.want {
				t.Errorf("typeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPropertyKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"summonerId", "summonerId"},
		{"champ-select", `"champ-select"`},
		{"123abc", `"123abc"`},
		{"", `""`},
		{"$field", "$field"},
		{"default", "default"},
		{`we"ird`, `"we\"ird"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := propertyKey(tt.input); got != tt.want {
				t.Errorf("propertyKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParameterLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"summonerId", "summonerId"},
		{"path+", "path"},
		{"item-set", "item_set"},
	}
	for _, tt := range tests {
		if got := parameterLabel(tt.input); got != tt.want {
			t.Errorf("parameterLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
