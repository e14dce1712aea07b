package catalog

import (
	"reflect"
	"testing"

	"github.com/broady/helpgen/ir"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   TypeRef
		want ir.Schema
	}{
		{"string", TypeRef{Type: "string"}, ir.String()},
		{"uint8", TypeRef{Type: "uint8"}, ir.Integer("uint8")},
		{"uint64", TypeRef{Type: "uint64"}, ir.Integer("uint64")},
		{"int32", TypeRef{Type: "int32"}, ir.Integer("int32")},
		{"bool", TypeRef{Type: "bool"}, ir.Bool()},
		{"double", TypeRef{Type: "double"}, ir.Number("double")},
		{"float", TypeRef{Type: "float"}, ir.Number("float")},
		{"object", TypeRef{Type: "object"}, ir.Object()},
		{"void", TypeRef{}, ir.VoidType()},
		{"reference", TypeRef{Type: "LolSummonerSummoner"}, ir.Ref("LolSummonerSummoner")},
		{"case sensitive", TypeRef{Type: "String"}, ir.Ref("String")},
		{
			"vector of int",
			TypeRef{Type: "vector", ElementType: &TypeRef{Type: "int64"}},
			ir.ArrayOf(ir.Integer("int64")),
		},
		{
			"map of reference",
			TypeRef{Type: "map", ElementType: &TypeRef{Type: "Champion"}},
			ir.MapOfValues(ir.Ref("Champion")),
		},
		{
			"nested containers",
			TypeRef{Type: "vector", ElementType: &TypeRef{Type: "map", ElementType: &TypeRef{Type: "bool"}}},
			ir.ArrayOf(ir.MapOfValues(ir.Bool())),
		},
		{"vector without element", TypeRef{Type: "vector"}, ir.ArrayOf(ir.VoidType())},
		{
			"element ignored for scalars",
			TypeRef{Type: "string", ElementType: &TypeRef{Type: "int8"}},
			ir.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%+v) = %#v, want %#v", tt.in, got, tt.want)
			}
			// Resolving twice gives an equal result.
			if again := Resolve(tt.in); !reflect.DeepEqual(got, again) {
				t.Errorf("Resolve(%+v) not deterministic: %#v then %#v", tt.in, got, again)
			}
		})
	}
}

func TestResolve_UnsignedFormat(t *testing.T) {
	p, ok := Resolve(TypeRef{Type: "uint32"}).(*ir.Primitive)
	if !ok {
		t.Fatal("Resolve(uint32) is not a Primitive")
	}
	if !p.Unsigned() {
		t.Error("Resolve(uint32).Unsigned() = false, want true")
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		template string
		want     []string
	}{
		{"/lol-summoner/v1/summoners/{summonerId}", []string{"summonerId"}},
		{"/{plugin}/assets/{path+}", []string{"plugin", "path+"}},
		{"/Help", nil},
		{"", nil},
	}

	for _, tt := range tests {
		if got := Placeholders(tt.template); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Placeholders(%q) = %v, want %v", tt.template, got, tt.want)
		}
	}
}
