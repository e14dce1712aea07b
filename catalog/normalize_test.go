package catalog

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/broady/helpgen/ir"
)

var quiet = Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

func TestNormalize_EnumOrder(t *testing.T) {
	raw := &RawCatalog{Types: []RawType{{
		Name: "Ranked",
		Values: []RawValue{
			{Name: "A", Value: 1},
			{Name: "B", Value: 3},
			{Name: "C", Value: 1},
		},
	}}}

	cat := Normalize(raw, quiet)
	var got []string
	for _, v := range cat.Types[0].EnumValues {
		got = append(got, v.Name)
	}
	if want := []string{"B", "A", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("enum order = %v, want %v", got, want)
	}
}

func TestNormalize_DuplicateField(t *testing.T) {
	raw := &RawCatalog{Types: []RawType{{
		Name: "Summoner",
		Fields: []RawField{
			{Name: "id", Type: TypeRef{Type: "uint64"}},
			{Name: "name", Type: TypeRef{Type: "string"}, Optional: true},
			{Name: "id", Type: TypeRef{Type: "string"}},
		},
	}}}

	cat := Normalize(raw, quiet)
	fields := cat.Types[0].Fields
	if len(fields) != 2 {
		t.Fatalf("len(Fields) = %d, want 2", len(fields))
	}
	if !reflect.DeepEqual(fields[0].Schema, ir.Integer("uint64")) {
		t.Errorf("Fields[0].Schema = %#v, want first occurrence uint64", fields[0].Schema)
	}
	if !fields[1].Optional {
		t.Error("Fields[1].Optional = false, want true")
	}
	if len(cat.Warnings) != 1 || cat.Warnings[0].Code != ir.WarnDuplicateField {
		t.Errorf("Warnings = %v, want one duplicate_field", cat.Warnings)
	}
}

func TestNormalize_Override(t *testing.T) {
	raw := &RawCatalog{Functions: []RawFunction{{Name: "Subscribe"}}}

	cat := Normalize(raw, quiet)
	ep := cat.Functions[0]
	if ep.Method != "post" || ep.Template != "/Subscribe" || !ep.Overridden {
		t.Errorf("Subscribe = {%s, %s, %v}, want {post, /Subscribe, true}", ep.Method, ep.Template, ep.Overridden)
	}
	if len(cat.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", cat.Warnings)
	}
}

func TestNormalize_Function(t *testing.T) {
	method, path := "GET", "/lol-summoner/v1/summoners/{summonerId}"
	raw := &RawCatalog{Functions: []RawFunction{
		{
			Name:      "GetSummoner",
			Method:    &method,
			Path:      &path,
			Arguments: []RawArgument{{Name: "summonerId+", Type: TypeRef{Type: "uint64"}}},
			Returns:   TypeRef{Type: "SummonerObj"},
		},
		{Name: "InternalOnly"},
	}}

	cat := Normalize(raw, quiet)
	if len(cat.Functions) != 2 {
		t.Fatalf("len(Functions) = %d, want 2", len(cat.Functions))
	}

	ep := cat.Functions[0]
	if !reflect.DeepEqual(ep.Placeholders, []string{"summonerId"}) {
		t.Errorf("Placeholders = %v, want [summonerId]", ep.Placeholders)
	}
	if !reflect.DeepEqual(ep.Returns, ir.Ref("SummonerObj")) {
		t.Errorf("Returns = %#v, want Ref(SummonerObj)", ep.Returns)
	}
	if !reflect.DeepEqual(ep.Arguments[0].Schema, ir.Integer("uint64")) {
		t.Errorf("Arguments[0].Schema = %#v, want uint64", ep.Arguments[0].Schema)
	}

	if cat.Functions[1].Routable() {
		t.Error("InternalOnly.Routable() = true, want false")
	}
	if len(cat.Warnings) != 1 || cat.Warnings[0].Code != ir.WarnUnroutableEndpoint || cat.Warnings[0].Name != "InternalOnly" {
		t.Errorf("Warnings = %v, want one unroutable_endpoint for InternalOnly", cat.Warnings)
	}
}

func TestNormalize_InvalidRecords(t *testing.T) {
	bad := "FETCH"
	raw := &RawCatalog{
		Types:     []RawType{{Name: ""}, {Name: "Kept"}},
		Functions: []RawFunction{{Name: "Weird", Method: &bad, Path: new(string)}},
		Events:    []RawEvent{{Name: ""}},
	}

	cat := Normalize(raw, quiet)
	if len(cat.Types) != 1 || cat.Types[0].Name != "Kept" {
		t.Errorf("Types = %v, want [Kept]", cat.Types)
	}
	if len(cat.Functions) != 0 || len(cat.Events) != 0 {
		t.Errorf("got %d functions, %d events, want 0 each", len(cat.Functions), len(cat.Events))
	}

	invalid := 0
	for _, w := range cat.Warnings {
		if w.Code == ir.WarnInvalidRecord {
			invalid++
		}
	}
	if invalid != 3 {
		t.Errorf("invalid_record warnings = %d, want 3", invalid)
	}
}

func TestNormalize_Order(t *testing.T) {
	raw := &RawCatalog{
		Version: "1.0",
		Types:   []RawType{{Name: "Zed"}, {Name: "Ahri"}, {Name: "Mid"}},
		Events: []RawEvent{
			{Name: "OnB", Type: TypeRef{Type: "object"}},
			{Name: "OnA", Type: TypeRef{Type: ""}},
		},
	}

	cat := Normalize(raw, quiet)
	if cat.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", cat.Version)
	}
	var names []string
	for _, nt := range cat.Types {
		names = append(names, nt.Name)
	}
	if want := []string{"Zed", "Ahri", "Mid"}; !reflect.DeepEqual(names, want) {
		t.Errorf("type order = %v, want %v", names, want)
	}
	if cat.Events[0].Name != "OnB" || !ir.IsVoid(cat.Events[1].Payload) {
		t.Errorf("Events = %v, want OnB then void OnA", cat.Events)
	}
}

func TestNormalize_Nil(t *testing.T) {
	cat := Normalize(nil, quiet)
	if cat == nil || len(cat.Types) != 0 {
		t.Errorf("Normalize(nil) = %v, want empty catalog", cat)
	}
}
