package ir

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCatalog_FindType(t *testing.T) {
	c := &Catalog{Types: []NamedType{{Name: "A"}, {Name: "B"}}}

	if got := c.FindType("B"); got == nil || got.Name != "B" {
		t.Errorf("FindType(B) = %v, want B", got)
	}
	if got := c.FindType("C"); got != nil {
		t.Errorf("FindType(C) = %v, want nil", got)
	}
}

func TestCatalog_Overridden(t *testing.T) {
	c := &Catalog{Functions: []Endpoint{
		{Name: "Help", Overridden: true},
		{Name: "GetSummoner"},
		{Name: "Subscribe", Overridden: true},
	}}

	got := c.Overridden()
	if len(got) != 2 || got[0].Name != "Help" || got[1].Name != "Subscribe" {
		t.Errorf("Overridden() = %v, want [Help Subscribe]", got)
	}
}

func TestCatalog_Validate(t *testing.T) {
	c := &Catalog{
		Types: []NamedType{
			{Name: "Summoner", Fields: []Field{
				{Name: "rank", Schema: Ref("Rank")},
				{Name: "friends", Schema: ArrayOf(Ref("Summoner"))},
			}},
		},
		Functions: []Endpoint{
			{Name: "GetSummoner", Returns: Ref("Summoner"), Arguments: []Argument{
				{Name: "opts", Schema: MapOfValues(Ref("Options"))},
			}},
		},
		Events: []Event{{Name: "OnJsonApiEvent", Payload: Ref("PluginResourceEvent")}},
	}

	errs := c.Validate()
	if len(errs) != 3 {
		t.Fatalf("Validate() returned %d errors, want 3: %v", len(errs), errs)
	}
	for _, want := range []string{"Rank", "Options", "PluginResourceEvent"} {
		found := false
		for _, err := range errs {
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("error %T is not *ValidationError", err)
			}
			if ve.Code == "missing_type_reference" && strings.HasSuffix(ve.Message, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("Validate() missing error for %s", want)
		}
	}
}

func TestCatalog_ValidateDuplicate(t *testing.T) {
	c := &Catalog{Types: []NamedType{{Name: "A"}, {Name: "A"}}}
	errs := c.Validate()
	if len(errs) != 1 || errs[0].(*ValidationError).Code != "duplicate_type" {
		t.Errorf("Validate() = %v, want one duplicate_type", errs)
	}
}

func TestSchema_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		want   string
	}{
		{"integer", Integer("uint64"), `{"kind":"primitive","primitiveKind":"integer","format":"uint64"}`},
		{"string", String(), `{"kind":"primitive","primitiveKind":"string"}`},
		{"array", ArrayOf(Ref("X")), `{"kind":"array","element":{"kind":"reference","name":"X"}}`},
		{"map", MapOfValues(Bool()), `{"kind":"map","value":{"kind":"primitive","primitiveKind":"boolean"}}`},
		{"object", Object(), `{"kind":"object"}`},
		{"void", VoidType(), `{"kind":"void"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.schema)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWarning_String(t *testing.T) {
	w := Warning{Code: WarnDuplicateField, Message: "duplicate field id", Name: "Summoner"}
	if got, want := w.String(), "duplicate_field (Summoner): duplicate field id"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	w.Name = ""
	if got, want := w.String(), "duplicate_field: duplicate field id"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
