package catalog

import (
	"strings"
	"testing"
)

func TestDefaultOverrides(t *testing.T) {
	table := DefaultOverrides()

	want := []string{
		"Help", "Subscribe", "Unsubscribe", "AsyncDelete", "AsyncResult",
		"AsyncStatus", "Cancel", "Exit", "WebSocketFormat", "LoggingGetEntries",
		"LoggingMetrics", "LoggingMetricsMetadata", "LoggingStart", "LoggingStop",
	}
	if table.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", table.Len(), len(want))
	}
	for _, name := range want {
		o, ok := table.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%s) missing", name)
			continue
		}
		if o.Method != "post" || o.Path != "/"+name {
			t.Errorf("Lookup(%s) = %+v, want {post /%s}", name, o, name)
		}
	}
}

func TestOverrideTable_Apply(t *testing.T) {
	table := DefaultOverrides()

	got := table.Apply(RawFunction{Name: "Subscribe"})
	if got.Method == nil || *got.Method != "post" {
		t.Errorf("Apply(Subscribe).Method = %v, want post", got.Method)
	}
	if got.Path == nil || *got.Path != "/Subscribe" {
		t.Errorf("Apply(Subscribe).Path = %v, want /Subscribe", got.Path)
	}
	if !got.Overridden {
		t.Error("Apply(Subscribe).Overridden = false, want true")
	}

	method, path := "GET", "/lol-summoner/v1/current-summoner"
	in := RawFunction{Name: "GetCurrentSummoner", Method: &method, Path: &path}
	got = table.Apply(in)
	if *got.Method != "GET" || *got.Path != path || got.Overridden {
		t.Errorf("Apply(GetCurrentSummoner) = %+v, want unchanged", got)
	}
}

func TestLoadOverrides(t *testing.T) {
	doc := `
Exit:
  method: put
  path: /process-control/v1/process/quit
Quiet:
  method: get
  path: /quiet
  silent: true
`
	user, err := LoadOverrides(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}

	merged := DefaultOverrides().Merge(user)
	if merged.Len() != DefaultOverrides().Len()+1 {
		t.Errorf("Merge().Len() = %d, want %d", merged.Len(), DefaultOverrides().Len()+1)
	}

	exit := merged.Apply(RawFunction{Name: "Exit"})
	if *exit.Method != "put" || *exit.Path != "/process-control/v1/process/quit" {
		t.Errorf("Apply(Exit) = %s %s, want put /process-control/v1/process/quit", *exit.Method, *exit.Path)
	}

	quiet := merged.Apply(RawFunction{Name: "Quiet"})
	if quiet.Overridden {
		t.Error("Apply(Quiet).Overridden = true, want false for silent override")
	}

	// The defaults are untouched by Merge.
	if o, _ := DefaultOverrides().Lookup("Exit"); o.Method != "post" {
		t.Errorf("DefaultOverrides Exit.Method = %s after Merge, want post", o.Method)
	}
}

func TestLoadOverrides_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad method", "Exit:\n  method: fetch\n"},
		{"relative path", "Exit:\n  path: exit\n"},
		{"not a mapping", "- Exit\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadOverrides(strings.NewReader(tt.doc)); err == nil {
				t.Error("LoadOverrides() error = nil, want error")
			}
		})
	}
}

func TestLoadOverrides_Empty(t *testing.T) {
	table, err := LoadOverrides(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadOverrides(empty) error = %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
}
