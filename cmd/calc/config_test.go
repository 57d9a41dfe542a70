package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfig(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want config
		err  bool
	}{
		{"empty", "", config{Prompt: "> ", OtherInfo: true}, false},
		{"prompt", "prompt: 'calc> '\n", config{Prompt: "calc> ", OtherInfo: true}, false},
		{"all", "prompt: '$ '\nhistory: /tmp/h\nhistory_size: 5\nother_info: false\n", config{Prompt: "$ ", History: "/tmp/h", HistorySize: 5}, false},
		{"unknown", "colour: red\n", config{}, true},
		{"bad", "prompt: [\n", config{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(c.src), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg := config{Prompt: "> ", OtherInfo: true}
			err := readConfig(&cfg, path)
			if c.err {
				if err == nil {
					t.Errorf("expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg != c.want {
				t.Errorf("want %+v, got %+v", c.want, cfg)
			}
		})
	}
}

func TestReadConfigMissing(t *testing.T) {
	cfg := config{Prompt: "> "}
	if err := readConfig(&cfg, filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Errorf("missing config should not be an error: %v", err)
	}
	if cfg.Prompt != "> " {
		t.Errorf("missing config changed prompt to %q", cfg.Prompt)
	}
}
