package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "warn"}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("info message logged at warn level: %q", got)
	}
	if !strings.Contains(got, "shown 2") {
		t.Errorf("warn message missing: %q", got)
	}
	if !strings.Contains(got, "logger_test.go") {
		t.Errorf("source file missing from record: %q", got)
	}
}

func TestTagFilters(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"Noisy"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	DebugTagf("noisy", "dropped")
	DebugTagf("cache", "kept")

	got := out.String()
	if strings.Contains(got, "dropped") {
		t.Errorf("disabled tag was logged: %q", got)
	}
	if !strings.Contains(got, "kept") || !strings.Contains(got, "tag=cache") {
		t.Errorf("enabled tag missing: %q", got)
	}
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"render"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Debugf("untagged")
	DebugTagf("render", "tagged")

	got := out.String()
	if strings.Contains(got, "untagged") {
		t.Errorf("untagged record passed an enabled-tags filter: %q", got)
	}
	if !strings.Contains(got, "tagged") {
		t.Errorf("tagged record missing: %q", got)
	}
}

func TestPackageFilter(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Infof("from the logger package")

	if out.Len() != 0 {
		t.Errorf("record from disabled package was logged: %q", out.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"err":     "ERROR",
		"bogus":   "INFO",
		"":        "INFO",
	}
	for in, want := range tests {
		if got := ParseLevel(in).String(); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
