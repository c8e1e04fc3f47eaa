package connector

import (
	"errors"
	"testing"

	"github.com/rafa3127/MCP-shared-Config/internal/environment"
	"github.com/spf13/afero"
)

// bare is a variant with no behaviours, standing in for a registry mistake.
type bare struct {
	*Base
}

func newBare(env environment.Snapshot, opts Options) Connector {
	c := &bare{}
	c.Base = newBase(c, Descriptor{}, env, opts)
	return c
}

func testOptions(t *testing.T, dirs ...string) Options {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		if err := fs.MkdirAll(d, 0755); err != nil {
			t.Fatalf("creating %s: %v", d, err)
		}
	}
	return Options{Fs: fs, HomeDir: "/home/tester"}
}

func TestDescriptorDefaults(t *testing.T) {
	opts := testOptions(t)
	env := environment.FromMap(nil)

	tests := []struct {
		ctor        Constructor
		name        string
		displayName string
		enabledVar  string
		priority    int
		instructed  bool
	}{
		{NewFilesystem, "filesystem", "Filesystem", "FILESYSTEM_ENABLED", 1, false},
		{NewGitHub, "github", "Github", "GITHUB_ENABLED", 1, false},
		{NewPlaywright, "playwright", "Playwright", "PLAYWRIGHT_ENABLED", 1, false},
		{NewGoogleDrive, "googledrive", "Googledrive", "GDRIVE_ENABLED", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.ctor(env, opts).Info()
			if info.Name != tt.name {
				t.Errorf("Name = %q, want %q", info.Name, tt.name)
			}
			if info.DisplayName != tt.displayName {
				t.Errorf("DisplayName = %q, want %q", info.DisplayName, tt.displayName)
			}
			if info.EnabledVar != tt.enabledVar {
				t.Errorf("EnabledVar = %q, want %q", info.EnabledVar, tt.enabledVar)
			}
			if info.Priority != tt.priority {
				t.Errorf("Priority = %d, want %d", info.Priority, tt.priority)
			}
			if (info.Instructions != "") != tt.instructed {
				t.Errorf("Instructions present = %v, want %v", info.Instructions != "", tt.instructed)
			}
			if info.Enabled {
				t.Error("connector enabled on an empty snapshot")
			}
		})
	}
}

func TestIsEnabled_ExactTrueOnly(t *testing.T) {
	opts := testOptions(t)
	values := map[string]bool{
		"true":  true,
		"TRUE":  false,
		"True":  false,
		"1":     false,
		"yes":   false,
		"false": false,
		"":      false,
		" true": false,
	}

	for value, want := range values {
		t.Run(value, func(t *testing.T) {
			env := environment.FromMap(map[string]string{"PLAYWRIGHT_ENABLED": value})
			if got := NewPlaywright(env, opts).IsEnabled(); got != want {
				t.Errorf("IsEnabled() with %q = %v, want %v", value, got, want)
			}
		})
	}
}

func TestDisabledConnectors_AreSilent(t *testing.T) {
	opts := testOptions(t)
	// Settings present but no enabled vars: nothing may be reported.
	env := environment.FromMap(map[string]string{
		"FILESYSTEM_ALLOWED_PATHS": "/does/not/exist",
		"GITHUB_TOKEN":             "short",
		"PLAYWRIGHT_HEADLESS":      "maybe",
		"GDRIVE_CREDENTIALS_PATH":  "/nope.txt",
		"GDRIVE_ENABLED":           "yes",
	})

	for _, ctor := range append(Registered(), newBare) {
		c := ctor(env, opts)
		t.Run(c.Name(), func(t *testing.T) {
			result, err := c.Validate()
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !result.Valid || len(result.Errors) != 0 || len(result.Warnings) != 0 {
				t.Errorf("disabled connector reported %+v", result)
			}

			frag, err := c.GenerateConfig()
			if err != nil {
				t.Fatalf("GenerateConfig: %v", err)
			}
			if frag != nil {
				t.Errorf("disabled connector produced fragment %+v", frag)
			}
		})
	}
}

func TestEnabledConnectors_AlwaysProduceFragment(t *testing.T) {
	opts := testOptions(t)
	env := environment.FromMap(map[string]string{
		"FILESYSTEM_ENABLED": "true",
		"GITHUB_ENABLED":     "true",
		"PLAYWRIGHT_ENABLED": "true",
		"GDRIVE_ENABLED":     "true",
	})

	for _, ctor := range Registered() {
		c := ctor(env, opts)
		frag, err := c.GenerateConfig()
		if err != nil {
			t.Fatalf("%s: GenerateConfig: %v", c.Name(), err)
		}
		if frag == nil {
			t.Fatalf("%s: enabled connector returned nil fragment", c.Name())
		}
		if frag.Command != "npx" {
			t.Errorf("%s: Command = %q, want npx", c.Name(), frag.Command)
		}
		if frag.Args == nil {
			t.Errorf("%s: Args is nil", c.Name())
		}
	}
}

func TestMissingBehaviour_IsProgrammingError(t *testing.T) {
	env := environment.FromMap(map[string]string{"BARE_ENABLED": "true"})
	c := newBare(env, testOptions(t))

	if _, err := c.Validate(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Validate error = %v, want ErrNotImplemented", err)
	}
	if _, err := c.GenerateConfig(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("GenerateConfig error = %v, want ErrNotImplemented", err)
	}
	if _, err := c.RequiredEnvVars(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("RequiredEnvVars error = %v, want ErrNotImplemented", err)
	}
}

func TestRequiredAndOptionalEnvVars(t *testing.T) {
	opts := testOptions(t)
	env := environment.FromMap(nil)

	tests := []struct {
		ctor     Constructor
		required []string
		optional []string
	}{
		{NewFilesystem, []string{"FILESYSTEM_ALLOWED_PATHS"}, []string{"FILESYSTEM_VERSION"}},
		{NewGitHub, []string{"GITHUB_TOKEN"}, []string{"GITHUB_VERSION"}},
		{NewPlaywright, []string{}, []string{"PLAYWRIGHT_HEADLESS", "PLAYWRIGHT_TIMEOUT", "PLAYWRIGHT_VIEWPORT", "PLAYWRIGHT_VERSION"}},
		{NewGoogleDrive, []string{"GDRIVE_CREDENTIALS_PATH"}, []string{"GDRIVE_VERSION"}},
	}

	for _, tt := range tests {
		c := tt.ctor(env, opts)
		t.Run(c.Name(), func(t *testing.T) {
			required, err := c.RequiredEnvVars()
			if err != nil {
				t.Fatalf("RequiredEnvVars: %v", err)
			}
			assertStrings(t, "required", required, tt.required)
			assertStrings(t, "optional", c.OptionalEnvVars(), tt.optional)
		})
	}
}

func TestDocs(t *testing.T) {
	opts := testOptions(t)
	env := environment.FromMap(nil)

	if got := NewGoogleDrive(env, opts).Docs(); got == "" || got[0] != '#' {
		t.Errorf("googledrive docs should be markdown, got %q", got)
	}
	if got := newBare(env, opts).Docs(); got != "# Bare\n\nNo documentation yet.\n" {
		t.Errorf("fallback docs = %q", got)
	}
}

func TestOptions_HomeFromSnapshot(t *testing.T) {
	env := environment.FromMap(map[string]string{"USERPROFILE": `C:\Users\me`})
	opts := Options{}.withDefaults(env)
	if opts.HomeDir != `C:\Users\me` {
		t.Errorf("HomeDir = %q, want USERPROFILE fallback", opts.HomeDir)
	}
	if opts.Fs == nil {
		t.Error("Fs default not set")
	}

	env = environment.FromMap(map[string]string{"HOME": "/home/me", "USERPROFILE": "x"})
	if got := (Options{}).withDefaults(env).HomeDir; got != "/home/me" {
		t.Errorf("HomeDir = %q, want HOME", got)
	}
}

func TestDescriptorAccessors(t *testing.T) {
	env := environment.FromMap(map[string]string{"GDRIVE_ENABLED": "true"})
	c := NewGoogleDrive(env, testOptions(t)).(*GoogleDrive)

	if c.EnabledVar() != "GDRIVE_ENABLED" {
		t.Errorf("EnabledVar() = %q, want GDRIVE_ENABLED", c.EnabledVar())
	}
	if c.Priority() != 10 {
		t.Errorf("Priority() = %d, want 10", c.Priority())
	}
	if c.Instructions() == "" {
		t.Error("Instructions() is empty")
	}
	if c.versionVar() != "GDRIVE_VERSION" {
		t.Errorf("versionVar() = %q, want GDRIVE_VERSION", c.versionVar())
	}
	if !c.IsEnabled() {
		t.Error("IsEnabled() = false with GDRIVE_ENABLED=true")
	}
}

func assertStrings(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s = %v, want %v", label, got, want)
		}
	}
}
