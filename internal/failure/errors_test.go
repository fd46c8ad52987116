package failure

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestIsHelpersSeeThroughWrapping(t *testing.T) {
	cfg := fmt.Errorf("loading library: %w", Configf("invalid folder %q", "../etc"))
	link := fmt.Errorf("exposing: %w", Link("symlink", "/src", "/dst", os.ErrPermission))
	nf := fmt.Errorf("lookup: %w", &NotFoundError{What: "composer.lock", Path: "/p"})

	if !IsConfig(cfg) || IsLink(cfg) || IsNotFound(cfg) {
		t.Errorf("config error classified wrong: %v", cfg)
	}
	if !IsLink(link) || IsConfig(link) {
		t.Errorf("link error classified wrong: %v", link)
	}
	if !IsNotFound(nf) || IsLink(nf) {
		t.Errorf("not-found error classified wrong: %v", nf)
	}
	if !errors.Is(link, os.ErrPermission) {
		t.Error("LinkError should unwrap to its cause")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{Configf("bad %s", "dir"), "bad dir"},
		{&ConfigError{Msg: "reading", Err: errors.New("boom")}, "reading: boom"},
		{Link("copy", "/a", "/b", nil), "copy /b -> /a"},
		{&NotFoundError{What: "package foo/bar"}, "package foo/bar not found"},
		{&NotFoundError{What: "descriptor", Path: "/x/composer.json"}, "descriptor not found at /x/composer.json"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("ExitCode(nil) = %d", got)
	}
	if got := ExitCode(fmt.Errorf("x: %w", Configf("nope"))); got != ExitConfigError {
		t.Errorf("ExitCode(config) = %d", got)
	}
	if got := ExitCode(Link("junction", "a", "b", nil)); got != ExitFailure {
		t.Errorf("ExitCode(link) = %d", got)
	}
}
