package shader

import (
	"errors"
	"fmt"
	"testing"
	"unsafe"
)

func TestCompileErrorMessage(t *testing.T) {
	tests := []struct {
		err  *CompileError
		want string
	}{
		{&CompileError{Stage: "vertex", Log: "0:3: 'aPos' : undeclared identifier\n\x00"}, "vertex shader: 0:3: 'aPos' : undeclared identifier"},
		{&CompileError{Stage: "link", Log: "no info log"}, "link shader: no info log"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestCompileErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("building shader program: %w", &CompileError{Stage: "fragment", Log: "syntax error"})

	var compileErr *CompileError
	if !errors.As(wrapped, &compileErr) {
		t.Fatal("errors.As did not find *CompileError")
	}
	if compileErr.Stage != "fragment" {
		t.Errorf("stage = %s", compileErr.Stage)
	}
}

func TestInfoLog(t *testing.T) {
	if got := infoLog(0, func(*uint8) { t.Error("read called for empty log") }); got != "no info log" {
		t.Errorf("empty log = %q", got)
	}

	got := infoLog(4, func(buf *uint8) {
		copy(unsafe.Slice(buf, 4), "oops")
	})
	if got != "oops" {
		t.Errorf("infoLog = %q", got)
	}
}
