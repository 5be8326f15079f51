package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadLine_TrimsWhitespace(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  alice  \n"))
	out := &bytes.Buffer{}

	got, err := ReadLine(r, "Username", out)
	if err != nil {
		t.Fatalf("ReadLine err: %v", err)
	}
	if got != "alice" {
		t.Fatalf("ReadLine = %q, want %q", got, "alice")
	}
	if !strings.Contains(out.String(), "Username") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestReadLine_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("alice"))

	got, err := ReadLine(r, "Username", &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ReadLine err: %v", err)
	}
	if got != "alice" {
		t.Fatalf("ReadLine = %q, want %q", got, "alice")
	}
}

func TestReadLine_EmptyInputAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))

	if _, err := ReadLine(r, "Username", &bytes.Buffer{}); err == nil {
		t.Fatal("want error on empty EOF")
	}
}

func TestReadPassword_UsesTerminalReader(t *testing.T) {
	orig := readPasswordFn
	readPasswordFn = func(_ int) ([]byte, error) { return []byte("secret"), nil }
	defer func() { readPasswordFn = orig }()

	pw, err := ReadPassword(&bytes.Buffer{})
	if err != nil {
		t.Fatalf("ReadPassword err: %v", err)
	}
	if string(pw) != "secret" {
		t.Fatalf("ReadPassword = %q", string(pw))
	}
}

func TestReadPassword_ErrorPropagates(t *testing.T) {
	orig := readPasswordFn
	readPasswordFn = func(_ int) ([]byte, error) { return nil, errors.New("no tty") }
	defer func() { readPasswordFn = orig }()

	if _, err := ReadPassword(&bytes.Buffer{}); err == nil {
		t.Fatal("want error from terminal reader")
	}
}
