package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// CaptureOutput returns what fn writes to stdout
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()
	stdout, _ := CaptureStreams(t, fn)
	return stdout
}

// CaptureStreams returns what fn writes to stdout and to stderr.
// Human errors and the delete prompt go to stderr.
func CaptureStreams(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	outR, outW := pipe(t)
	errR, errW := pipe(t)

	oldStdout, oldStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	defer func() { os.Stdout, os.Stderr = oldStdout, oldStderr }()

	outC := drain(outR)
	errC := drain(errR)

	fn()

	_ = outW.Close()
	_ = errW.Close()
	return <-outC, <-errC
}

func pipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	return r, w
}

func drain(r *os.File) <-chan string {
	c := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		c <- buf.String()
	}()
	return c
}
