package proxy

import (
	"bytes"
	"testing"
)

func TestBodyBufferAppendAndSize(t *testing.T) {
	var bb BodyBuffer

	if !bb.IsEmpty() || bb.Size() != 0 {
		t.Fatal("fresh buffer should be empty")
	}

	bb.Append([]byte("hello "))
	bb.Append(nil)
	bb.Append([]byte("world"))

	if bb.Size() != 11 {
		t.Errorf("size = %d, want 11", bb.Size())
	}
	if got := bb.Snapshot(); !bytes.Equal(got, []byte("hello world")) {
		t.Errorf("snapshot = %q", got)
	}
	// Snapshot 은 버퍼를 변경하지 않습니다.
	if bb.Size() != 11 {
		t.Errorf("size after snapshot = %d, want 11", bb.Size())
	}
}

func TestBodyBufferAppendCopies(t *testing.T) {
	var bb BodyBuffer

	src := []byte("abc")
	bb.Append(src)
	src[0] = 'z'

	if got := bb.Snapshot(); !bytes.Equal(got, []byte("abc")) {
		t.Errorf("buffer aliased caller memory: %q", got)
	}
}

func TestBodyBufferTakeDrains(t *testing.T) {
	var bb BodyBuffer

	bb.Append([]byte("data"))
	got := bb.Take()

	if !bytes.Equal(got, []byte("data")) {
		t.Errorf("take = %q", got)
	}
	if !bb.IsEmpty() {
		t.Error("buffer not empty after take")
	}
	if len(bb.Take()) != 0 {
		t.Error("second take should be empty")
	}
}

func TestBodyBufferClear(t *testing.T) {
	var bb BodyBuffer

	bb.Append([]byte("data"))
	bb.Clear()

	if !bb.IsEmpty() || bb.Size() != 0 {
		t.Error("buffer not empty after clear")
	}
	bb.Append([]byte("x"))
	if bb.Size() != 1 {
		t.Errorf("size after reuse = %d, want 1", bb.Size())
	}
}
