package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/rstrdata/pkg/brokenio"
)

var longstring = "0123456789012345678901234567890123456789"

func TestNotBroken(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
	b, err := io.ReadAll(rdr)
	if err != nil || string(b) != longstring {
		t.Fatal("unbroken reader broke", err)
	}
}

func TestFailAfter(t *testing.T) {
	for _, n := range []int{0, 1, 10, 39} {
		rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
		rdr.SetFailAfter(n)
		b, err := io.ReadAll(rdr)
		if !errors.Is(err, brokenio.ErrBroken) {
			t.Error("n", n, "wanted ErrBroken, got", err)
		}
		if len(b) != n || string(b) != longstring[:n] {
			t.Errorf("n %d got \"%s\"", n, b)
		}
	}
}

func TestProbFail(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
	rdr.SetProbFail(1)
	if _, err := rdr.Read(make([]byte, 5)); !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("probability 1 did not fail", err)
	}
	if rdr.NByte() != 0 {
		t.Fatal("bytes went through a failed read")
	}
}

func TestClose(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
	if rdr.NClose() != 0 {
		t.Fatal("closed before we started")
	}
	rdr.Close()
	if rdr.NClose() != 1 {
		t.Fatal("close not counted")
	}
}
