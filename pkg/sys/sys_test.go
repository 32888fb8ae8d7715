package sys

import (
	"testing"

	"github.com/elves/consort/pkg/must"
)

func TestIsTerminal_Pipe(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if IsTerminal(r) || IsTerminal(w) {
		t.Errorf("pipe is reported as a terminal")
	}
}

func TestIsTerminal_Nil(t *testing.T) {
	if IsTerminal(nil) {
		t.Errorf("nil file is reported as a terminal")
	}
}
