package iox

import (
	"errors"
	"testing"
)

type closer struct {
	closed bool
	err    error
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestDiscardClose(t *testing.T) {
	c := &closer{err: errors.New("close failed")}
	DiscardClose(c)
	if !c.closed {
		t.Error("DiscardClose did not close")
	}
}

func TestCloseFunc(t *testing.T) {
	c := &closer{}
	fn := CloseFunc(c)
	if c.closed {
		t.Error("CloseFunc closed eagerly")
	}
	fn()
	if !c.closed {
		t.Error("returned func did not close")
	}
}

func TestDiscardErr(t *testing.T) {
	called := false
	DiscardErr(func() error {
		called = true
		return errors.New("flush failed")
	})
	if !called {
		t.Error("DiscardErr did not call fn")
	}
}
