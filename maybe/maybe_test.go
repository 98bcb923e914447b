package maybe_test

import (
	"testing"

	. "github.com/npillmayer/persistent/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7).Map(func(n int) int { return n * 2 })
	if x.WithDefault(0) != 14 {
		t.Errorf("expected Just(7) doubled to be 14, is %v", x)
	}
	y := Nothing[int]().Map(func(n int) int { return n * 2 })
	if y.WithDefault(-1) != -1 {
		t.Errorf("expected Nothing to stay Nothing, is %v", y)
	}
}

func TestMaybeAndThen(t *testing.T) {
	half := func(n int) Maybe[int] {
		if n%2 != 0 {
			return Nothing[int]()
		}
		return Just(n / 2)
	}
	if v := AndThen(half, Just(14)).WithDefault(-1); v != 7 {
		t.Errorf("expected half of Just(14) to be 7, is %d", v)
	}
	if v := AndThen(half, Just(7)).WithDefault(-1); v != -1 {
		t.Errorf("expected half of Just(7) to be Nothing, is %d", v)
	}
}
