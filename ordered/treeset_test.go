package ordered

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetSortedIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.ordered")
	defer teardown()
	//
	s := SetFrom(Natural[string], "pear", "apple", "quince", "banana")
	want := []string{"apple", "banana", "pear", "quince"}
	got := s.Elements()
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, have %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %q at position %d, have %q", want[i], i, got[i])
		}
	}
}

func TestSetIdempotentInsert(t *testing.T) {
	s := SetFrom(Natural[int], 1, 2, 3)
	s2 := s.With(2)
	if s2.m.root != s.m.root {
		t.Error("expected insertion of a member to return the set unchanged, doesn't")
	}
	if s2.Len() != 3 {
		t.Errorf("expected size to stay 3, is %d", s2.Len())
	}
}

func TestSetImmutability(t *testing.T) {
	s1 := SetFrom(Natural[int], 1, 2)
	s2 := s1.With(3)
	s3 := s2.WithDeleted(1)
	if s1.Len() != 2 || s2.Len() != 3 || s3.Len() != 2 {
		t.Fatalf("expected sizes 2/3/2, have %d/%d/%d", s1.Len(), s2.Len(), s3.Len())
	}
	if s1.Has(3) || !s2.Has(1) {
		t.Error("expected derived mutations to leave originals unchanged, don't")
	}
}

func TestSetNavigation(t *testing.T) {
	s := SetFrom(Natural[int], 10, 20, 30)
	if s.First().WithDefault(-1) != 10 || s.Last().WithDefault(-1) != 30 {
		t.Errorf("expected first/last 10/30, have %d/%d",
			s.First().WithDefault(-1), s.Last().WithDefault(-1))
	}
	if s.Floor(25).WithDefault(-1) != 20 {
		t.Errorf("expected floor(25) = 20, is %d", s.Floor(25).WithDefault(-1))
	}
	if s.Ceiling(25).WithDefault(-1) != 30 {
		t.Errorf("expected ceiling(25) = 30, is %d", s.Ceiling(25).WithDefault(-1))
	}
	if s.Lower(10).WithDefault(-1) != -1 {
		t.Error("expected lower(10) to be Nothing, isn't")
	}
	if s.Higher(20).WithDefault(-1) != 30 {
		t.Errorf("expected higher(20) = 30, is %d", s.Higher(20).WithDefault(-1))
	}
}

func TestSetRangeViews(t *testing.T) {
	s := SetFrom(Natural[int], 1, 2, 3, 4, 5, 6)
	head := s.HeadSet(4, false)
	if head.Len() != 3 || head.Has(4) {
		t.Errorf("expected head set {1 2 3}, have %v", head.Elements())
	}
	tail := s.TailSet(4, true)
	if got := tail.Elements(); len(got) != 3 || got[0] != 4 {
		t.Errorf("expected tail set [4 5 6], have %v", got)
	}
	sub := s.SubSet(2, 5)
	if got := sub.Elements(); len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("expected sub set [2 3 4], have %v", got)
	}
	if sub.First().WithDefault(-1) != 2 || sub.Last().WithDefault(-1) != 4 {
		t.Error("expected first/last of sub set to be 2/4, aren't")
	}
}

func TestSetDescending(t *testing.T) {
	s := SetFrom(Natural[int], 2, 1, 3)
	got := s.Descending().Elements()
	if len(got) != 3 || got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Errorf("expected descending [3 2 1], have %v", got)
	}
	if s.Descending().First().WithDefault(-1) != 3 {
		t.Error("expected descending first to be the greatest element, isn't")
	}
}

func TestSetDuplicatesInFactory(t *testing.T) {
	s := SetFrom(Natural[string], "x", "y", "x")
	if s.Len() != 2 {
		t.Errorf("expected factory to drop duplicates, size is %d", s.Len())
	}
}
