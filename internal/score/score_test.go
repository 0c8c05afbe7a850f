package score

import "testing"

func TestNewTracker_ZeroTally(t *testing.T) {
	tr := NewTracker("red", "teal")
	if tr.Total() != 0 {
		t.Errorf("Total() = %d, want 0", tr.Total())
	}
	ranked := tr.Ranked()
	if len(ranked) != 2 {
		t.Fatalf("Ranked() len = %d, want 2", len(ranked))
	}
	for _, e := range ranked {
		if e.Count != 0 {
			t.Errorf("%s count = %d, want 0", e.Name, e.Count)
		}
	}
}

func TestTracker_Credit(t *testing.T) {
	tr := NewTracker("red", "teal")
	tr.Credit("teal")
	tr.Credit("teal")
	tr.Credit("red")

	if tr.Total() != 30 {
		t.Errorf("Total() = %d, want 30", tr.Total())
	}
	if tr.Hits("teal") != 2 {
		t.Errorf("Hits(teal) = %d, want 2", tr.Hits("teal"))
	}
	if tr.Hits("red") != 1 {
		t.Errorf("Hits(red) = %d, want 1", tr.Hits("red"))
	}
}

func TestTracker_TotalIsTenPerHit(t *testing.T) {
	tr := NewTracker("a", "b", "c")
	names := []string{"a", "c", "c", "b", "a", "a", "c"}
	for i, name := range names {
		tr.Credit(name)
		if want := (i + 1) * PointsPerHit; tr.Total() != want {
			t.Fatalf("after %d hits Total() = %d, want %d", i+1, tr.Total(), want)
		}
	}
}

func TestTracker_CreditUnknownName(t *testing.T) {
	tr := NewTracker("red")
	tr.Credit("ghost")
	if tr.Hits("ghost") != 1 {
		t.Errorf("Hits(ghost) = %d, want 1", tr.Hits("ghost"))
	}
	if len(tr.Ranked()) != 2 {
		t.Errorf("Ranked() len = %d, want 2", len(tr.Ranked()))
	}
}

func TestTracker_RankedDescendingStable(t *testing.T) {
	tr := NewTracker("a", "b", "c", "d")
	tr.Credit("c")
	tr.Credit("c")
	tr.Credit("b")
	tr.Credit("d")

	ranked := tr.Ranked()
	want := []string{"c", "b", "d", "a"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].Name, name)
		}
	}
	if ranked[0].Points() != 20 {
		t.Errorf("ranked[0].Points() = %d, want 20", ranked[0].Points())
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker("red", "teal")
	tr.Credit("red")
	tr.Reset("red", "teal")

	if tr.Total() != 0 {
		t.Errorf("Total() after Reset = %d, want 0", tr.Total())
	}
	if tr.Hits("red") != 0 {
		t.Errorf("Hits(red) after Reset = %d, want 0", tr.Hits("red"))
	}
}

func TestTracker_RepeatedRosterNamesMerge(t *testing.T) {
	tr := NewTracker("red", "teal", "red")
	if got := len(tr.Ranked()); got != 2 {
		t.Errorf("Ranked() len = %d, want 2", got)
	}
	tr.Credit("red")
	tr.Credit("red")
	if tr.Hits("red") != 2 {
		t.Errorf("Hits(red) = %d, want 2", tr.Hits("red"))
	}
}
