package vars

import "testing"

func TestForEachStateOuterToInner(t *testing.T) {
	chain := NewState(KindDocument, 1).
		PushNamed(KindVariable, 2, "review").
		Push(KindObjectValue, 0).
		PushNamed(KindObjectField, 0, "stars")

	var kinds []Kind
	ForEachState(chain, func(s *State) {
		kinds = append(kinds, s.Kind())
	})

	want := []Kind{KindDocument, KindVariable, KindObjectValue, KindObjectField}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d states, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestForEachStateSingleNode(t *testing.T) {
	calls := 0
	ForEachState(NewState(KindDocument, 0), func(s *State) {
		calls++
		if s.Kind() != KindDocument {
			t.Errorf("kind = %s, want Document", s.Kind())
		}
	})
	if calls != 1 {
		t.Errorf("visited %d states, want 1", calls)
	}
}

func TestForEachStateNil(t *testing.T) {
	ForEachState(nil, func(s *State) {
		t.Error("callback invoked for nil chain")
	})
}

func TestPushDoesNotMutateParent(t *testing.T) {
	doc := NewState(KindDocument, 1)
	a := doc.PushNamed(KindVariable, 2, "a")
	b := doc.PushNamed(KindVariable, 2, "b")

	if a.Prev() != doc || b.Prev() != doc {
		t.Fatal("children do not share the parent")
	}
	if doc.Kind() != KindDocument || doc.Step() != 1 || doc.Name() != "" {
		t.Error("parent changed after Push")
	}
	if a.Name() != "a" || b.Name() != "b" {
		t.Error("sibling states interfere")
	}
}

func TestKindString(t *testing.T) {
	if got := KindObjectField.String(); got != "ObjectField" {
		t.Errorf("KindObjectField.String() = %q", got)
	}
	if got := Kind(99).String(); got != "Unknown" {
		t.Errorf("Kind(99).String() = %q", got)
	}
}
