package vrop

import (
	"slices"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success[int, string](5)

	if !r.IsSuccess() || r.IsFailure() || r.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, msgs=%v", r.IsSuccess(), r.Value(), r.Messages())
	}
	if r.Messages() != nil {
		t.Fatalf("success must carry no messages, got: %v", r.Messages())
	}
}

func TestFailWith_PreservesOrderAndDuplicates(t *testing.T) {
	t.Parallel()
	r := FailWith[int]("a", "b", "a")

	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("expected failure, got success")
	}
	if !slices.Equal(r.Messages(), []string{"a", "b", "a"}) {
		t.Fatalf("expected messages [a b a], got: %v", r.Messages())
	}
	if r.Value() != 0 {
		t.Fatalf("failure value must be the zero value, got: %v", r.Value())
	}
}

func TestFailWith_PanicsOnEmpty(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("FailWith with no messages should panic")
		}
	}()
	FailWith[int, string]()
}

func TestFailWith_DetachesFromCallerSlice(t *testing.T) {
	t.Parallel()
	msgs := []string{"bad"}
	r := FailWith[int](msgs...)

	msgs[0] = "mutated"
	if r.Messages()[0] != "bad" {
		t.Fatalf("constructor must clone its input, got: %v", r.Messages())
	}

	got := r.Messages()
	got[0] = "mutated"
	if r.Messages()[0] != "bad" {
		t.Fatalf("accessor must return a copy, got: %v", r.Messages())
	}
}

func TestFailureFrom(t *testing.T) {
	t.Parallel()
	from := FailWith[string]("one", "two")
	r := FailureFrom[string, int](from)

	if r.IsSuccess() || !slices.Equal(r.Messages(), []string{"one", "two"}) {
		t.Fatalf("expected failure [one two], got: success=%v, msgs=%v", r.IsSuccess(), r.Messages())
	}
	if r.Id() != from.Id() || !r.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("trace metadata must carry over")
	}
}

func TestFailureFrom_PanicsOnSuccess(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("FailureFrom on a success should panic")
		}
	}()
	FailureFrom[int, string](Success[int, string](1))
}

func TestMatch_InvokesExactlyOneBranch(t *testing.T) {
	t.Parallel()

	got := Match(Success[int, string](3),
		func(v int) string { return "ok" },
		func(msgs []string) string { return "no" })
	if got != "ok" {
		t.Fatalf("expected success branch, got: %v", got)
	}

	got = Match(FailWith[int]("bad", "worse"),
		func(v int) string { return "ok" },
		func(msgs []string) string { return msgs[0] + "/" + msgs[1] })
	if got != "bad/worse" {
		t.Fatalf("expected failure branch with both messages, got: %v", got)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	ok := Map(Success[int, string](4), func(v int) int { return v * v })
	if !ok.IsSuccess() || ok.Value() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v", ok.IsSuccess(), ok.Value())
	}

	bad := Map(FailWith[int]("nope"), func(v int) int { return v * v })
	if bad.IsSuccess() || !slices.Equal(bad.Messages(), []string{"nope"}) {
		t.Fatalf("messages must pass through untransformed, got: %v", bad.Messages())
	}
}

func TestBind_LeftIdentity(t *testing.T) {
	t.Parallel()
	f := func(v int) Result[int, string] {
		if v > 10 {
			return FailWith[int]("too big")
		}
		return Success[int, string](v + 1)
	}

	for _, v := range []int{3, 11} {
		if !Equal(Bind(Success[int, string](v), f), f(v)) {
			t.Fatalf("Bind(Success(%d), f) must equal f(%d)", v, v)
		}
	}
}

func TestBind_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	called := false
	r := Bind(FailWith[int]("boom"), func(v int) Result[int, string] {
		called = true
		return Success[int, string](v)
	})

	if called {
		t.Fatalf("f should not be called when input is a failure")
	}
	if r.IsSuccess() || !slices.Equal(r.Messages(), []string{"boom"}) {
		t.Fatalf("expected failure [boom], got: success=%v, msgs=%v", r.IsSuccess(), r.Messages())
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	if !Equal(Success[int, string](1), Success[int, string](1)) {
		t.Fatalf("equal successes must compare equal regardless of trace metadata")
	}
	if Equal(Success[int, string](1), Success[int, string](2)) {
		t.Fatalf("different values must not compare equal")
	}
	if !Equal(FailWith[int]("a", "b"), FailWith[int]("a", "b")) {
		t.Fatalf("equal failures must compare equal")
	}
	if Equal(FailWith[int]("a", "b"), FailWith[int]("b", "a")) {
		t.Fatalf("message order is significant")
	}
	if Equal(Success[int, string](0), FailWith[int]("a")) {
		t.Fatalf("different variants must not compare equal")
	}
}

func TestMergeMessages(t *testing.T) {
	t.Parallel()

	got := MergeMessages([]string{"a"}, nil, []string{"b", "a"})
	if !slices.Equal(got, []string{"a", "b", "a"}) {
		t.Fatalf("expected [a b a], got: %v", got)
	}

	if len(MergeMessages[string]()) != 0 {
		t.Fatalf("merging nothing must yield an empty sequence")
	}
}
