package arena

import "testing"

func TestPushPointerStability(t *testing.T) {
	a := New[int](2)
	var ptrs []*int
	for i := 0; i < 50; i++ {
		ptrs = append(ptrs, a.Push(i))
	}
	for i, p := range ptrs {
		if *p != i {
			t.Fatalf("ptrs[%d] now reads %d, want %d (pointer invalidated by growth)", i, *p, i)
		}
	}
}

func TestLenAndEach(t *testing.T) {
	a := New[string](4)
	a.Push("a")
	a.Push("b")
	a.Push("c")
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	var got []string
	a.Each(func(s *string) { got = append(got, *s) })
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each order mismatch at %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestDefaultChunkSize(t *testing.T) {
	a := New[int](0)
	for i := 0; i < 200; i++ {
		a.Push(i)
	}
	if a.Len() != 200 {
		t.Fatalf("Len() = %d, want 200", a.Len())
	}
}
