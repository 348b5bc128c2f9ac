package arena

import "testing"

func TestArenaStringRoundTrips(t *testing.T) {
	a := New(64, 0)
	got, err := a.String("hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestArenaResetReusesBackingStore(t *testing.T) {
	a := New(64, 0)
	if _, err := a.String("first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Reset()
	got, err := a.String("second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "second" {
		t.Errorf("got %q, want %q", got, "second")
	}
}

func TestArenaCapacityExceeded(t *testing.T) {
	a := New(8, 8)
	if _, err := a.Bytes(8); err != nil {
		t.Fatalf("unexpected error on first allocation: %v", err)
	}
	if _, err := a.Bytes(8); err != ErrCapacityExceeded {
		t.Errorf("got %v, want ErrCapacityExceeded", err)
	}
}

func TestListGrowsAndPreservesOrder(t *testing.T) {
	l := NewList[int](1)
	for i := 0; i < 10; i++ {
		l.Append(i)
	}
	if l.Len() != 10 {
		t.Fatalf("got length %d, want 10", l.Len())
	}
	for i := 0; i < 10; i++ {
		if l.At(i) != i {
			t.Errorf("At(%d) = %d, want %d", i, l.At(i), i)
		}
	}
}

func TestListTruncateShrinksAndAppendOverwritesTail(t *testing.T) {
	l := NewList[int](4)
	l.Append(1)
	l.Append(2)
	l.Append(3)
	l.Truncate(1)
	if l.Len() != 1 || l.At(0) != 1 {
		t.Fatalf("got len %d, first %d, want len 1, first 1", l.Len(), l.At(0))
	}
	l.Append(9)
	if l.Len() != 2 || l.At(1) != 9 {
		t.Errorf("got len %d, second %d, want len 2, second 9", l.Len(), l.At(1))
	}
}
