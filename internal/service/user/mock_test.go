package user

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestMockGetNotFound(t *testing.T) {
	svc := NewMockUserService()

	_, err := svc.Get(context.Background(), "guest")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockPutCreatesAndNormalizes(t *testing.T) {
	svc := NewMockUserService()
	ctx := context.Background()

	p, err := svc.Put(ctx, "guest", ReplaceParams{
		Name:  "  Bob Smith ",
		Email: " Bob@Example.COM ",
		Phone: " 555 ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ID != "guest" {
		t.Errorf("expected ID guest, got %s", p.ID)
	}
	if p.Name != "Bob Smith" {
		t.Errorf("expected trimmed name, got %q", p.Name)
	}
	if p.Email != "bob@example.com" {
		t.Errorf("expected lowercased email, got %q", p.Email)
	}
	if p.Phone != "555" {
		t.Errorf("expected trimmed phone, got %q", p.Phone)
	}
	if p.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}

	got, err := svc.Get(ctx, "guest")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != *p {
		t.Fatalf("expected stored profile %+v, got %+v", p, got)
	}
}

func TestMockPutReplacesWholesale(t *testing.T) {
	svc := NewMockUserService()
	ctx := context.Background()

	if _, err := svc.Put(ctx, "guest", ReplaceParams{Name: "Alice", Email: "a@x.com", Phone: "555"}); err != nil {
		t.Fatalf("first put: %v", err)
	}
	p, err := svc.Put(ctx, "guest", ReplaceParams{Name: "Bob", Email: "b@x.com"})
	if err != nil {
		t.Fatalf("second put: %v", err)
	}
	if p.Name != "Bob" || p.Email != "b@x.com" || p.Phone != "" {
		t.Fatalf("expected full replacement, got %+v", p)
	}
}

func TestMockGetReturnsCopy(t *testing.T) {
	svc := NewMockUserService()
	ctx := context.Background()
	if _, err := svc.Put(ctx, "guest", ReplaceParams{Name: "Alice"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	p, _ := svc.Get(ctx, "guest")
	p.Name = "Mallory"

	again, _ := svc.Get(ctx, "guest")
	if again.Name != "Alice" {
		t.Fatalf("stored profile mutated through returned pointer: %q", again.Name)
	}
}

func TestMockPutUsesClock(t *testing.T) {
	svc := NewMockUserService()
	fixed := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	p, err := svc.Put(context.Background(), "guest", ReplaceParams{Name: "Alice"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if !p.UpdatedAt.Equal(fixed) {
		t.Fatalf("expected %s, got %s", fixed, p.UpdatedAt)
	}
}

func TestMockClear(t *testing.T) {
	svc := NewMockUserService()
	ctx := context.Background()
	_, _ = svc.Put(ctx, "guest", ReplaceParams{Name: "Alice"})

	svc.Clear()

	if _, err := svc.Get(ctx, "guest"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
}

func TestMockConcurrentPuts(t *testing.T) {
	svc := NewMockUserService()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			if _, err := svc.Put(ctx, "guest", ReplaceParams{Name: "Guest"}); err != nil {
				t.Errorf("put: %v", err)
			}
			_, _ = svc.Get(ctx, "guest")
		})
	}
	wg.Wait()

	p, err := svc.Get(ctx, "guest")
	if err != nil || p.Name != "Guest" {
		t.Fatalf("unexpected final state %+v, %v", p, err)
	}
}

func TestReplaceParamsNormalize(t *testing.T) {
	n := ReplaceParams{Name: "\tAlice\n", Email: " A@X.Com", Phone: ""}.Normalize()
	if n.Name != "Alice" || n.Email != "a@x.com" || n.Phone != "" {
		t.Fatalf("unexpected normalization %+v", n)
	}
}

func TestCategorizeError(t *testing.T) {
	tests := map[error]string{
		ErrNotFound:                  "not_found",
		context.Canceled:             "cancelled",
		context.DeadlineExceeded:     "cancelled",
		errors.New("firestore down"): "internal_error",
	}
	for err, want := range tests {
		if got := categorizeError(err); got != want {
			t.Errorf("categorizeError(%v) = %q, want %q", err, got, want)
		}
	}
}
