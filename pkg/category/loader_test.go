package category

import (
	"context"
	"errors"
	"testing"
)

func TestLoader_FetchesOnce(t *testing.T) {
	calls := 0
	loader := NewLoader(func(ctx context.Context) ([]Ref, error) {
		calls++
		return []Ref{{ID: 1, Name: "Family"}}, nil
	})

	for i := 0; i < 3; i++ {
		catalog, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(catalog) != 1 {
			t.Fatalf("unexpected catalog: %#v", catalog)
		}
	}

	if calls != 1 {
		t.Fatalf("expected a single fetch, got %d", calls)
	}
	if !loader.Requested() {
		t.Fatal("loader should report the session load as triggered")
	}
}

func TestLoader_FailureIsNotRetried(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	loader := NewLoader(func(ctx context.Context) ([]Ref, error) {
		calls++
		return nil, boom
	})

	for i := 0; i < 2; i++ {
		if _, err := loader.Load(context.Background()); !errors.Is(err, boom) {
			t.Fatalf("expected the cached failure, got %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("failed load should not retry, got %d calls", calls)
	}
}
