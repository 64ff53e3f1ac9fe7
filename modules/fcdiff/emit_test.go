package fcdiff

import (
	"context"
	"testing"
)

func TestEmitTextDiffAllMatched(t *testing.T) {
	emitted, err := emitTextDiff(context.Background(), &UserContext{}, []int{0, 1, 2}, []int{0, 1, 2}, 3, 3, func(*UserContext, DiffBlock) {
		t.Fatal("callback should not fire when every line matches")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emitted {
		t.Fatal("expected emitted=false")
	}
}

func TestEmitTextDiffPureAddition(t *testing.T) {
	var blocks []DiffBlock
	emitted, err := emitTextDiff(context.Background(), &UserContext{}, []int{0, 1}, []int{0, 2}, 2, 3, func(_ *UserContext, b DiffBlock) {
		blocks = append(blocks, b)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !emitted || len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1: %v", len(blocks), blocks)
	}
	b := blocks[0]
	if b.Kind != Add || b.StartB != 1 || b.EndB != 2 {
		t.Fatalf("got %+v, want an Add of B[1:2]", b)
	}
}

func TestEmitTextDiffPureDeletion(t *testing.T) {
	var blocks []DiffBlock
	_, err := emitTextDiff(context.Background(), &UserContext{}, []int{1, 2}, []int{0, 1}, 3, 2, func(_ *UserContext, b DiffBlock) {
		blocks = append(blocks, b)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Kind != Delete || blocks[0].StartA != 0 || blocks[0].EndA != 1 {
		t.Fatalf("got %+v, want a Delete of A[0:1]", blocks)
	}
}

func TestEmitTextDiffChangeBlock(t *testing.T) {
	var blocks []DiffBlock
	_, err := emitTextDiff(context.Background(), &UserContext{}, nil, nil, 2, 3, func(_ *UserContext, b DiffBlock) {
		blocks = append(blocks, b)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Kind != Change {
		t.Fatalf("got %+v, want a single Change covering both files entirely", blocks)
	}
	b := blocks[0]
	if b.StartA != 0 || b.EndA != 2 || b.StartB != 0 || b.EndB != 3 {
		t.Fatalf("unexpected block bounds: %+v", b)
	}
}

func TestEmitTextDiffOrderingIsAscending(t *testing.T) {
	var lastA int
	first := true
	_, err := emitTextDiff(context.Background(), &UserContext{}, []int{1, 4}, []int{1, 4}, 6, 6, func(_ *UserContext, b DiffBlock) {
		if !first && b.StartA < lastA {
			t.Fatalf("blocks out of order: StartA=%d after %d", b.StartA, lastA)
		}
		first = false
		lastA = b.StartA
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmitTextDiffCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := emitTextDiff(ctx, &UserContext{}, nil, nil, 2, 3, func(*UserContext, DiffBlock) {})
	if err == nil {
		t.Fatal("expected an error for a canceled context")
	}
}
