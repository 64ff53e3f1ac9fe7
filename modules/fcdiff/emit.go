package fcdiff

import "context"

// emitTextDiff implements C6: walk the filtered LCS and synthesize
// add/delete/change blocks between consecutive anchors, invoking cb in
// strictly ascending (StartA, StartB) order. It reports whether any
// block was emitted. goctx is checked between blocks, not mid-block: a
// cancellation takes effect at the next emission boundary.
func emitTextDiff(goctx context.Context, ctx *UserContext, lcsA, lcsB []int, lenA, lenB int, cb Callback) (bool, error) {
	curA, curB := 0, 0
	emitted := false
	steps := len(lcsA) + 1
	for i := 0; i < steps; i++ {
		if err := goctx.Err(); err != nil {
			return emitted, err
		}
		anchorA, anchorB := lenA, lenB
		if i < len(lcsA) {
			anchorA, anchorB = lcsA[i], lcsB[i]
		}
		switch {
		case curA < anchorA && curB < anchorB:
			cb(ctx, DiffBlock{Kind: Change, StartA: curA, EndA: anchorA, StartB: curB, EndB: anchorB})
			emitted = true
		case curA < anchorA:
			cb(ctx, DiffBlock{Kind: Delete, StartA: curA, EndA: anchorA, StartB: curB, EndB: curB})
			emitted = true
		case curB < anchorB:
			cb(ctx, DiffBlock{Kind: Add, StartA: curA, EndA: curA, StartB: curB, EndB: anchorB})
			emitted = true
		}
		curA, curB = anchorA+1, anchorB+1
	}
	return emitted, nil
}
