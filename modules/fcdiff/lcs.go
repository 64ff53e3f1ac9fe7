package fcdiff

import (
	"math"
	"sort"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// buildFingerprintMap is C4's FingerprintMap: fingerprint -> the
// positions in B that carry it, in ascending order. Spec.md models this
// as a singly-linked list per fingerprint bucket; gods's
// singlylinkedlist is used verbatim for that bucket instead of
// hand-rolled next-pointers.
func buildFingerprintMap(b *LineSequence) map[uint32]*singlylinkedlist.List {
	m := make(map[uint32]*singlylinkedlist.List, len(b.Lines))
	for j, line := range b.Lines {
		bucket, ok := m[line.Fingerprint]
		if !ok {
			bucket = singlylinkedlist.New()
			m[line.Fingerprint] = bucket
		}
		bucket.Add(j)
	}
	return m
}

// lcsMatch computes an optimal longest common subsequence of a and b,
// keyed by fingerprint equality, via Hunt-McIlroy threshold search. Each
// A-line's candidate B-positions are walked in descending order, so one
// A-line never extends two chain lengths in the same pass, and an update
// is only accepted when it strictly lowers the running threshold, so
// each length keeps its smallest ending B-position.
func lcsMatch(a, b *LineSequence) (lcsA, lcsB []int) {
	if len(a.Lines) == 0 || len(b.Lines) == 0 {
		return nil, nil
	}
	fpMap := buildFingerprintMap(b)

	bound := min(len(a.Lines), len(b.Lines))
	thresholds := make([]int, bound+2)
	thresholds[0] = -1
	for k := 1; k < len(thresholds); k++ {
		thresholds[k] = math.MaxInt
	}
	predecessorA := make([]int, len(a.Lines))
	bToA := make(map[int]int, bound)
	lcsLen := 0

	for i, line := range a.Lines {
		bucket, ok := fpMap[line.Fingerprint]
		if !ok {
			continue
		}
		vals := bucket.Values()
		for j := len(vals) - 1; j >= 0; j-- {
			bIdx := vals[j].(int)
			k := smallestThresholdAtLeast(thresholds, bIdx)
			if bIdx >= thresholds[k] {
				continue
			}
			thresholds[k] = bIdx
			predecessorA[i] = thresholds[k-1]
			bToA[bIdx] = i
			if k > lcsLen {
				lcsLen = k
			}
		}
	}
	if lcsLen == 0 {
		return nil, nil
	}

	pairs := make([][2]int, 0, lcsLen)
	bIdx := thresholds[lcsLen]
	for bIdx != -1 {
		aIdx, ok := bToA[bIdx]
		if !ok {
			break
		}
		pairs = append(pairs, [2]int{aIdx, bIdx})
		bIdx = predecessorA[aIdx]
	}
	lcsA = make([]int, len(pairs))
	lcsB = make([]int, len(pairs))
	for i, p := range pairs {
		lcsA[len(pairs)-1-i] = p[0]
		lcsB[len(pairs)-1-i] = p[1]
	}
	return lcsA, lcsB
}

// smallestThresholdAtLeast returns the smallest k such that
// thresholds[k] >= b, searching thresholds[1:]; slots beyond the current
// LCS length still hold math.MaxInt, so the result is at most one past
// it (thresholds[0] is always -1 and is never returned).
func smallestThresholdAtLeast(thresholds []int, b int) int {
	r := sort.Search(len(thresholds)-1, func(idx int) bool {
		return thresholds[idx+1] >= b
	})
	return r + 1
}
