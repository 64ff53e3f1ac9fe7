package fcdiff

// resyncFilter implements C5: keep only runs of the LCS whose length is
// at least resyncLines, discarding shorter "coincidental" matches so
// the emitter consolidates them into their surrounding difference
// block. A resyncLines of 1 or less is the identity filter.
//
// A run that is too short to stand on its own is kept anyway when it
// touches the start or the end of both sequences: the files are
// already in sync at offset zero with nothing before it to resync
// from, and a run that reaches the last line of both files needs no
// lookahead to confirm it holds, since there is nothing left to
// compare. Only an interior run bounded by differences on both sides
// needs resyncLines consecutive matches to count as a real resync
// point; lenA and lenB are the total line counts used to recognize
// that trailing case.
func resyncFilter(lcsA, lcsB []int, resyncLines, lenA, lenB int) ([]int, []int) {
	if resyncLines <= 1 || len(lcsA) == 0 {
		return lcsA, lcsB
	}
	var outA, outB []int
	runStart := 0
	for i := 1; i <= len(lcsA); i++ {
		broken := i == len(lcsA) || lcsA[i] != lcsA[i-1]+1 || lcsB[i] != lcsB[i-1]+1
		if !broken {
			continue
		}
		runLen := i - runStart
		touchesStart := lcsA[runStart] == 0 && lcsB[runStart] == 0
		touchesEnd := lcsA[i-1] == lenA-1 && lcsB[i-1] == lenB-1
		if runLen >= resyncLines || touchesStart || touchesEnd {
			outA = append(outA, lcsA[runStart:i]...)
			outB = append(outB, lcsB[runStart:i]...)
		}
		runStart = i
	}
	return outA, outB
}
