package fcdiff

import (
	"bytes"
	"context"
	"fmt"
)

// Compare implements C8, the mode dispatcher, and is the package's
// primary entry point (CompareUTF8 wraps it). It canonicalizes both paths, decides between the
// text and binary branches (classifying automatically under Auto),
// drives the appropriate pipeline, and returns the outcome without ever
// formatting anything itself; every reported difference goes through
// cfg.Callback.
//
// ctx is checked before any I/O begins and again at each block-emission
// or sliding-window boundary; it is never polled in the middle of
// computing a single block, so cancellation lands at a boundary, not
// mid-algorithm.
func Compare(ctx context.Context, pathA, pathB string, cfg *Config) (Result, error) {
	if cfg == nil || cfg.Callback == nil {
		return InvalidParam, fmt.Errorf("%w: nil config or callback", ErrInvalidParam)
	}
	if err := ctx.Err(); err != nil {
		return InvalidParam, err
	}

	absA, err := canonicalizePath(pathA)
	if err != nil {
		return InvalidParam, err
	}
	absB, err := canonicalizePath(pathB)
	if err != nil {
		return InvalidParam, err
	}
	cfg.trace("comparing %s vs %s mode=%v flags=%b", absA, absB, cfg.Mode, cfg.Flags)

	if cfg.Mode == Binary {
		return compareBinary(ctx, &UserContext{PathA: absA, PathB: absB, UserData: cfg.UserData}, absA, absB, cfg)
	}

	dataA, err := loadFile(absA)
	if err != nil {
		return IOError, err
	}
	dataB, err := loadFile(absB)
	if err != nil {
		return IOError, err
	}

	mode := cfg.Mode
	autoResolved := mode == Auto
	if mode == Auto {
		if !classifyIsText(dataA) || !classifyIsText(dataB) {
			cfg.trace("auto-classified as binary")
			return compareBinary(ctx, &UserContext{PathA: absA, PathB: absB, UserData: cfg.UserData}, absA, absB, cfg)
		}
		mode = TextASCII
	} else if !classifyIsText(dataA) || !classifyIsText(dataB) {
		return InvalidParam, fmt.Errorf("%w: %s or %s is not text", ErrBinaryData, absA, absB)
	}

	if bytes.Equal(dataA, dataB) {
		cfg.trace("byte-identical, skipping line comparison")
		return Identical, nil
	}

	// Auto never knows in advance whether the text it classified is
	// plain ASCII or BOM-marked Unicode, so it always runs the BOM/UTF-16
	// decode the same as an explicit TextUnicode request; content with no
	// recognized BOM comes back unchanged. An explicit TextASCII request
	// is taken at face value and left undecoded.
	if mode == TextUnicode || autoResolved {
		dataA, err = decodeTextUnicode(dataA)
		if err != nil {
			return IOError, err
		}
		dataB, err = decodeTextUnicode(dataB)
		if err != nil {
			return IOError, err
		}
	}

	lcsA, lcsB := extractSequence(dataA, mode, cfg.Flags), extractSequence(dataB, mode, cfg.Flags)
	ctx2 := &UserContext{PathA: absA, PathB: absB, LinesA: lcsA, LinesB: lcsB, UserData: cfg.UserData}

	matchA, matchB := lcsMatch(lcsA, lcsB)
	matchA, matchB = resyncFilter(matchA, matchB, cfg.resyncLines(), lcsA.Len(), lcsB.Len())

	emitted, err := emitTextDiff(ctx, ctx2, matchA, matchB, lcsA.Len(), lcsB.Len(), cfg.Callback)
	if err != nil {
		return InvalidParam, err
	}
	if emitted {
		return Different, nil
	}
	return Identical, nil
}

// CompareUTF8 is a convenience wrapper for the common case of comparing
// two UTF-8 text files with the default resync and buffer settings,
// reporting differences through cb.
func CompareUTF8(ctx context.Context, pathA, pathB string, flags Flag, cb Callback) (Result, error) {
	cfg := NewConfig(cb)
	cfg.Mode = TextASCII
	cfg.Flags = flags
	return Compare(ctx, pathA, pathB, cfg)
}
