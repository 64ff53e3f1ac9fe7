package main

import (
	"os"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// binaryProgress renders an mpb bar for the sliding-window binary
// comparator (files above fcdiff.SlidingWindowThreshold), styled after
// pkg/zeta/transfer.go's download bars. The bar is created lazily on
// the first callback, since the total size isn't known until
// modules/fcdiff has already stat'd both files.
type binaryProgress struct {
	once sync.Once
	p    *mpb.Progress
	bar  *mpb.Bar
	last int64
}

func (b *binaryProgress) report(done, total int64) {
	b.once.Do(func() {
		b.p = mpb.New(mpb.WithOutput(os.Stderr), mpb.WithAutoRefresh())
		b.bar = b.p.New(total,
			mpb.BarStyle().Filler("#").Padding(" "),
			mpb.PrependDecorators(
				decor.Name("comparing", decor.WC{W: len("comparing"), C: decor.DindentRight}),
				decor.Total(decor.SizeB1024(0), "% .2f", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.EwmaSpeed(decor.SizeB1024(0), "% .2f ", 30),
				decor.OnComplete(decor.EwmaETA(decor.ET_STYLE_GO, 30), "done"),
			),
		)
	})
	b.bar.IncrBy(int(done - b.last))
	b.last = done
	if done >= total {
		b.p.Wait()
	}
}
