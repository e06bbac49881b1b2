package graphcalc

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-ng/xatomic"
	"github.com/vdobler/graphcalc/logger"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/xsync"
)

// A Refresher recomputes the graph in the background. Requests are
// validated right away; the slow part, sampling and rendering, runs on a
// single worker goroutine. Requests arriving while a pass is running
// collapse into one more pass over the latest input.
//
// A finished frame is published atomically. A failed pass leaves the
// previous frame in place and reports its error in ErrorText.
type Refresher struct {
	width, height int
	style         Style

	// OnPublish, if set, is called by the worker with every new frame.
	OnPublish func(*OutputState)

	locker     xsync.Mutex
	pending    *OutputState
	resultText string
	resultOK   bool
	errorText  string
	passes     int

	published *OutputState
	wake      chan struct{}

	// beforePass is called by the worker with the state it is about to
	// compute.
	beforePass func(*OutputState)
}

// NewRefresher returns a refresher drawing frames of w×h pixels. Its worker
// stops when ctx is done.
func NewRefresher(ctx context.Context, w, h int, style Style) *Refresher {
	r := &Refresher{
		width:  w,
		height: h,
		style:  style,
		wake:   make(chan struct{}, 1),
	}
	observability.Go(ctx, func(ctx context.Context) {
		r.serve(ctx)
	})
	return r
}

// Request asks for a frame showing in. Errors found while preparing the
// input are returned, shown as "(Immediate) msg" in ErrorText and do not
// touch the published frame. Otherwise the result text is updated and a
// pass is scheduled.
func (r *Refresher) Request(ctx context.Context, in Input) error {
	o, err := Prepare(in, r.width, r.height, r.style)
	if err != nil {
		logger.Debugf(ctx, "rejected input: %v", err)
		r.locker.Do(ctx, func() {
			r.errorText = fmt.Sprintf("(Immediate) %s", err)
		})
		return err
	}

	text, ok := ResultText(o.Calcs)
	r.locker.Do(ctx, func() {
		r.pending = o
		r.resultText, r.resultOK = text, ok
		r.errorText = ""
	})

	select {
	case r.wake <- struct{}{}:
	default:
		logger.Tracef(ctx, "pass already scheduled")
	}
	return nil
}

// Published returns the latest frame or nil.
func (r *Refresher) Published() *OutputState {
	return xatomic.LoadPointer(&r.published)
}

// ErrorText is the message of the last failure, empty if the last request
// was accepted and no pass failed since.
func (r *Refresher) ErrorText(ctx context.Context) string {
	return xsync.DoR1(ctx, &r.locker, func() string {
		return r.errorText
	})
}

// ResultText is the result text of the latest accepted request. ok is
// false if it holds an error message.
func (r *Refresher) ResultText(ctx context.Context) (text string, ok bool) {
	r.locker.Do(ctx, func() {
		text, ok = r.resultText, r.resultOK
	})
	return
}

// Passes is the number of completed passes, failed or not.
func (r *Refresher) Passes(ctx context.Context) int {
	return xsync.DoR1(ctx, &r.locker, func() int {
		return r.passes
	})
}

func (r *Refresher) serve(ctx context.Context) {
	logger.Debugf(ctx, "refresher started")
	defer logger.Debugf(ctx, "refresher stopped")
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.wake:
		}
		r.pass(ctx)
	}
}

func (r *Refresher) pass(ctx context.Context) {
	o := xsync.DoR1(ctx, &r.locker, func() *OutputState {
		o := r.pending
		r.pending = nil
		return o
	})
	if o == nil {
		return
	}
	if r.beforePass != nil {
		r.beforePass(o)
	}

	err := o.Run(ctx)
	if err == nil {
		err = o.Render(ctx)
	}

	var n int
	r.locker.Do(ctx, func() {
		r.passes++
		n = r.passes
		if err != nil {
			r.errorText = err.Error()
		}
	})
	if err != nil {
		logger.Errorf(ctx, "pass %d: %v", n, err)
		return
	}

	b := o.Image.Bounds()
	logger.Debugf(ctx, "pass %d: %s calculators, %s pixels", n,
		humanize.Comma(int64(len(o.Calcs))), humanize.Comma(int64(b.Dx()*b.Dy())))
	xatomic.StorePointer(&r.published, o)
	if r.OnPublish != nil {
		r.OnPublish(o)
	}
}
