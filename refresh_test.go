package graphcalc

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vdobler/graphcalc/expr"
)

func mustInput(t *testing.T, formulas, ranges string) Input {
	t.Helper()
	in, err := ParseInput(formulas, "", ranges)
	require.NoError(t, err)
	return in
}

func newTestRefresher(t *testing.T) (context.Context, *Refresher, chan *OutputState) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	r := NewRefresher(ctx, 40, 30, DefaultStyle(8))
	published := make(chan *OutputState, 10)
	r.OnPublish = func(o *OutputState) { published <- o }
	return ctx, r, published
}

func waitPublished(t *testing.T, published chan *OutputState) *OutputState {
	t.Helper()
	select {
	case o := <-published:
		return o
	case <-time.After(10 * time.Second):
		t.Fatal("no frame published")
	}
	return nil
}

func TestRefresherPublishes(t *testing.T) {
	ctx, r, published := newTestRefresher(t)
	require.Nil(t, r.Published())

	require.NoError(t, r.Request(ctx, mustInput(t, "x; 2", "")))
	text, ok := r.ResultText(ctx)
	require.False(t, ok)
	require.Contains(t, text, "x")

	o := waitPublished(t, published)
	require.Same(t, o, r.Published())
	require.Equal(t, 1, r.Passes(ctx))
	require.Empty(t, r.ErrorText(ctx))
	require.Equal(t, 40, o.Image.Bounds().Dx())
}

func TestRefresherImmediateErrorKeepsFrame(t *testing.T) {
	ctx, r, published := newTestRefresher(t)
	require.NoError(t, r.Request(ctx, mustInput(t, "x", "")))
	first := waitPublished(t, published)

	err := r.Request(ctx, mustInput(t, "x * foo", ""))
	var unknown *expr.UnknownIdentifierError
	require.True(t, errors.As(err, &unknown), "%v", err)
	require.Equal(t, "foo", unknown.Name)

	msg := r.ErrorText(ctx)
	require.True(t, strings.HasPrefix(msg, "(Immediate) "), msg)
	require.Contains(t, msg, `"foo"`)
	require.Same(t, first, r.Published())
	require.Equal(t, 1, r.Passes(ctx))
}

func TestRefresherFailedPassKeepsFrame(t *testing.T) {
	ctx, r, published := newTestRefresher(t)
	require.NoError(t, r.Request(ctx, mustInput(t, "x", "")))
	first := waitPublished(t, published)

	// Only samples right of x = 0.5 reach the unknown identifier.
	require.NoError(t, r.Request(ctx, mustInput(t, "x > 0.5 ? foo : x", "")))
	require.Eventually(t, func() bool { return r.Passes(ctx) == 2 }, 10*time.Second, time.Millisecond)

	msg := r.ErrorText(ctx)
	require.Contains(t, msg, `unknown identifier "foo"`)
	require.False(t, strings.HasPrefix(msg, "(Immediate)"), msg)
	require.Same(t, first, r.Published())
	require.Empty(t, published)
}

func TestRefresherCollapsesRequests(t *testing.T) {
	ctx, r, published := newTestRefresher(t)

	entered := make(chan *OutputState)
	release := make(chan struct{})
	r.beforePass = func(o *OutputState) {
		entered <- o
		<-release
	}

	first := mustInput(t, "1", "")
	require.NoError(t, r.Request(ctx, first))
	running := <-entered
	require.Equal(t, "1", running.Calcs[0].Expr().String())

	require.NoError(t, r.Request(ctx, mustInput(t, "2", "")))
	require.NoError(t, r.Request(ctx, mustInput(t, "3", "")))

	close(release)
	waitPublished(t, published)
	second := <-entered
	require.Equal(t, "3", second.Calcs[0].Expr().String())
	last := waitPublished(t, published)
	require.Same(t, second, last)

	select {
	case o := <-entered:
		t.Fatalf("unexpected third pass over %v", o.Calcs[0].Expr())
	case <-time.After(100 * time.Millisecond):
	}
	require.Equal(t, 2, r.Passes(ctx))
	require.Same(t, last, r.Published())
}
