package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"gridui/internal/grid"
)

func tracedBuilder(t *testing.T) (*Builder, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewBuilder(grid.Bounds{Rows: 1, Cols: 2}).Tracer(tp.Tracer("test")), sr
}

func spanNames(sr *tracetest.SpanRecorder) []string {
	var names []string
	for _, s := range sr.Ended() {
		names = append(names, s.Name())
	}
	return names
}

func TestRenderSpans(t *testing.T) {
	b, sr := tracedBuilder(t)
	v, _ := openView(t, b.Stateless(func(_ context.Context, p *Pane, _ *View) {
		p.Set(grid.At(0, 0), StaticElement(glyph("a"), nil))
	}))

	require.NoError(t, v.Render(context.Background()))

	assert.Equal(t, []string{"transform.apply", "view.render"}, spanNames(sr))
	render := sr.Ended()[1]
	apply := sr.Ended()[0]
	assert.Equal(t, render.SpanContext().SpanID(), apply.Parent().SpanID())
}

func TestClickSpanRecordsReactionError(t *testing.T) {
	boom := errors.New("boom")
	b, sr := tracedBuilder(t)
	v, _ := openView(t, b.Stateless(func(_ context.Context, p *Pane, _ *View) {
		p.Set(grid.At(0, 1), StaticElement(glyph("!"), func(context.Context, Click) error { return boom }))
	}))
	ctx := context.Background()
	require.NoError(t, v.Render(ctx))

	err := v.Click(ctx, alice, grid.At(0, 1), ClickLeft)
	require.ErrorIs(t, err, boom)

	ended := sr.Ended()
	click := ended[len(ended)-1]
	assert.Equal(t, "view.click", click.Name())
	assert.Equal(t, codes.Error, click.Status().Code)
}

func TestEmptyClickHasNoSpan(t *testing.T) {
	b, sr := tracedBuilder(t)
	v, _ := openView(t, b)
	ctx := context.Background()
	require.NoError(t, v.Render(ctx))
	before := len(sr.Ended())

	require.NoError(t, v.Click(ctx, alice, grid.At(0, 0), ClickLeft))
	assert.Len(t, sr.Ended(), before)
}

func TestCloseSpan(t *testing.T) {
	b, sr := tracedBuilder(t)
	v, _ := openView(t, b)
	require.NoError(t, v.Close(context.Background(), ReasonPlugin))

	names := spanNames(sr)
	require.NotEmpty(t, names)
	assert.Equal(t, "view.close", names[len(names)-1])
}
