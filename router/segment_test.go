package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStaticSegments(t *testing.T) {
	segs := ParseSegments("/blog/featured")
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Kind: SegmentStatic, Name: "blog"}, segs[0])
	assert.Equal(t, Segment{Kind: SegmentStatic, Name: "featured"}, segs[1])
}

func TestParseDynamicSegment(t *testing.T) {
	segs := ParseSegments("/blog/[slug]")
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Kind: SegmentDynamic, Name: "slug"}, segs[1])
}

func TestParseCatchAllSegment(t *testing.T) {
	segs := ParseSegments("/docs/[...path]")
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Kind: SegmentCatchAll, Name: "path"}, segs[1])
}

func TestParseOptionalCatchAllSegment(t *testing.T) {
	segs := ParseSegments("/shop/[[...filters]]")
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{Kind: SegmentOptionalCatchAll, Name: "filters"}, segs[1])
}

func TestSegmentMatches(t *testing.T) {
	static := Segment{Kind: SegmentStatic, Name: "blog"}
	assert.True(t, static.Matches("blog"))
	assert.False(t, static.Matches("docs"))

	dynamic := Segment{Kind: SegmentDynamic, Name: "slug"}
	assert.True(t, dynamic.Matches("hello"))

	catchAll := Segment{Kind: SegmentCatchAll, Name: "path"}
	assert.True(t, catchAll.Matches("a/b/c"))
}

func TestExtractParam(t *testing.T) {
	static := Segment{Kind: SegmentStatic, Name: "blog"}
	_, _, ok := static.ExtractParam("blog")
	assert.False(t, ok)

	dynamic := Segment{Kind: SegmentDynamic, Name: "slug"}
	name, val, ok := dynamic.ExtractParam("hello")
	require.True(t, ok)
	assert.Equal(t, "slug", name)
	assert.Equal(t, "hello", val)

	optional := Segment{Kind: SegmentOptionalCatchAll, Name: "filters"}
	_, _, ok = optional.ExtractParam("")
	assert.False(t, ok)
	name, val, ok = optional.ExtractParam("red/xl")
	require.True(t, ok)
	assert.Equal(t, "filters", name)
	assert.Equal(t, "red/xl", val)
}
