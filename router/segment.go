// Package router implements the file-system route table of §6: parsing
// app-directory segment names into route segments, scoring and matching a
// request path against the scanned route tree, and resolving layout chains
// and loading/error/not-found boundaries along the way. Ported from
// _examples/original_source/crates/next-router/src/{segment,matcher,scanner,boundary,layout,lib}.rs.
package router

import "strings"

// SegmentKind distinguishes the four directory-naming conventions Next.js
// recognizes: literal directories, `[name]`, `[...name]`, `[[...name]]`.
type SegmentKind int

const (
	SegmentStatic SegmentKind = iota
	SegmentDynamic
	SegmentCatchAll
	SegmentOptionalCatchAll
)

// Segment is one path component of a route, classified by directory name.
type Segment struct {
	Kind SegmentKind
	Name string // the static text, or the bound param name for the others
}

// ParseSegments splits a route path like "/blog/[slug]" into its segments.
func ParseSegments(path string) []Segment {
	var segments []Segment
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		segments = append(segments, parseSegment(part))
	}
	return segments
}

func parseSegment(part string) Segment {
	switch {
	case strings.HasPrefix(part, "[[...") && strings.HasSuffix(part, "]]"):
		name := part[5 : len(part)-2]
		return Segment{Kind: SegmentOptionalCatchAll, Name: name}
	case strings.HasPrefix(part, "[...") && strings.HasSuffix(part, "]"):
		name := part[4 : len(part)-1]
		return Segment{Kind: SegmentCatchAll, Name: name}
	case strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]"):
		name := part[1 : len(part)-1]
		return Segment{Kind: SegmentDynamic, Name: name}
	default:
		return Segment{Kind: SegmentStatic, Name: part}
	}
}

// Matches reports whether this segment accepts the given path component.
// Static segments require an exact literal match; the others accept any
// non-empty value (OptionalCatchAll also accepts emptiness, handled by the
// matcher directly since it consumes a joined tail rather than one part).
func (s Segment) Matches(value string) bool {
	switch s.Kind {
	case SegmentStatic:
		return s.Name == value
	case SegmentDynamic, SegmentCatchAll:
		return value != ""
	case SegmentOptionalCatchAll:
		return true
	default:
		return false
	}
}

// ExtractParam returns the (name, value) pair this segment binds from
// value, or ok=false for static segments (which bind nothing) and for an
// empty OptionalCatchAll (which binds nothing when the tail is absent).
func (s Segment) ExtractParam(value string) (name string, val string, ok bool) {
	switch s.Kind {
	case SegmentDynamic, SegmentCatchAll:
		return s.Name, value, true
	case SegmentOptionalCatchAll:
		if value == "" {
			return "", "", false
		}
		return s.Name, value, true
	default:
		return "", "", false
	}
}
