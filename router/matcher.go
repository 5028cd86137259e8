package router

import "strings"

// priority weights, summed per segment, so a route made entirely of static
// segments always outranks one with any dynamic segment at the same
// position, and a dynamic segment always outranks a catch-all.
const (
	priorityStatic           = 1000
	priorityDynamic          = 100
	priorityCatchAll         = 10
	priorityOptionalCatchAll = 1
)

// MatchedRoute is the result of a successful path match: the route plus the
// params bound along the way.
type MatchedRoute struct {
	Route  Route
	Params map[string]string
}

// Matcher scores a request path against a set of scanned routes and returns
// the highest-priority match. Grounded on next-router/src/matcher.rs.
type Matcher struct {
	routes []Route
}

// NewMatcher builds a matcher over the given routes.
func NewMatcher(routes []Route) *Matcher {
	return &Matcher{routes: routes}
}

// MatchPath finds the best route for path, or ok=false if none match.
func (m *Matcher) MatchPath(path string) (MatchedRoute, bool) {
	pathSegments := splitPath(path)

	var best *MatchedRoute
	bestPriority := -1

	for _, route := range m.routes {
		matched, priority, ok := tryMatch(route, pathSegments)
		if !ok {
			continue
		}
		if priority <= bestPriority {
			continue
		}
		bestPriority = priority
		mr := matched
		best = &mr
	}

	if best == nil {
		return MatchedRoute{}, false
	}
	return *best, true
}

func splitPath(path string) []string {
	var out []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// tryMatch attempts to match route's segments against pathSegments in
// order. Static segments consume one path segment and require an exact
// literal match. Dynamic segments consume one path segment and bind it.
// CatchAll requires at least one remaining path segment and joins ALL
// remaining segments into one param value. OptionalCatchAll does the same
// but tolerates zero remaining segments (binding nothing). A match only
// succeeds if the route's segments exactly exhaust pathSegments.
func tryMatch(route Route, pathSegments []string) (MatchedRoute, int, bool) {
	segments := route.Segments()
	params := make(map[string]string)
	priority := 0
	pathIdx := 0

	for _, seg := range segments {
		switch seg.Kind {
		case SegmentStatic:
			if pathIdx >= len(pathSegments) || pathSegments[pathIdx] != seg.Name {
				return MatchedRoute{}, 0, false
			}
			priority += priorityStatic
			pathIdx++
		case SegmentDynamic:
			if pathIdx >= len(pathSegments) {
				return MatchedRoute{}, 0, false
			}
			params[seg.Name] = pathSegments[pathIdx]
			priority += priorityDynamic
			pathIdx++
		case SegmentCatchAll:
			if pathIdx >= len(pathSegments) {
				return MatchedRoute{}, 0, false
			}
			params[seg.Name] = strings.Join(pathSegments[pathIdx:], "/")
			priority += priorityCatchAll
			pathIdx = len(pathSegments)
		case SegmentOptionalCatchAll:
			if pathIdx < len(pathSegments) {
				params[seg.Name] = strings.Join(pathSegments[pathIdx:], "/")
			}
			priority += priorityOptionalCatchAll
			pathIdx = len(pathSegments)
		}
	}

	if pathIdx != len(pathSegments) {
		return MatchedRoute{}, 0, false
	}

	return MatchedRoute{Route: route, Params: params}, priority, true
}
