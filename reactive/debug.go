package reactive

import (
	"fmt"

	"github.com/m1gwings/treedrawer/tree"
)

// DumpTree renders the scope tree rooted at s as ASCII art, one node per
// scope showing its cleanup/catcher counts and disposal state. Grounded on
// pumped-fn-pumped-go's GraphDebugExtension.buildTree/tryFormatHorizontalTree
// pattern (render a dependency graph as a tree on error); here it renders
// ownership rather than dependency resolution, wired into the dispatcher's
// render-error diagnostic page so a panic mid-render can show which scope
// was live when it happened.
func DumpTree(s *Scope) string {
	if s == nil {
		return "(nil scope)"
	}
	return buildScopeTree(s).String()
}

func buildScopeTree(s *Scope) *tree.Tree {
	t := tree.NewTree(tree.NodeString(scopeLabel(s)))
	for _, c := range s.children {
		addChild(t, buildScopeTree(c))
	}
	return t
}

func scopeLabel(s *Scope) string {
	status := "live"
	if s.isDisposed {
		status = "disposed"
	}
	return fmt.Sprintf("scope(%p) [%s, cleanups=%d, catchers=%d]", s, status, len(s.cleanups), len(s.catchers))
}

func addChild(parent *tree.Tree, child *tree.Tree) {
	node := parent.AddChild(child.Val())
	for _, grandchild := range child.Children() {
		addChild(node, grandchild)
	}
}
