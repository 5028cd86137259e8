// Command nextgo-debug renders the owner/dependency tree of a minimal
// example app, for diagnosing how signals, memos and effects are wired
// together outside of a live HTTP request. It is the one CLI surface §6
// keeps (config-file parsing, build orchestration, and everything else a
// real CLI would need are external collaborators, not this module's job).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nextgo-dev/core/elements"
	"github.com/nextgo-dev/core/reactive"
	"github.com/nextgo-dev/core/render"
)

func main() {
	html := flag.Bool("html", false, "also print the rendered HTML of the example tree")
	flag.Parse()

	scope := reactive.NewScope()
	defer scope.Dispose()

	var node elements.Node
	scope.Run(func() {
		count := reactive.NewSignal(0)
		doubled := reactive.NewMemo(func() int { return count.Get() * 2 })

		reactive.NewEffect(func() {
			fmt.Printf("count=%d doubled=%d\n", count.Get(), doubled.Get())
		})

		count.Set(1)
		count.Set(2)

		node = elements.Div().
			Class("counter").
			Child(elements.P().Text(fmt.Sprintf("count is %d", count.Get()))).
			IntoNode()
	})

	fmt.Println(reactive.DumpTree(scope))

	if *html {
		fmt.Println(render.ToString(node))
	}

	os.Exit(0)
}
