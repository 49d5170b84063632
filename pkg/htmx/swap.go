package htmx

// SwapStrategy names how the client inserts a response into the target.
type SwapStrategy string

const (
	SwapInnerHTML   SwapStrategy = "innerHTML"   // replace the target's children
	SwapOuterHTML   SwapStrategy = "outerHTML"   // replace the target itself
	SwapBeforeBegin SwapStrategy = "beforebegin" // insert before the target
	SwapAfterBegin  SwapStrategy = "afterbegin"  // insert as first child
	SwapBeforeEnd   SwapStrategy = "beforeend"   // insert as last child
	SwapAfterEnd    SwapStrategy = "afterend"    // insert after the target
	SwapDelete      SwapStrategy = "delete"      // remove the target
	SwapNone        SwapStrategy = "none"        // headers only, no swap
)
