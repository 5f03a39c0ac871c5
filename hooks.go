package treap

// navigateHook, when set, runs while a navigation query holds the tree split
// into its low and high halves.
var navigateHook func(low, high any)
