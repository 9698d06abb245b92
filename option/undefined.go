package option

// Undefined is the sentinel bound into a reader slot when an option resolved
// to no value. Its type is unexported, so it can never equal a caller value.
var Undefined undefined

type undefined struct{}

func (undefined) String() string { return "Undefined" }
