package option

//go:generate go tool stringer -type=DefaultEnum -output=default_string.go

// DefaultEnum tags the default variant carried by an Option.
type DefaultEnum int

const (
	DefaultNone DefaultEnum = iota
	DefaultStatic
	DefaultComputed

	// DefaultTotal is a constant that represents the total number of variants defined
	DefaultTotal = int(iota)
)
