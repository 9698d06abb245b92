package option

import "errors"

var (
	// ErrUnknownOption rejects an input key not declared on the type or any
	// ancestor. Reported before any default fill or validation runs.
	ErrUnknownOption = errors.New("unknown option")

	// ErrInvalidValue rejects a present value failing its type constraint or
	// allowed-set membership. The first violation in declaration order wins.
	ErrInvalidValue = errors.New("invalid option value")
)
