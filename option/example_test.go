package option_test

import (
	"fmt"

	"github.com/joshuawatson/rom/option"
)

func ExampleDefinitions() {
	defs := option.NewDefinitions(
		option.New("name", option.Type(option.Text()), option.Reader()),
		option.New("admin", option.Allow(true, false), option.Default(false), option.Reader()),
	)

	user := &struct{ option.Host }{}
	err := defs.Construct(user, map[string]any{"name": "Piotr"})
	fmt.Println(err, user.Reader("name"), user.Reader("admin"))

	err = defs.Construct(&struct{ option.Host }{}, map[string]any{"name": "Piotr", "admin": "yes"})
	fmt.Println(err)

	err = defs.Construct(&struct{ option.Host }{}, map[string]any{"nickname": "P"})
	fmt.Println(err)

	// Output:
	// <nil> Piotr false
	// invalid option value: yes is not allowed for option "admin"
	// unknown option: "nickname"
}

func ExampleDefaultEnum() {
	fmt.Println(option.DefaultNone)
	fmt.Println(option.DefaultStatic)
	fmt.Println(option.DefaultComputed)
	fmt.Println(option.DefaultEnum(7))
	// Output:
	// DefaultNone
	// DefaultStatic
	// DefaultComputed
	// DefaultEnum(7)
}
