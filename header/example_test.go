package header_test

import (
	"errors"
	"fmt"

	"github.com/ghettovoice/httphdr/header"
)

func ExampleNewName() {
	name, err := header.NewName([]byte("Content-Type"))
	fmt.Println(name, err)

	_, err = header.NewName([]byte("Content Type"))
	fmt.Println(errors.Is(err, header.ErrInvalidName))
	// Output:
	// Content-Type <nil>
	// true
}

func ExampleName_Clean() {
	name := header.StaticName("2±1+1")
	fmt.Printf("%q\n", name.UTF8())
	fmt.Printf("%q\n", name.Clean().UTF8())
	// Output:
	// "2\x00\x001\x001"
	// "211"
}

func ExampleValue_IntoSecret() {
	v := header.StaticValue("test")
	fmt.Printf("%v\n", v)

	v = v.IntoSecret()
	fmt.Printf("%v\n", v)
	fmt.Printf("%#v\n", v)
	fmt.Println(v.UTF8())
	// Output:
	// test
	// <REDACTED>
	// header.Value(<REDACTED>)
	// test
}

func ExampleNewFieldValue() {
	v, _ := header.NewFieldValue(header.StaticName("Authorization"), []byte("Bearer abc"))
	fmt.Println(v.IsSecret(), v)
	// Output:
	// true <REDACTED>
}
