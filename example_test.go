package jsregex_test

import (
	"fmt"

	"github.com/coregx/jsregex"
)

func ExampleConvert() {
	res, err := jsregex.Convert(`/^foo$/`)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Output)
	// Output: \Afoo\z
}

func ExampleConvert_emptyClass() {
	res, _ := jsregex.Convert(`/a[^]b/`)
	fmt.Println(res.Output)
	// Output: a[\s\S]b
}

func ExampleConvert_matcher() {
	res, _ := jsregex.Convert(`/o/g`)
	for m := range res.Matcher.MatchAll("foo boo") {
		fmt.Println(m.Start(), m.Text())
	}
	// Output:
	// 1 o
	// 2 o
	// 5 o
	// 6 o
}

func ExampleConvertPattern() {
	res := jsregex.ConvertPattern("(?s:a.c)", "i")
	fmt.Println(res.Output, res.Options.Letters())
	// Output: (?m:a.c) i
}

func ExampleTryConvert() {
	fmt.Println(jsregex.TryConvert("not a literal") == nil)
	// Output: true
}
