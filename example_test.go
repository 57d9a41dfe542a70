package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEvaluate() {
	r, err := calc.Evaluate("1/2 + 1/3")
	if err != nil {
		panic(err)
	}
	fmt.Println(r.MainResult())
	for _, s := range r.OtherInfo() {
		fmt.Println(s)
	}
	// Output:
	// 5/6
	// approx. 0.8333333333
}

func ExampleEvaluate_units() {
	r, err := calc.Evaluate("60 mi/h to km/h")
	if err != nil {
		panic(err)
	}
	fmt.Println(r.MainResult())
	// Output:
	// 301752/3125 km / h
}

func ExampleEvaluate_error() {
	_, err := calc.Evaluate("3 kg + 2 m")
	fmt.Println(err)
	// Output:
	// cannot convert from m to kg
}

func ExampleContext() {
	ctx := calc.NewContext(calc.SetVar("mass", "2 kg"))
	for _, src := range []string{"f = \\m.m^2", "f mass", "mass to g"} {
		r, err := ctx.Evaluate(src, calc.NeverInterrupt{})
		if err != nil {
			panic(err)
		}
		fmt.Println(r.MainResult())
	}
	// Output:
	// \m.m^2
	// 4 kg^2
	// 2000 g
}
