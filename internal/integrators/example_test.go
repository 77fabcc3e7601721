package integrators_test

import (
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/integrators"
	"github.com/san-kum/numlab/internal/numeric"
)

func ExampleRungeKutta() {
	f := func(y, x float64) float64 { return 0.5*y + x }
	exact := func(x float64) float64 { return -2*(x+2) + 4*math.Exp(0.5*x) }

	a, step := 0.0, 0.5
	y, err := integrators.RungeKutta(f, 0, a, 2, numeric.WithStep(step))
	if err != nil {
		fmt.Println(err)
		return
	}

	for i, x := range y.Nodes(a, step) {
		fmt.Printf("%.2f %.6f %.6f\n", x, y[i], exact(x))
	}

	// Output:
	// 0.00 0.000000 0.000000
	// 0.50 0.125000 0.136102
	// 1.00 0.566406 0.594885
	// 1.50 1.413208 1.468000
	// 2.00 2.779423 2.873127
}

func ExampleEulerMethod() {
	f := func(y, x float64) float64 { return 0.5*y + x }

	y, _ := integrators.EulerMethod(f, 0, 0, 2, numeric.WithStep(0.5))
	fmt.Println(len(y), y.Last())

	// Output:
	// 5 1.765625
}
