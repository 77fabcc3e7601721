package experiment

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Converge", func() {
	var runner *Runner

	BeforeEach(func() {
		runner = quietRunner()
	})

	DescribeTable("quadrature errors shrink with the step",
		func(method string, order float64) {
			conv, err := runner.Converge(context.Background(), Config{
				Kind: KindIntegral, Method: method, Function: "sin",
				A: 0, B: math.Pi / 2, Step: (math.Pi / 2) / 8,
			}, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(conv.Steps).To(HaveLen(4))
			Expect(conv.Steps[3]).To(BeNumerically("~", (math.Pi/2)/64, 1e-15))
			Expect(conv.Monotone).To(BeTrue())
			Expect(conv.Orders).To(HaveLen(3))
			Expect(conv.Orders[2]).To(BeNumerically("~", order, 0.15))
		},
		Entry("left rectangle", "left_rectangle", 1.0),
		Entry("trapezoidal", "trapezoidal", 2.0),
		Entry("simpson", "simpson", 3.0),
	)

	DescribeTable("ODE errors shrink with the step",
		func(method string, order float64) {
			conv, err := runner.Converge(context.Background(), Config{
				Kind: KindODE, Method: method, Function: "linear",
				A: 0, B: 2, Step: 0.25,
			}, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(conv.Monotone).To(BeTrue())
			Expect(conv.Orders[2]).To(BeNumerically("~", order, 0.1))
		},
		Entry("euler", "euler", 1.0),
		Entry("runge_kutta", "runge_kutta", 2.0),
		Entry("rk4", "rk4", 4.0),
	)

	It("reports the first failing step", func() {
		_, err := runner.Converge(context.Background(), Config{
			Kind: KindODE, Method: "euler", Function: "linear", A: 2, B: 0, Step: 0.25,
		}, 2)
		Expect(err).To(MatchError(ContainSubstring("invalid integration range")))
	})

	It("rejects interpolation", func() {
		_, err := runner.Converge(context.Background(), Config{Kind: KindInterpolation, Nodes: 4}, 2)
		Expect(err).To(HaveOccurred())
	})

	It("needs at least one halving", func() {
		_, err := runner.Converge(context.Background(), Config{Kind: KindODE, Step: 0.1}, 0)
		Expect(err).To(HaveOccurred())
	})
})
