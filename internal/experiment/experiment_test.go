package experiment

import (
	"context"
	"errors"
	"io"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/sirupsen/logrus"
)

func quietRunner() *Runner {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewRunner(NewRegistry()).WithLogger(logger)
}

var _ = Describe("Registry", func() {
	var reg *Registry

	BeforeEach(func() {
		reg = NewRegistry()
	})

	It("lists methods per kind in sorted order", func() {
		Expect(reg.Methods(KindIntegral)).To(Equal([]string{"left_rectangle", "simpson", "trapezoidal"}))
		Expect(reg.Methods(KindODE)).To(Equal([]string{"euler", "rk4", "runge_kutta"}))
		Expect(reg.Methods(KindInterpolation)).To(Equal([]string{"lagrange", "newton", "polynomial"}))
		Expect(reg.Methods(Kind("bogus"))).To(BeNil())
	})

	It("lists functions per kind", func() {
		Expect(reg.Functions(KindIntegral)).To(ContainElements("sin", "x^2", "1/(1+x^2)"))
		Expect(reg.Functions(KindODE)).To(ContainElements("linear", "decay", "growth", "logistic"))
		Expect(reg.Functions(KindInterpolation)).To(ContainElements("sin-cos2", "runge"))
	})

	It("rejects unknown names", func() {
		_, err := reg.GetRule("midpoint")
		Expect(err).To(MatchError(ContainSubstring("unknown quadrature rule: midpoint")))
		_, err = reg.GetSolver("rk45")
		Expect(err).To(HaveOccurred())
		_, err = reg.GetIntegrand("tan")
		Expect(err).To(HaveOccurred())
		_, err = reg.GetProblem("stiff")
		Expect(err).To(HaveOccurred())
		_, err = reg.GetTarget("abs")
		Expect(err).To(HaveOccurred())
		_, err = reg.GetInterpolator("spline")
		Expect(err).To(HaveOccurred())
	})

	DescribeTable("closed-form ODE solutions pass through the initial point",
		func(name string, a, y0 float64) {
			p, err := reg.GetProblem(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Exact(a, a, y0)).To(BeNumerically("~", y0, 1e-12))
		},
		Entry("linear", "linear", 0.0, 0.0),
		Entry("linear shifted", "linear", 1.0, 2.0),
		Entry("decay", "decay", 0.5, 3.0),
		Entry("growth", "growth", 1.0, 1.0),
		Entry("logistic", "logistic", 0.0, 0.1),
	)

	It("computes definite integrals from the antiderivative", func() {
		in, err := reg.GetIntegrand("x^2")
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Exact(0, 3)).To(BeNumerically("~", 9, 1e-12))
	})
})

var _ = Describe("Runner", func() {
	var (
		runner *Runner
		ctx    context.Context
	)

	BeforeEach(func() {
		runner = quietRunner()
		ctx = context.Background()
	})

	Context("integrals", func() {
		It("tabulates approximation, reference and deviation", func() {
			res, err := runner.Run(ctx, Config{
				Kind: KindIntegral, Method: "trapezoidal", Function: "sin",
				A: 0, B: math.Pi / 2, Step: (math.Pi / 2) / 8,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Columns).To(Equal([]string{"approx_I", "analytical_I", "delta"}))
			Expect(res.Rows).To(HaveLen(1))

			row := res.Rows[0]
			Expect(row[1]).To(BeNumerically("~", 1, 1e-12))
			Expect(row[2]).To(BeNumerically("~", 0.0051012288, 1e-8))
			Expect(res.Metrics).To(HaveKeyWithValue("max_abs_error", row[2]))
		})

		It("propagates range errors", func() {
			_, err := runner.Run(ctx, Config{
				Kind: KindIntegral, Method: "simpson", Function: "sin", A: 1, B: 0, Step: 0.1,
			})
			Expect(errors.Is(err, numeric.ErrInvalidRange)).To(BeTrue())
		})
	})

	Context("ODEs", func() {
		It("produces one row per grid node", func() {
			res, err := runner.Run(ctx, Config{
				Kind: KindODE, Method: "runge_kutta", Function: "linear",
				A: 0, B: 2, Step: 0.25, Y0: 0,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Columns).To(Equal([]string{"x", "approx_y", "analytical_y", "delta"}))
			Expect(res.Rows).To(HaveLen(9))
			Expect(res.Rows[0]).To(Equal([]float64{0, 0, 0, 0}))
			Expect(res.Rows[8][0]).To(BeNumerically("~", 2, 1e-12))
			Expect(res.Metrics["max_abs_error"]).To(BeNumerically("~", 0.0257624, 1e-6))
		})

		It("rejects a non-positive step", func() {
			_, err := runner.Run(ctx, Config{
				Kind: KindODE, Method: "euler", Function: "linear", A: 0, B: 2, Step: 0,
			})
			Expect(errors.Is(err, numeric.ErrInvalidStep)).To(BeTrue())
		})
	})

	Context("interpolation", func() {
		It("samples N+1 nodes and evaluates on a 3N grid", func() {
			res, err := runner.Run(ctx, Config{
				Kind: KindInterpolation, Method: "newton", Function: "sin-cos2",
				A: 0, B: 1, Nodes: 10,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Columns).To(Equal([]string{"x", "f(x)", "P_n(x)", "delta"}))
			Expect(res.Rows).To(HaveLen(31))
			Expect(res.Metrics["max_abs_error"]).To(BeNumerically("<", 1e-6))
		})

		It("agrees across methods", func() {
			base := Config{Kind: KindInterpolation, Function: "sin-cos2", A: 0, B: 1, Nodes: 10, Points: 20}
			var tables [][][]float64
			for _, m := range []string{"lagrange", "newton", "polynomial"} {
				cfg := base
				cfg.Method = m
				res, err := runner.Run(ctx, cfg)
				Expect(err).NotTo(HaveOccurred())
				tables = append(tables, res.Rows)
			}
			for i := range tables[0] {
				Expect(tables[1][i][2]).To(BeNumerically("~", tables[0][i][2], 1e-9))
				Expect(tables[2][i][2]).To(BeNumerically("~", tables[0][i][2], 1e-9))
			}
		})

		It("shows the Runge phenomenon on equidistant nodes", func() {
			res, err := runner.Run(ctx, Config{
				Kind: KindInterpolation, Method: "lagrange", Function: "runge",
				A: -1, B: 1, Nodes: 10,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Metrics["max_abs_error"]).To(BeNumerically(">", 1))
		})

		It("requires at least one segment", func() {
			_, err := runner.Run(ctx, Config{Kind: KindInterpolation, Method: "newton", Function: "exp", A: 0, B: 1})
			Expect(err).To(MatchError(ErrNoNodes))
		})
	})

	It("rejects unknown kinds", func() {
		_, err := runner.Run(ctx, Config{Kind: "fourier"})
		Expect(errors.Is(err, ErrUnknownKind)).To(BeTrue())
	})

	It("honours a cancelled context", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := runner.Run(cancelled, Config{Kind: KindIntegral, Method: "simpson", Function: "sin", A: 0, B: 1, Step: 0.1})
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Segments", func() {
	It("includes both endpoints exactly", func() {
		xs := Segments(0, 1, 4)
		Expect(xs).To(Equal([]float64{0, 0.25, 0.5, 0.75, 1}))
	})

	It("degenerates to the left endpoint", func() {
		Expect(Segments(2, 3, 0)).To(Equal([]float64{2}))
	})
})
