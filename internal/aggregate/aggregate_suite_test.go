package aggregate_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/narysim/internal/aggregate"
	"github.com/san-kum/narysim/internal/scalar"
	"github.com/san-kum/narysim/internal/units"
)

func TestAggregateSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Aggregate Suite")
}

var _ = Describe("integrator aggregate", func() {
	newSystem := func(n int) *aggregate.System[scalar.Real, sig, sig, sig] {
		sys := aggregate.NewSystem[scalar.Real, sig, sig, sig]()
		for i := 0; i < n; i++ {
			sys.AddUnit(units.NewIntegrator[scalar.Real]())
		}
		return sys
	}

	Context("with three units", func() {
		var (
			sys   *aggregate.System[scalar.Real, sig, sig, sig]
			state *aggregate.Vector[sig]
			input *aggregate.Vector[sig]
		)

		BeforeEach(func() {
			sys = newSystem(3)
			state = sigVector(1.0, 2.0, 3.0)
			input = sigVector(0.1, 0.2, 0.3)
		})

		It("returns the per-unit inputs as derivatives", func() {
			xdot, err := sys.Dynamics(0, state, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(xdot.Count()).To(Equal(3))
			Expect(float64(xdot.Get(0).V)).To(BeNumerically("~", 0.1))
			Expect(float64(xdot.Get(1).V)).To(BeNumerically("~", 0.2))
			Expect(float64(xdot.Get(2).V)).To(BeNumerically("~", 0.3))
		})

		It("returns the per-unit states as outputs", func() {
			y, err := sys.Output(0, state, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(float64(y.Get(0).V)).To(Equal(1.0))
			Expect(float64(y.Get(1).V)).To(Equal(2.0))
			Expect(float64(y.Get(2).V)).To(Equal(3.0))
		})

		It("reports the flattened widths", func() {
			Expect(sys.NumStates()).To(Equal(3))
			Expect(sys.NumInputs()).To(Equal(3))
			Expect(sys.NumOutputs()).To(Equal(3))
		})
	})

	Context("with two units and a three-unit state", func() {
		It("fails with an arity mismatch", func() {
			sys := newSystem(2)
			_, err := sys.Dynamics(0, sigVector(1, 2, 3), sigVector(0, 0))
			Expect(err).To(MatchError(aggregate.ErrArityMismatch))
		})
	})

	Context("when empty", func() {
		It("evaluates to empty vectors and zero widths", func() {
			sys := newSystem(0)
			xdot, err := sys.Dynamics(0, sigVector(), sigVector())
			Expect(err).NotTo(HaveOccurred())
			Expect(xdot.Count()).To(BeZero())
			Expect(sys.NumStates()).To(BeZero())
			Expect(sys.NumInputs()).To(BeZero())
			Expect(sys.NumOutputs()).To(BeZero())
		})
	})
})
