package probe_test

import (
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/frizzlenpop/FrizzlenRanks/config"
	"github.com/frizzlenpop/FrizzlenRanks/probe"
	"github.com/frizzlenpop/FrizzlenRanks/registry"
	"github.com/frizzlenpop/FrizzlenRanks/store/inmemstore"
)

var _ = Describe("Probe", func() {
	var (
		logger *lagertest.TestLogger
		reg    *registry.Registry
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("probe")

		conf := config.Default()
		conf.AutoSave = false
		conf.DefaultGroup = ""
		reg = registry.New(inmemstore.NewStore(), conf)
	})

	It("passes against a healthy engine", func() {
		subject := probe.NewProbe(reg)

		Expect(subject.Run(logger)).To(Succeed())
	})

	It("removes its scratch world afterwards", func() {
		subject := probe.NewProbe(reg)

		Expect(subject.Run(logger)).To(Succeed())
		Expect(reg.Worlds()).To(BeEmpty())
	})

	It("fails when a run exceeds the latency bound", func() {
		subject := probe.NewProbe(reg, probe.WithMaxLatency(-1))

		Expect(subject.Run(logger)).To(MatchError(probe.ErrExceededMaxLatency))
	})
})
