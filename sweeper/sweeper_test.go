package sweeper_test

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/frizzlenpop/FrizzlenRanks/config"
	"github.com/frizzlenpop/FrizzlenRanks/registry"
	"github.com/frizzlenpop/FrizzlenRanks/store/inmemstore"
	"github.com/frizzlenpop/FrizzlenRanks/sweeper"
)

type fakePresence struct {
	mu     sync.Mutex
	online map[string]string
}

func (f *fakePresence) Online() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	online := make(map[string]string, len(f.online))
	for user, world := range f.online {
		online[user] = world
	}
	return online
}

type blockingPresence struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingPresence) Online() map[string]string {
	b.entered <- struct{}{}
	<-b.release
	return nil
}

type recordingResetter struct {
	mu     sync.Mutex
	resets []string
}

func (r *recordingResetter) Reset(worldName, userName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resets = append(r.resets, worldName+"/"+userName)
}

func (r *recordingResetter) Resets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.resets...)
}

var _ = Describe("Sweeper", func() {
	var (
		logger   *lagertest.TestLogger
		reg      *registry.Registry
		clk      *fakeclock.FakeClock
		presence *fakePresence
		resetter *recordingResetter
		subject  *sweeper.Sweeper
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("sweeper")

		conf := config.Default()
		conf.AutoSave = false
		conf.DefaultGroup = ""
		reg = registry.New(inmemstore.NewStore(), conf)

		clk = fakeclock.NewFakeClock(time.Now())
		presence = &fakePresence{online: make(map[string]string)}
		resetter = &recordingResetter{}
		subject = sweeper.New(reg, time.Minute, clk,
			sweeper.WithPresence(presence),
			sweeper.WithResetter(resetter),
		)
	})

	It("purges expired grants from online users and signals a refresh", func() {
		alice := reg.World("arena").User("alice")
		alice.AddTemporaryPermission("fly", clk.Now().Add(time.Second))
		alice.AddTemporaryGroup("vip", clk.Now().Add(time.Second))
		presence.online["alice"] = "arena"

		clk.Increment(2 * time.Second)
		summary := subject.Sweep(logger)

		Expect(summary.Affected).To(Equal(1))
		Expect(summary.Permissions).To(Equal(1))
		Expect(summary.Groups).To(Equal(1))
		Expect(resetter.Resets()).To(ConsistOf("arena/alice"))
	})

	It("leaves unexpired and permanent grants alone", func() {
		alice := reg.World("arena").User("alice")
		alice.AddPermission("build")
		alice.AddTemporaryPermission("fly", clk.Now().Add(time.Hour))
		presence.online["alice"] = "arena"

		summary := subject.Sweep(logger)

		Expect(summary.Affected).To(BeZero())
		Expect(alice.HasPermission("build")).To(BeTrue())
		Expect(alice.HasPermission("fly")).To(BeTrue())
		Expect(resetter.Resets()).To(BeEmpty())
	})

	It("sweeps offline users in every world without a refresh signal", func() {
		bob := reg.World("arena").User("bob")
		bob.AddTemporaryPermission("fly", clk.Now().Add(time.Second))
		carol := reg.World("lobby").User("carol")
		carol.AddTemporaryGroup("vip", clk.Now().Add(time.Second))

		clk.Increment(2 * time.Second)
		summary := subject.Sweep(logger)

		Expect(summary.Affected).To(Equal(2))
		Expect(bob.TemporaryPermissions()).To(BeEmpty())
		Expect(carol.TemporaryGroups()).To(BeEmpty())
		Expect(resetter.Resets()).To(BeEmpty())
	})

	It("does not sweep an online user a second time in the offline pass", func() {
		alice := reg.World("arena").User("alice")
		alice.AddTemporaryPermission("fly", clk.Now().Add(time.Second))
		presence.online["alice"] = "arena"

		clk.Increment(2 * time.Second)
		summary := subject.Sweep(logger)

		Expect(summary.Affected).To(Equal(1))
	})

	It("drops a sweep requested while one is running", func() {
		blocking := &blockingPresence{
			entered: make(chan struct{}),
			release: make(chan struct{}),
		}
		subject = sweeper.New(reg, time.Minute, clk, sweeper.WithPresence(blocking))

		done := make(chan sweeper.Summary, 1)
		go func() {
			done <- subject.Sweep(logger)
		}()
		Eventually(blocking.entered).Should(Receive())

		Expect(subject.Sweep(logger).Skipped).To(BeTrue())

		close(blocking.release)
		Eventually(done).Should(Receive())
	})

	Describe("#Run", func() {
		It("sweeps on every tick until canceled", func() {
			alice := reg.World("arena").User("alice")
			alice.AddTemporaryPermission("fly", clk.Now().Add(30*time.Second))

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			done := make(chan struct{})
			go func() {
				defer close(done)
				subject.Run(ctx, logger)
			}()

			clk.WaitForWatcherAndIncrement(time.Minute)
			Eventually(alice.TemporaryPermissions).Should(BeEmpty())

			cancel()
			Eventually(done).Should(BeClosed())
		})
	})
})
