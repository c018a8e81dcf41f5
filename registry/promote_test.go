package registry_test

import (
	"context"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/config"
	"github.com/frizzlenpop/FrizzlenRanks/registry"
	"github.com/frizzlenpop/FrizzlenRanks/store/inmemstore"
)

var _ = Describe("Promote and Demote", func() {
	var (
		ctx     context.Context
		logger  *lagertest.TestLogger
		conf    config.Config
		subject *registry.Registry
		user    *ranks.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = lagertest.NewTestLogger("registry")
		conf = config.Default()
		conf.DefaultGroup = ""
	})

	JustBeforeEach(func() {
		subject = registry.New(inmemstore.NewStore(), conf)

		track, err := subject.CreateTrack("staff")
		Expect(err).NotTo(HaveOccurred())
		track.AddGroup("default")
		track.AddGroup("mod")
		track.AddGroup("admin")

		user = subject.World("arena").User("alice")
	})

	Describe("#Promote", func() {
		It("starts a user with no on-track group at the bottom", func() {
			group, err := subject.Promote(ctx, logger, "arena", "alice", "staff")

			Expect(err).NotTo(HaveOccurred())
			Expect(group).To(Equal("default"))
			Expect(user.Groups()).To(Equal([]string{"default"}))
		})

		It("moves the user one group up the track", func() {
			user.AddGroup("default")

			group, err := subject.Promote(ctx, logger, "arena", "alice", "staff")

			Expect(err).NotTo(HaveOccurred())
			Expect(group).To(Equal("mod"))
			Expect(user.Groups()).To(Equal([]string{"mod"}))
		})

		It("refuses to promote past the top of the track", func() {
			user.AddGroup("admin")

			_, err := subject.Promote(ctx, logger, "arena", "alice", "staff")

			Expect(err).To(MatchError(registry.ErrTopOfTrack))
		})

		It("errors on an unknown track", func() {
			_, err := subject.Promote(ctx, logger, "arena", "alice", "ghost")

			Expect(err).To(MatchError(ranks.ErrTrackNotFound))
		})

		It("errors on an empty track", func() {
			_, err := subject.CreateTrack("empty")
			Expect(err).NotTo(HaveOccurred())

			_, err = subject.Promote(ctx, logger, "arena", "alice", "empty")

			Expect(err).To(MatchError(registry.ErrEmptyTrack))
		})

		Context("with the single track type", func() {
			It("replaces every membership with the target group", func() {
				user.AddGroup("vip")
				user.AddGroup("default")

				_, err := subject.Promote(ctx, logger, "arena", "alice", "staff")

				Expect(err).NotTo(HaveOccurred())
				Expect(user.Groups()).To(Equal([]string{"mod"}))
			})
		})

		Context("with the multi track type", func() {
			BeforeEach(func() {
				conf.TrackType = "multi"
			})

			It("accumulates the target group", func() {
				user.AddGroup("vip")
				user.AddGroup("default")

				_, err := subject.Promote(ctx, logger, "arena", "alice", "staff")

				Expect(err).NotTo(HaveOccurred())
				Expect(user.Groups()).To(Equal([]string{"vip", "default", "mod"}))
			})
		})

		Context("with the replace track type", func() {
			BeforeEach(func() {
				conf.TrackType = "replace"
			})

			It("swaps the on-track group and keeps the rest", func() {
				user.AddGroup("vip")
				user.AddGroup("default")

				_, err := subject.Promote(ctx, logger, "arena", "alice", "staff")

				Expect(err).NotTo(HaveOccurred())
				Expect(user.Groups()).To(Equal([]string{"vip", "mod"}))
			})
		})
	})

	Describe("#Demote", func() {
		It("moves the user one group down the track", func() {
			user.AddGroup("admin")

			group, err := subject.Demote(ctx, logger, "arena", "alice", "staff")

			Expect(err).NotTo(HaveOccurred())
			Expect(group).To(Equal("mod"))
			Expect(user.Groups()).To(Equal([]string{"mod"}))
		})

		It("refuses to demote a user with no on-track group", func() {
			user.AddGroup("vip")

			_, err := subject.Demote(ctx, logger, "arena", "alice", "staff")

			Expect(err).To(MatchError(registry.ErrNotOnTrack))
		})

		It("refuses to demote past the bottom of the track", func() {
			user.AddGroup("default")

			_, err := subject.Demote(ctx, logger, "arena", "alice", "staff")

			Expect(err).To(MatchError(registry.ErrBottomOfTrack))
		})

		Context("with the multi track type", func() {
			BeforeEach(func() {
				conf.TrackType = "multi"
			})

			It("sheds the matched group on the way down", func() {
				user.AddGroup("vip")
				user.AddGroup("admin")

				_, err := subject.Demote(ctx, logger, "arena", "alice", "staff")

				Expect(err).NotTo(HaveOccurred())
				Expect(user.Groups()).To(Equal([]string{"vip", "mod"}))
			})
		})
	})
})
