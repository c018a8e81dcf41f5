package storebehaviors_test

import (
	"context"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/store"
)

// BehavesLikeAStore is the contract every store implementation must
// satisfy, run against each backend's own suite.
func BehavesLikeAStore(subjectCreator func() store.Store) {
	var (
		subject store.Store

		ctx    context.Context
		logger *lagertest.TestLogger
	)

	BeforeEach(func() {
		subject = subjectCreator()

		ctx = context.Background()
		logger = lagertest.NewTestLogger("store-test")
	})

	Describe("#SaveWorld and #LoadWorld", func() {
		It("round-trips a world snapshot", func() {
			name := uuid.NewV4().String()
			saved := store.WorldData{
				Groups: map[string]store.GroupData{
					"admin": {
						Permissions: []string{"kick", "ban"},
						Inheritance: []string{"mod"},
						Priority:    50,
						Meta:        map[string]string{"prefix": "[A]"},
					},
					"mod": {
						Permissions: []string{"mute"},
					},
				},
				Users: map[string]store.UserData{
					"alice": {
						Permissions: []string{"fly"},
						Groups:      []string{"admin", "mod"},
						Meta:        map[string]string{"suffix": "*"},
					},
				},
			}

			Expect(subject.SaveWorld(ctx, logger, name, saved)).To(Succeed())

			loaded, err := subject.LoadWorld(ctx, logger, name)
			Expect(err).NotTo(HaveOccurred())

			Expect(loaded.Groups).To(HaveLen(2))
			Expect(loaded.Groups["admin"].Permissions).To(Equal([]string{"kick", "ban"}))
			Expect(loaded.Groups["admin"].Inheritance).To(Equal([]string{"mod"}))
			Expect(loaded.Groups["admin"].Priority).To(Equal(50))
			Expect(loaded.Groups["admin"].Meta).To(HaveKeyWithValue("prefix", "[A]"))
			Expect(loaded.Groups["mod"].Permissions).To(Equal([]string{"mute"}))

			Expect(loaded.Users).To(HaveLen(1))
			Expect(loaded.Users["alice"].Permissions).To(Equal([]string{"fly"}))
			Expect(loaded.Users["alice"].Groups).To(Equal([]string{"admin", "mod"}))
			Expect(loaded.Users["alice"].Meta).To(HaveKeyWithValue("suffix", "*"))
		})

		It("errors when the world has never been saved", func() {
			_, err := subject.LoadWorld(ctx, logger, uuid.NewV4().String())

			Expect(err).To(MatchError(ranks.ErrWorldNotFound))
		})

		It("fully replaces a previously saved world", func() {
			name := uuid.NewV4().String()

			Expect(subject.SaveWorld(ctx, logger, name, store.WorldData{
				Groups: map[string]store.GroupData{"old": {Permissions: []string{"x"}}},
				Users:  map[string]store.UserData{"bob": {Groups: []string{"old"}}},
			})).To(Succeed())

			Expect(subject.SaveWorld(ctx, logger, name, store.WorldData{
				Groups: map[string]store.GroupData{"new": {Permissions: []string{"y"}}},
				Users:  map[string]store.UserData{},
			})).To(Succeed())

			loaded, err := subject.LoadWorld(ctx, logger, name)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Groups).To(HaveKey("new"))
			Expect(loaded.Groups).NotTo(HaveKey("old"))
			Expect(loaded.Users).To(BeEmpty())
		})
	})

	Describe("#WorldNames", func() {
		It("lists every saved world", func() {
			first := uuid.NewV4().String()
			second := uuid.NewV4().String()

			Expect(subject.SaveWorld(ctx, logger, first, store.WorldData{
				Users: map[string]store.UserData{"alice": {}},
			})).To(Succeed())
			Expect(subject.SaveWorld(ctx, logger, second, store.WorldData{
				Groups: map[string]store.GroupData{"vip": {Permissions: []string{"fly"}}},
			})).To(Succeed())

			names, err := subject.WorldNames(ctx, logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(ContainElements(first, second))
		})
	})

	Describe("#SaveTracks and #LoadTracks", func() {
		It("round-trips tracks preserving group order", func() {
			Expect(subject.SaveTracks(ctx, logger, map[string][]string{
				"staff": {"default", "mod", "admin"},
				"donor": {"vip", "vip+"},
			})).To(Succeed())

			tracks, err := subject.LoadTracks(ctx, logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(tracks).To(HaveLen(2))
			Expect(tracks["staff"]).To(Equal([]string{"default", "mod", "admin"}))
			Expect(tracks["donor"]).To(Equal([]string{"vip", "vip+"}))
		})

		It("replaces the previous track set", func() {
			Expect(subject.SaveTracks(ctx, logger, map[string][]string{
				"staff": {"mod"},
			})).To(Succeed())
			Expect(subject.SaveTracks(ctx, logger, map[string][]string{
				"donor": {"vip"},
			})).To(Succeed())

			tracks, err := subject.LoadTracks(ctx, logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(tracks).NotTo(HaveKey("staff"))
			Expect(tracks["donor"]).To(Equal([]string{"vip"}))
		})
	})
}
