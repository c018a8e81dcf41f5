package bridge_test

import (
	"context"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/bridge"
	"github.com/frizzlenpop/FrizzlenRanks/config"
	"github.com/frizzlenpop/FrizzlenRanks/registry"
	"github.com/frizzlenpop/FrizzlenRanks/store/inmemstore"
)

var _ = Describe("Provider", func() {
	var (
		ctx     context.Context
		logger  *lagertest.TestLogger
		reg     *registry.Registry
		world   *ranks.World
		subject *bridge.Provider
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = lagertest.NewTestLogger("bridge")

		conf := config.Default()
		conf.AutoSave = false
		conf.DefaultGroup = ""
		reg = registry.New(inmemstore.NewStore(), conf)
		world = reg.World("arena")
		subject = bridge.New(reg)
	})

	Describe("permissions", func() {
		It("resolves through direct grants and groups", func() {
			world.Group("mod").AddPermission("kick")
			world.User("alice").AddGroup("mod")

			Expect(subject.HasPermission("arena", "alice", "kick")).To(BeTrue())
			Expect(subject.HasPermission("arena", "alice", "ban")).To(BeFalse())
		})

		It("adds and removes player permissions", func() {
			subject.PlayerAddPermission(ctx, logger, "arena", "alice", "fly")
			Expect(subject.HasPermission("arena", "alice", "fly")).To(BeTrue())

			subject.PlayerRemovePermission(ctx, logger, "arena", "alice", "fly")
			Expect(subject.HasPermission("arena", "alice", "fly")).To(BeFalse())
		})

		It("edits group permissions", func() {
			subject.GroupAddPermission(ctx, logger, "arena", "mod", "kick")
			Expect(subject.GroupHasPermission("arena", "mod", "kick")).To(BeTrue())

			subject.GroupRemovePermission(ctx, logger, "arena", "mod", "kick")
			Expect(subject.GroupHasPermission("arena", "mod", "kick")).To(BeFalse())
		})
	})

	Describe("group membership", func() {
		It("adds, queries and removes memberships", func() {
			subject.PlayerAddGroup(ctx, logger, "arena", "alice", "vip")

			Expect(subject.PlayerInGroup("arena", "alice", "vip")).To(BeTrue())
			Expect(subject.PlayerGroups("arena", "alice")).To(Equal([]string{"vip"}))

			subject.PlayerRemoveGroup(ctx, logger, "arena", "alice", "vip")
			Expect(subject.PlayerInGroup("arena", "alice", "vip")).To(BeFalse())
		})
	})

	Describe("#PrimaryGroup", func() {
		It("picks the highest-priority effective group", func() {
			world.Group("vip").SetPriority(5)
			world.Group("admin").SetPriority(50)
			user := world.User("alice")
			user.AddGroup("vip")
			user.AddGroup("admin")

			Expect(subject.PrimaryGroup("arena", "alice")).To(Equal("admin"))
		})

		It("breaks priority ties by membership order", func() {
			world.Group("red")
			world.Group("blue")
			user := world.User("alice")
			user.AddGroup("red")
			user.AddGroup("blue")

			Expect(subject.PrimaryGroup("arena", "alice")).To(Equal("red"))
		})

		It("returns empty for an unranked user", func() {
			Expect(subject.PrimaryGroup("arena", "alice")).To(Equal(""))
		})
	})

	Describe("info lookups", func() {
		BeforeEach(func() {
			group := world.Group("vip")
			group.SetPriority(5)
			group.SetMeta("prefix", "[VIP]")
			group.SetMeta("homes", "3")
			world.User("alice").AddGroup("vip")
		})

		It("prefers the user's own metadata", func() {
			world.User("alice").SetMeta("prefix", "[OWNER]")

			Expect(subject.Prefix("arena", "alice")).To(Equal("[OWNER]"))
		})

		It("falls back to the highest-priority group", func() {
			admin := world.Group("admin")
			admin.SetPriority(50)
			admin.SetMeta("prefix", "[ADMIN]")
			world.User("alice").AddGroup("admin")

			Expect(subject.Prefix("arena", "alice")).To(Equal("[ADMIN]"))
		})

		It("returns the default when nothing matches", func() {
			Expect(subject.InfoString("arena", "alice", "motd", "welcome")).To(Equal("welcome"))
			Expect(subject.Suffix("arena", "alice")).To(Equal(""))
		})

		It("coerces typed values with defaults on parse failure", func() {
			user := world.User("alice")
			user.SetMeta("lives", "9")
			user.SetMeta("speed", "1.5")
			user.SetMeta("flying", "true")
			user.SetMeta("broken", "not-a-number")

			Expect(subject.InfoInt("arena", "alice", "lives", 1)).To(Equal(9))
			Expect(subject.InfoInt("arena", "alice", "homes", 1)).To(Equal(3))
			Expect(subject.InfoInt("arena", "alice", "broken", 7)).To(Equal(7))
			Expect(subject.InfoFloat("arena", "alice", "speed", 1.0)).To(Equal(1.5))
			Expect(subject.InfoBool("arena", "alice", "flying", false)).To(BeTrue())
			Expect(subject.InfoBool("arena", "alice", "missing", true)).To(BeTrue())
		})

		It("writes user and group metadata", func() {
			subject.SetInfo(ctx, logger, "arena", "alice", "prefix", "[HERO]")
			Expect(subject.Prefix("arena", "alice")).To(Equal("[HERO]"))

			subject.SetGroupInfo(ctx, logger, "arena", "vip", "suffix", "*")
			Expect(subject.GroupSuffix("arena", "vip")).To(Equal("*"))
		})
	})
})
