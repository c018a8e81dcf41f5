package ranks_test

import (
	"time"

	. "github.com/frizzlenpop/FrizzlenRanks"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("User", func() {
	var subject *User

	BeforeEach(func() {
		subject = NewUser("Alice")
	})

	It("normalizes its name to lowercase", func() {
		Expect(subject.Name()).To(Equal("alice"))
	})

	Describe("permissions", func() {
		It("reports effective grants only", func() {
			subject.AddPermission("kick")
			subject.AddTemporaryPermission("fly", time.Now().Add(time.Hour))
			subject.AddTemporaryPermission("ban", time.Now().Add(-time.Second))

			Expect(subject.Permissions()).To(Equal([]string{"kick", "fly"}))
			Expect(subject.HasPermission("fly")).To(BeTrue())
			Expect(subject.HasPermission("ban")).To(BeFalse())
		})

		It("does not shadow a permanent grant with a temporary one", func() {
			subject.AddPermission("fly")
			subject.AddTemporaryPermission("fly", time.Now().Add(time.Hour))

			Expect(subject.TemporaryPermissions()).NotTo(HaveKey("fly"))
			Expect(subject.PermanentPermissions()).To(Equal([]string{"fly"}))
		})

		It("clears both layers together", func() {
			subject.AddPermission("kick")
			subject.AddTemporaryPermission("fly", time.Now().Add(time.Hour))

			subject.ClearPermissions()

			Expect(subject.Permissions()).To(BeEmpty())
		})
	})

	Describe("groups", func() {
		It("supports temporary membership", func() {
			subject.AddGroup("default")
			subject.AddTemporaryGroup("vip", time.Now().Add(time.Hour))

			Expect(subject.Groups()).To(Equal([]string{"default", "vip"}))
			Expect(subject.InGroup("vip")).To(BeTrue())
			Expect(subject.PermanentGroups()).To(Equal([]string{"default"}))
		})

		It("replaces all membership on SetGroups", func() {
			subject.AddGroup("banned")
			subject.AddTemporaryGroup("vip", time.Now().Add(time.Hour))

			subject.SetGroups([]string{"Mod"})

			Expect(subject.Groups()).To(Equal([]string{"mod"}))
			Expect(subject.TemporaryGroups()).To(BeEmpty())
		})

		It("is unranked with no effective membership", func() {
			Expect(subject.Unranked()).To(BeTrue())

			subject.AddTemporaryGroup("vip", time.Now().Add(-time.Second))
			Expect(subject.Unranked()).To(BeTrue())

			subject.AddGroup("default")
			Expect(subject.Unranked()).To(BeFalse())
		})
	})

	Describe("#ExpireGrants", func() {
		It("removes only entries expired at the given instant", func() {
			now := time.Now()
			subject.AddTemporaryPermission("fly", now.Add(time.Second))
			subject.AddTemporaryPermission("kick", now.Add(time.Hour))
			subject.AddTemporaryGroup("vip", now.Add(time.Second))

			perms, groups := subject.ExpireGrants(now.Add(time.Minute))

			Expect(perms).To(Equal([]string{"fly"}))
			Expect(groups).To(Equal([]string{"vip"}))
			Expect(subject.HasPermission("kick")).To(BeTrue())
		})
	})

	Describe("meta", func() {
		It("deletes a key set to an empty value", func() {
			subject.SetMeta("suffix", "!")
			subject.SetMeta("suffix", "")

			Expect(subject.MetaMap()).To(BeEmpty())
		})
	})
})
