package ranks_test

import (
	. "github.com/frizzlenpop/FrizzlenRanks"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Group", func() {
	var subject *Group

	BeforeEach(func() {
		subject = NewGroup("Admin")
	})

	It("normalizes its name to lowercase", func() {
		Expect(subject.Name()).To(Equal("admin"))
	})

	Describe("permissions", func() {
		It("normalizes tokens to lowercase at write time", func() {
			subject.AddPermission("Fly.Use")

			Expect(subject.HasPermission("fly.use")).To(BeTrue())
			Expect(subject.HasPermission("FLY.USE")).To(BeTrue())
			Expect(subject.Permissions()).To(Equal([]string{"fly.use"}))
		})

		It("removes case-insensitively", func() {
			subject.AddPermission("fly")
			subject.RemovePermission("FLY")

			Expect(subject.HasPermission("fly")).To(BeFalse())
		})
	})

	Describe("#AddInheritance", func() {
		It("silently rejects self-reference", func() {
			subject.AddInheritance("admin")
			subject.AddInheritance("ADMIN")

			Expect(subject.Inheritance()).To(BeEmpty())
		})

		It("keeps insertion order", func() {
			subject.AddInheritance("mod")
			subject.AddInheritance("vip")
			subject.AddInheritance("mod")

			Expect(subject.Inheritance()).To(Equal([]string{"mod", "vip"}))
		})

		It("does not reject longer cycles", func() {
			other := NewGroup("mod")
			other.AddInheritance("admin")
			subject.AddInheritance("mod")

			Expect(subject.Inherits("mod")).To(BeTrue())
			Expect(other.Inherits("admin")).To(BeTrue())
		})
	})

	Describe("meta", func() {
		It("stores and returns values", func() {
			subject.SetMeta("prefix", "[Admin] ")

			Expect(subject.Meta("prefix")).To(Equal("[Admin] "))
		})

		It("deletes the key when set to an empty value", func() {
			subject.SetMeta("prefix", "[Admin] ")
			subject.SetMeta("prefix", "")

			Expect(subject.Meta("prefix")).To(Equal(""))
			Expect(subject.MetaMap()).To(BeEmpty())
		})
	})

	Describe("#SetPriority", func() {
		It("stores the priority", func() {
			subject.SetPriority(100)

			Expect(subject.Priority()).To(Equal(100))
		})
	})
})
