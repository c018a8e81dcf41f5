package ranks_test

import (
	. "github.com/frizzlenpop/FrizzlenRanks"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Track", func() {
	var subject *Track

	BeforeEach(func() {
		subject = NewTrack("staff")
		subject.AddGroup("default")
		subject.AddGroup("mod")
		subject.AddGroup("admin")
	})

	Describe("#NextGroup", func() {
		It("returns the neighbor above", func() {
			next, ok := subject.NextGroup("default")
			Expect(ok).To(BeTrue())
			Expect(next).To(Equal("mod"))
		})

		It("returns false at the top of the track", func() {
			_, ok := subject.NextGroup("admin")
			Expect(ok).To(BeFalse())
		})

		It("returns false for a group not on the track", func() {
			_, ok := subject.NextGroup("vip")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("#PreviousGroup", func() {
		It("returns the neighbor below", func() {
			previous, ok := subject.PreviousGroup("admin")
			Expect(ok).To(BeTrue())
			Expect(previous).To(Equal("mod"))
		})

		It("returns false at the bottom of the track", func() {
			_, ok := subject.PreviousGroup("default")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("ends", func() {
		It("identifies the highest and lowest groups", func() {
			Expect(subject.IsHighestGroup("admin")).To(BeTrue())
			Expect(subject.IsHighestGroup("mod")).To(BeFalse())
			Expect(subject.IsLowestGroup("default")).To(BeTrue())
			Expect(subject.IsLowestGroup("admin")).To(BeFalse())
		})

		It("reports false for any input on an empty track", func() {
			empty := NewTrack("empty")

			Expect(empty.IsHighestGroup("admin")).To(BeFalse())
			Expect(empty.IsLowestGroup("admin")).To(BeFalse())
		})
	})

	Describe("#InsertGroup", func() {
		It("inserts at the given position", func() {
			subject.InsertGroup(1, "helper")

			Expect(subject.Groups()).To(Equal([]string{"default", "helper", "mod", "admin"}))
		})

		It("appends when the index is past the end", func() {
			subject.InsertGroup(99, "owner")

			Expect(subject.IsHighestGroup("owner")).To(BeTrue())
		})
	})

	Describe("#RemoveGroup", func() {
		It("removes the group and reports whether it was present", func() {
			Expect(subject.RemoveGroup("mod")).To(BeTrue())
			Expect(subject.RemoveGroup("mod")).To(BeFalse())
			Expect(subject.Groups()).To(Equal([]string{"default", "admin"}))
		})
	})

	Describe("ParseTrackType", func() {
		It("maps known values and defaults to single", func() {
			Expect(ParseTrackType("multi")).To(Equal(TrackTypeMulti))
			Expect(ParseTrackType("REPLACE")).To(Equal(TrackTypeReplace))
			Expect(ParseTrackType("single")).To(Equal(TrackTypeSingle))
			Expect(ParseTrackType("bogus")).To(Equal(TrackTypeSingle))
		})
	})
})
