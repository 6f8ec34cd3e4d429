package cells

import (
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	h3 "github.com/uber/h3-go/v4"
)

var _ = Describe("Set", func() {
	var nbs []h3.Cell

	BeforeEach(func() {
		nbs = neighborsOf(seedCell)
		Expect(nbs).To(HaveLen(6))
	})

	It("should normalise", func() {
		subject := Set{nbs[2], seedCell, nbs[0], nbs[2], seedCell}
		subject.Normalize()
		Expect(subject).To(HaveLen(3))
		for i := 1; i < len(subject); i++ {
			Expect(subject[i-1] < subject[i]).To(BeTrue())
		}
		Expect(subject).To(Equal(SetFromCells([]h3.Cell{seedCell, nbs[0], nbs[2]})))
	})

	It("should check containment", func() {
		subject := SetFromCells(nbs)
		Expect(subject.Contains(nbs[3])).To(BeTrue())
		Expect(subject.Contains(seedCell)).To(BeFalse())
		Expect(Set{}.Contains(seedCell)).To(BeFalse())
	})

	It("should union", func() {
		a := SetFromCells([]h3.Cell{nbs[0], nbs[1], nbs[2]})
		b := SetFromCells([]h3.Cell{nbs[1], nbs[2], nbs[3]})
		Expect(a.Union(b)).To(Equal(SetFromCells([]h3.Cell{nbs[0], nbs[1], nbs[2], nbs[3]})))
		Expect(a.Union(nil)).To(Equal(a))
		Expect(Set(nil).Union(b)).To(Equal(b))
	})

	It("should intersect", func() {
		a := SetFromCells([]h3.Cell{nbs[0], nbs[1], nbs[2]})
		b := SetFromCells([]h3.Cell{nbs[1], nbs[2], nbs[3]})
		Expect(a.Intersect(b)).To(Equal(SetFromCells([]h3.Cell{nbs[1], nbs[2]})))
		Expect(a.Intersect(nil)).To(BeEmpty())
	})

	It("should diff", func() {
		a := SetFromCells([]h3.Cell{nbs[0], nbs[1], nbs[2]})
		b := SetFromCells([]h3.Cell{nbs[1], nbs[2], nbs[3]})
		Expect(a.Diff(b)).To(Equal(SetFromCells([]h3.Cell{nbs[0]})))
		Expect(b.Diff(a)).To(Equal(SetFromCells([]h3.Cell{nbs[3]})))
		Expect(a.Diff(nil)).To(Equal(a))
		Expect(Set(nil).Diff(a)).To(BeEmpty())
	})

	It("should compare and clone", func() {
		subject := SetFromCells(nbs)
		clone := subject.Clone()
		Expect(clone.Equal(subject)).To(BeTrue())

		clone[0] = seedCell
		Expect(clone.Equal(subject)).To(BeFalse())
		Expect(subject.Equal(subject[1:])).To(BeFalse())
	})

	It("should report a common resolution", func() {
		subject := SetFromCells(nbs)
		res, ok := subject.Resolution()
		Expect(ok).To(BeTrue())
		Expect(res).To(Equal(9))

		subject = append(subject, cellAt(37.775, -122.419, 8))
		subject.Normalize()
		_, ok = subject.Resolution()
		Expect(ok).To(BeFalse())

		_, ok = Set{}.Resolution()
		Expect(ok).To(BeFalse())
	})

	It("should stringify", func() {
		Expect(Set{}.String()).To(Equal("[]"))
		Expect(SetFromCells([]h3.Cell{seedCell}).String()).To(Equal("[" + seedCell.String() + "]"))
	})
})
