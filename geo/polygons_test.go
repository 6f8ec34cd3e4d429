package geo

import (
	"math"

	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	h3 "github.com/uber/h3-go/v4"
)

var _ = Describe("Polygon", func() {
	var subject Polygon

	// a clockwise quad around Denver, CO
	denverHole := Loop{
		{Lat: 39, Lng: -106},
		{Lat: 40.5, Lng: -106},
		{Lat: 40.5, Lng: -104},
		{Lat: 39, Lng: -104},
	}

	BeforeEach(func() {
		var err error
		subject, err = NewPolygon(Loop{sw, se, ne, nw}, denverHole)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should validate loops", func() {
		_, err := NewPolygon(Loop{sw, se})
		Expect(err).To(MatchError(ErrInvalidLoop))

		_, err = NewPolygon(Loop{sw, se, {Lat: math.NaN(), Lng: 0}})
		Expect(err).To(MatchError(ErrInvalidLoop))

		_, err = NewPolygon(Loop{sw, se, ne, nw}, Loop{sw, se})
		Expect(err).To(MatchError(ErrInvalidLoop))
		Expect(err.Error()).To(ContainSubstring("hole #0"))
	})

	It("should expose loops", func() {
		Expect(subject.Outer()).To(Equal(Loop{sw, se, ne, nw}))
		Expect(subject.Holes()).To(Equal([]Loop{denverHole}))

		plain, err := NewPolygon(Loop{sw, se, ne, nw})
		Expect(err).NotTo(HaveOccurred())
		Expect(plain.Holes()).To(BeEmpty())
	})

	DescribeTable("should contain",
		func(lat, lng float64, exp bool) {
			Expect(subject.ContainsLatLng(h3.LatLng{Lat: lat, Lng: lng})).To(Equal(exp))
		},
		Entry("Colorado Springs", 38.83, -104.82, true),
		Entry("Grand Junction", 39.06, -108.55, true),
		Entry("Denver, in the hole", 39.74, -104.99, false),
		Entry("Salt Lake City", 40.76, -111.89, false),
		Entry("Albuquerque", 35.08, -106.65, false),
	)

	It("should stringify", func() {
		Expect(subject.String()).To(Equal("4/4"))

		plain, err := NewPolygon(sfTriangle)
		Expect(err).NotTo(HaveOccurred())
		Expect(plain.String()).To(Equal("3/"))
	})
})

var _ = Describe("MultiPolygon", func() {
	var subject MultiPolygon

	BeforeEach(func() {
		colorado, err := NewPolygon(Loop{sw, se, ne, nw})
		Expect(err).NotTo(HaveOccurred())
		sf, err := NewPolygon(sfTriangle)
		Expect(err).NotTo(HaveOccurred())
		subject = MultiPolygon{colorado, sf}
	})

	It("should contain", func() {
		Expect(subject.ContainsLatLng(h3.LatLng{Lat: 39.74, Lng: -104.99})).To(BeTrue())
		Expect(subject.ContainsLatLng(h3.LatLng{Lat: 37.77, Lng: -122.47})).To(BeTrue())
		Expect(subject.ContainsLatLng(h3.LatLng{Lat: 40.76, Lng: -111.89})).To(BeFalse())
		Expect(MultiPolygon{}.ContainsLatLng(h3.LatLng{Lat: 39.74, Lng: -104.99})).To(BeFalse())
	})

	It("should stringify", func() {
		Expect(subject.String()).To(Equal("[4/ 3/]"))
		Expect(MultiPolygon{}.String()).To(Equal("[]"))
	})
})
