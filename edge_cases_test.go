package fixedarray_test

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pavanmanishd/fixedarray"
)

func forward[T any](a *fixedarray.FixedArray[T]) []T {
	var out []T
	for it := a.CBegin(); !it.Equal(a.CEnd()); it.Inc() {
		out = append(out, it.Value())
	}
	return out
}

func reverse[T any](a *fixedarray.FixedArray[T]) []T {
	var out []T
	for it := a.CRBegin(); !it.Equal(a.CREnd()); it.Inc() {
		out = append(out, it.Value())
	}
	return out
}

var _ = Describe("FixedArray edge cases", func() {
	It("should round-trip a literal list in both directions", func() {
		a := fixedarray.Of("a", "b", "c")
		Expect(cmp.Diff([]string{"a", "b", "c"}, forward(a))).To(BeEmpty())
		Expect(cmp.Diff([]string{"c", "b", "a"}, reverse(a))).To(BeEmpty())
	})

	It("should visit exactly Size elements", func() {
		for _, n := range []int{0, 1, 2, 17} {
			a := fixedarray.New[int](n)
			Expect(forward(a)).To(HaveLen(n))
			Expect(reverse(a)).To(HaveLen(n))
		}
	})

	It("should traverse in reverse the forward order reversed", func() {
		a := fixedarray.Of(3, 1, 4, 1, 5, 9, 2, 6)
		want := forward(a)
		slices.Reverse(want)
		Expect(cmp.Diff(want, reverse(a))).To(BeEmpty())
		Expect(a.RBegin().Value()).To(Equal(a.End().Sub(1).Value()))
	})

	It("should carry the size in the out of range error", func() {
		a := fixedarray.New[float64](2)
		_, err := a.At(2)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, fixedarray.ErrOutOfRange)).To(BeTrue())

		var oor *fixedarray.OutOfRangeError
		Expect(errors.As(err, &oor)).To(BeTrue())
		Expect(oor.Size).To(Equal(2))
		Expect(err.Error()).To(ContainSubstring("size of the array is 2"))
	})

	It("should reject access to an empty array", func() {
		var a fixedarray.FixedArray[int]
		_, err := a.Get(0)
		Expect(err).To(MatchError(fixedarray.ErrOutOfRange))
		Expect(a.Render("; ")).To(Equal("[]"))
	})

	It("should never report arrays of different sizes as equal", func() {
		Expect(fixedarray.Equal(fixedarray.Of(1, 2), fixedarray.Of(1, 2, 3))).To(BeFalse())
		Expect(fixedarray.Equal(fixedarray.Of(1, 2, 3), fixedarray.Of(1, 2))).To(BeFalse())
		Expect(fixedarray.Equal(fixedarray.New[int](0), fixedarray.Of(0))).To(BeFalse())
	})

	It("should leave a moved-from array empty and usable", func() {
		a := fixedarray.Of(1, 2, 3)
		b := fixedarray.Move(a)
		Expect(a.Size()).To(BeZero())
		Expect(forward(b)).To(Equal([]int{1, 2, 3}))

		a.Assign(4, 5)
		Expect(a.String()).To(Equal("[4, 5]"))
		Expect(b.String()).To(Equal("[1, 2, 3]"))
	})

	It("should copy struct elements deeply", func() {
		type point struct{ X, Y int }
		a := fixedarray.Of(point{1, 2}, point{3, 4})
		b := a.Clone()
		p, err := b.At(0)
		Expect(err).NotTo(HaveOccurred())
		p.X = 100

		first, _ := a.Get(0)
		Expect(first).To(Equal(point{1, 2}))
	})

	It("should expose writes made through At to cursors", func() {
		a := fixedarray.NewFilled(3, "")
		p, err := a.At(1)
		Expect(err).NotTo(HaveOccurred())
		*p = "mid"
		Expect(a.Begin().Next().Value()).To(Equal("mid"))
	})
})
