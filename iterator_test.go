package fixedarray_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pavanmanishd/fixedarray"
)

var _ = Describe("Iterator", func() {
	var (
		a *fixedarray.FixedArray[int]
	)

	BeforeEach(func() {
		a = fixedarray.Of(10, 20, 30, 40)
	})

	It("should visit every element in index order", func() {
		var got []int
		for it := a.Begin(); !it.Equal(a.End()); it.Inc() {
			got = append(got, it.Value())
		}
		Expect(got).To(Equal([]int{10, 20, 30, 40}))
	})

	It("should bound the range with Begin and End", func() {
		Expect(a.Begin().Pos()).To(Equal(0))
		Expect(a.End().Pos()).To(Equal(a.Size()))
		Expect(a.Begin().Less(a.End())).To(BeTrue())
		Expect(a.End().Greater(a.Begin())).To(BeTrue())
	})

	It("should write through the cursor", func() {
		it := a.Begin().Add(2)
		it.Set(33)
		*a.Begin().Ptr() = 11

		Expect(a.String()).To(Equal("[11, 20, 33, 40]"))
	})

	It("should return itself from pre increment and decrement", func() {
		it := a.Begin()
		Expect(it.Inc()).To(BeIdenticalTo(&it))
		Expect(it.Pos()).To(Equal(1))
		Expect(it.Dec()).To(BeIdenticalTo(&it))
		Expect(it.Pos()).To(Equal(0))
	})

	It("should return the prior state from post increment and decrement", func() {
		it := a.Begin()
		prev := it.PostInc()
		Expect(prev.Value()).To(Equal(10))
		Expect(it.Value()).To(Equal(20))

		prev = it.PostDec()
		Expect(prev.Value()).To(Equal(20))
		Expect(it.Value()).To(Equal(10))
	})

	It("should offset by value without moving the receiver", func() {
		it := a.Begin()
		moved := it.Add(3)
		Expect(it.Pos()).To(Equal(0))
		Expect(moved.Value()).To(Equal(40))
		Expect(moved.Sub(2).Value()).To(Equal(20))
		Expect(a.End().Sub(1).Value()).To(Equal(40))
	})

	It("should offset in place with Advance and Retreat", func() {
		it := a.Begin()
		it.Advance(3).Retreat(1)
		Expect(it.Value()).To(Equal(30))
		Expect(it.Equal(a.Begin().Add(2))).To(BeTrue())
	})

	It("should compare positions, not contents", func() {
		b := fixedarray.NewFilled(2, 5)
		Expect(b.Begin().Equal(b.Begin().Next())).To(BeFalse())
		Expect(b.Begin().Value()).To(Equal(b.Begin().Next().Value()))
		Expect(a.Begin().Equal(fixedarray.Of(10).Begin())).To(BeFalse())
	})

	It("should have Begin equal End on an empty array", func() {
		e := fixedarray.New[int](0)
		Expect(e.Begin().Equal(e.End())).To(BeTrue())
		Expect(e.CBegin().Equal(e.CEnd())).To(BeTrue())
	})

	It("should panic when dereferencing End", func() {
		Expect(func() { a.End().Value() }).To(Panic())
		Expect(func() { a.Begin().Prev().Value() }).To(Panic())
	})

	It("should panic when dereferencing a detached cursor", func() {
		var it fixedarray.Iterator[int]
		Expect(func() { it.Value() }).To(Panic())
	})

	It("should stay valid across same-size assignment", func() {
		it := a.Begin()
		a.Assign(1, 2, 3, 4)
		Expect(it.Value()).To(Equal(1))
	})

	It("should not equal cursors taken after the buffer is replaced", func() {
		stale := a.Begin()
		a.Assign(1, 2)
		Expect(stale.Equal(a.Begin())).To(BeFalse())
		Expect(stale.Const().Equal(a.CBegin())).To(BeFalse())
	})

	It("should panic when ordering cursors of different buffers", func() {
		other := fixedarray.Of(1, 2, 3, 4, 5)
		Expect(func() { a.Begin().Less(other.End()) }).To(Panic())
		Expect(func() { a.CEnd().Greater(other.CBegin()) }).To(Panic())

		stale := a.Begin()
		a.Assign(1, 2)
		Expect(func() { stale.Less(a.End()) }).To(Panic())
		Expect(func() { a.RBegin().Less(other.REnd()) }).To(Panic())
	})

	It("should be invalidated when the buffer is replaced", func() {
		it := a.Begin()
		a.Assign(1, 2)
		Expect(func() { it.Value() }).To(Panic())

		it = a.Begin()
		fixedarray.Move(a)
		Expect(func() { it.Value() }).To(Panic())
	})
})

var _ = Describe("ConstIterator", func() {
	var (
		a *fixedarray.FixedArray[string]
	)

	BeforeEach(func() {
		a = fixedarray.Of("x", "y", "z")
	})

	It("should visit every element in index order", func() {
		var got []string
		for it := a.CBegin(); it.Less(a.CEnd()); it.Inc() {
			got = append(got, it.Value())
		}
		Expect(got).To(Equal([]string{"x", "y", "z"}))
	})

	It("should be built from an Iterator at the same position", func() {
		it := a.Begin().Next()
		c := it.Const()
		Expect(c.Pos()).To(Equal(1))
		Expect(c.Value()).To(Equal("y"))
		Expect(fixedarray.NewConstIterator(it).Equal(c)).To(BeTrue())
		Expect(a.End().Const().Equal(a.CEnd())).To(BeTrue())
	})

	It("should observe writes made through the mutable cursor", func() {
		it := a.Begin()
		c := it.Const()
		it.Set("w")
		Expect(c.Value()).To(Equal("w"))
	})

	It("should support every movement form", func() {
		c := a.CBegin()
		Expect(c.PostInc().Value()).To(Equal("x"))
		Expect(c.Inc().Value()).To(Equal("z"))
		Expect(c.PostDec().Value()).To(Equal("z"))
		Expect(c.Dec().Value()).To(Equal("x"))
		Expect(c.Add(2).Value()).To(Equal("z"))
		Expect(c.Advance(2).Retreat(1).Value()).To(Equal("y"))
		Expect(c.Next().Sub(2).Value()).To(Equal("x"))
		Expect(c.Prev().Value()).To(Equal("x"))
		Expect(c.Greater(a.CBegin())).To(BeTrue())
	})
})
