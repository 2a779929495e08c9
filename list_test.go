package blocklist_test

import (
	"cmp"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/outofforest/blocklist"
)

func requireElements(t *testing.T, expected []int, l *blocklist.List[int]) {
	t.Helper()

	if diff := gocmp.Diff(expected, l.Slice()); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
	require.Equal(t, len(expected), l.Len())
}

func TestScenario(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.New[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)
	requireElements(t, []int{1, 2, 3}, l)

	l.Prepend(0)
	requireElements(t, []int{0, 1, 2, 3}, l)

	requireT.True(l.Insert(2, 99))
	requireElements(t, []int{0, 1, 99, 2, 3}, l)

	requireT.True(l.RemoveAt(2))
	requireElements(t, []int{0, 1, 2, 3}, l)

	requireT.Equal(2, l.IndexOf(2))
	requireT.Equal(3, l.TakeLast())
	requireElements(t, []int{0, 1, 2}, l)
}

func TestAppendKeepsOrder(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.New[int]()
	for i := 0; i < 1000; i++ {
		l.Append(i)
	}

	requireT.Equal(1000, l.Len())
	for i := 0; i < 1000; i++ {
		requireT.Equal(i, l.At(i))
	}
}

func TestPrependOrder(t *testing.T) {
	l := blocklist.New[string]()
	l.Prepend("a")
	l.Prepend("b")

	require.Equal(t, []string{"b", "a"}, l.Slice())
}

func TestMixedEnds(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.New[int]()
	expected := []int{}
	for i := 0; i < 200; i++ {
		if i%2 == 0 {
			l.Append(i)
			expected = append(expected, i)
		} else {
			l.Prepend(i)
			expected = append([]int{i}, expected...)
		}
	}
	requireElements(t, expected, l)
	requireT.GreaterOrEqual(l.Cap(), l.Len())
}

func TestInsertRemoveRestores(t *testing.T) {
	for _, size := range []int{0, 1, 2, 7, 8} {
		original := make([]int, 0, size)
		for i := 0; i < size; i++ {
			original = append(original, i)
		}

		// Covers idx == 0, idx == length/2 and idx == length.
		for idx := 0; idx <= size; idx++ {
			l := blocklist.FromSlice(original, blocklist.Copy)
			require.True(t, l.Insert(idx, 100))
			require.Equal(t, 100, l.Get(idx))
			require.True(t, l.RemoveAt(idx))
			requireElements(t, original, l)
		}
	}
}

func TestInsertOutOfRange(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.FromSlice([]int{1, 2}, blocklist.Copy)
	requireT.False(l.Insert(-1, 0))
	requireT.False(l.Insert(3, 0))
	requireT.True(l.Insert(2, 3))
	requireElements(t, []int{1, 2, 3}, l)
}

func TestInsertN(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.FromSlice([]int{1, 2, 3, 4}, blocklist.Copy)
	requireT.True(l.InsertN(1, 9, 3))
	requireElements(t, []int{1, 9, 9, 9, 2, 3, 4}, l)

	requireT.True(l.InsertN(6, 8, 2))
	requireElements(t, []int{1, 9, 9, 9, 2, 3, 8, 8, 4}, l)

	requireT.True(l.InsertN(0, 7, 0))
	requireT.Equal(9, l.Len())
}

func TestRemoveAtInvalid(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.FromSlice([]int{1, 2, 3}, blocklist.Copy)
	requireT.False(l.RemoveAt(-1))
	requireT.False(l.RemoveAt(3))
	requireElements(t, []int{1, 2, 3}, l)
}

func TestRemoveFirstLast(t *testing.T) {
	l := blocklist.FromSlice([]int{1, 2, 3, 4}, blocklist.Copy)
	l.RemoveFirst()
	l.RemoveLast()
	requireElements(t, []int{2, 3}, l)

	l.RemoveLast()
	l.RemoveLast()
	l.RemoveLast()
	l.RemoveFirst()
	requireElements(t, []int{}, l)
}

func TestFill(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.New[int]()
	l.Fill(7, 4)
	requireElements(t, []int{7, 7, 7, 7}, l)

	l.Fill(1, -1)
	requireElements(t, []int{1, 1, 1, 1}, l)

	l.Fill(2, 2)
	requireElements(t, []int{2, 2}, l)
	requireT.Equal(4, l.Cap())
}

func TestConstructors(t *testing.T) {
	requireT := require.New(t)

	sized := blocklist.NewSized[int](3)
	requireElements(t, []int{0, 0, 0}, sized)

	filled := blocklist.NewFilled(3, 5)
	requireElements(t, []int{5, 5, 5}, filled)
	requireT.Equal(3, filled.Cap())

	empty := blocklist.FromSlice[int](nil, blocklist.NoCopy)
	requireT.True(empty.IsEmpty())
	empty.Append(1)
	requireElements(t, []int{1}, empty)
}

func TestAdoptAliasing(t *testing.T) {
	requireT := require.New(t)

	adopted := []int{5, 6, 7}
	l := blocklist.FromSlice(adopted, blocklist.NoCopy)
	l.Set(0, 9)
	requireT.Equal([]int{9, 6, 7}, adopted)

	copied := []int{5, 6, 7}
	l = blocklist.FromSlice(copied, blocklist.Copy)
	l.Set(0, 9)
	requireT.Equal([]int{5, 6, 7}, copied)
	requireElements(t, []int{9, 6, 7}, l)
}

func TestAdoptedStorageSurvivesGrowthAndClear(t *testing.T) {
	requireT := require.New(t)

	adopted := []int{5, 6, 7}
	l := blocklist.FromSlice(adopted, blocklist.NoCopy)
	l.Append(8)
	l.Prepend(4)
	l.Set(2, 10)
	requireElements(t, []int{4, 5, 10, 7, 8}, l)
	requireT.Equal([]int{5, 10, 7}, adopted)

	l.Clear()
	requireT.Equal([]int{5, 10, 7}, adopted)
}

func TestSet(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.New[int]()
	l.Set(3, 4)
	requireT.Equal(4, l.Len())
	requireT.Equal(4, l.Get(3))

	l.Set(1, 2)
	requireT.Equal(2, l.Get(1))
	requireT.Equal(4, l.Len())

	l.Set(-1, 1)
	requireT.Equal(4, l.Len())
}

func TestResize(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.FromSlice([]int{1, 2, 3, 4}, blocklist.Copy)
	l.Resize(2)
	requireElements(t, []int{1, 2}, l)
	requireT.Equal(4, l.Cap())

	l.Resize(10)
	requireT.Equal(10, l.Len())
	requireT.GreaterOrEqual(l.Cap(), 10)
	requireT.Equal(1, l.Get(0))
	requireT.Equal(2, l.Get(1))

	l.Resize(-1)
	requireT.True(l.IsEmpty())
}

func TestReserve(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.FromSlice([]int{1, 2}, blocklist.Copy)
	l.Reserve(10)
	requireT.Equal(10, l.Cap())
	requireElements(t, []int{1, 2}, l)

	l.Reserve(5)
	requireT.Equal(10, l.Cap())

	for i := 0; i < 4; i++ {
		l.Append(3 + i)
		l.Prepend(-i)
	}
	requireT.Equal(10, l.Cap())
	requireElements(t, []int{-3, -2, -1, 0, 1, 2, 3, 4, 5, 6}, l)
}

func TestSetAllIncludesSlack(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.FromSlice([]int{1, 2, 3}, blocklist.Copy)
	l.Reserve(8)
	l.SetAll(5)
	requireElements(t, []int{5, 5, 5}, l)

	l.Resize(l.Cap())
	requireT.Equal(8, l.Cap())
	requireElements(t, []int{5, 5, 5, 5, 5, 5, 5, 5}, l)
}

func TestClear(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.FromSlice([]int{1, 2, 3}, blocklist.Copy)
	l.Append(4)
	l.Clear()
	requireT.True(l.IsEmpty())
	requireT.Equal(0, l.Cap())

	l.Append(1)
	requireElements(t, []int{1}, l)
}

func TestCompact(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.New[int]()
	for i := 0; i < 10; i++ {
		l.Append(i)
		l.Prepend(-i)
	}
	expected := l.Slice()
	requireT.Greater(l.Cap(), l.Len())

	l.Compact()
	requireT.Equal(l.Len(), l.Cap())
	requireElements(t, expected, l)

	l.Compact()
	requireT.Equal(l.Len(), l.Cap())
	requireElements(t, expected, l)

	l.Resize(0)
	l.Compact()
	requireT.Equal(0, l.Cap())
}

func TestSwap(t *testing.T) {
	requireT := require.New(t)

	a := blocklist.FromSlice([]int{1, 2, 3}, blocklist.Copy)
	a.Reserve(10)
	b := blocklist.FromSlice([]int{4}, blocklist.Copy)

	a.Swap(b)
	requireElements(t, []int{4}, a)
	requireT.Equal(1, a.Cap())
	requireElements(t, []int{1, 2, 3}, b)
	requireT.Equal(10, b.Cap())

	a.Append(5)
	b.Prepend(0)
	requireElements(t, []int{4, 5}, a)
	requireElements(t, []int{0, 1, 2, 3}, b)
}

func TestSwapKeepsInvalidValue(t *testing.T) {
	requireT := require.New(t)

	a := blocklist.FromSlice([]int{1}, blocklist.Copy, blocklist.WithInvalid(-1))
	b := blocklist.FromSlice([]int{2, 3}, blocklist.Copy, blocklist.WithInvalid(-2))

	a.Swap(b)
	requireElements(t, []int{2, 3}, a)
	requireElements(t, []int{1}, b)
	requireT.Equal(-1, a.At(5))
	requireT.Equal(-2, b.At(5))
}

func TestCloneIsIndependent(t *testing.T) {
	requireT := require.New(t)

	src := blocklist.FromSlice([]int{1, 2, 3}, blocklist.Copy)
	src.Reserve(6)
	c := src.Clone()
	requireT.True(c.Equal(src))
	requireT.Equal(src.Cap(), c.Cap())

	c.Set(0, 10)
	c.Append(4)
	c.Prepend(0)
	requireElements(t, []int{1, 2, 3}, src)
	requireElements(t, []int{0, 10, 2, 3, 4}, c)
}

func TestAssign(t *testing.T) {
	requireT := require.New(t)

	src := blocklist.FromSlice([]int{1, 2, 3}, blocklist.Copy)
	dst := blocklist.FromSlice([]int{9, 9}, blocklist.Copy)
	dst.Assign(src)
	requireT.True(dst.Equal(src))

	dst.Set(1, 0)
	requireElements(t, []int{1, 2, 3}, src)

	dst.Assign(dst)
	requireElements(t, []int{1, 0, 3}, dst)
}

func TestEqual(t *testing.T) {
	requireT := require.New(t)

	a := blocklist.FromSlice([]int{1, 2, 3}, blocklist.Copy)
	b := blocklist.New[int]()
	b.Append(2)
	b.Append(3)
	b.Prepend(1)

	requireT.True(a.Equal(b))
	b.Set(2, 4)
	requireT.False(a.Equal(b))
	b.RemoveLast()
	requireT.False(a.Equal(b))
	requireT.True(blocklist.New[int]().Equal(blocklist.New[int]()))
}

func TestConcat(t *testing.T) {
	requireT := require.New(t)

	a := blocklist.FromSlice([]int{1, 2}, blocklist.Copy)
	a.Reserve(10)
	b := blocklist.FromSlice([]int{3, 4, 5}, blocklist.Copy)

	c := a.Concat(b)
	requireT.Equal(a.Len()+b.Len(), c.Len())
	requireT.Equal(c.Len(), c.Cap())
	requireElements(t, []int{1, 2, 3, 4, 5}, c)

	c.Set(0, 0)
	requireElements(t, []int{1, 2}, a)

	requireT.True(blocklist.New[int]().Concat(blocklist.New[int]()).IsEmpty())
}

func TestAppendList(t *testing.T) {
	a := blocklist.FromSlice([]int{1, 2}, blocklist.Copy)
	a.AppendList(blocklist.FromSlice([]int{3, 4}, blocklist.Copy))
	requireElements(t, []int{1, 2, 3, 4}, a)

	a.AppendList(a)
	requireElements(t, []int{1, 2, 3, 4, 1, 2, 3, 4}, a)

	a.AppendValues(5, 6)
	a.AppendValues()
	requireElements(t, []int{1, 2, 3, 4, 1, 2, 3, 4, 5, 6}, a)
}

func TestTake(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.FromSlice([]int{1, 2, 3, 4}, blocklist.Copy, blocklist.WithInvalid(-1))
	requireT.Equal(2, l.TakeAt(1))
	requireT.Equal(1, l.TakeFirst())
	requireT.Equal(4, l.TakeLast())
	requireElements(t, []int{3}, l)

	requireT.Equal(-1, l.TakeAt(5))
	requireT.Equal(3, l.TakeLast())
	requireT.Equal(-1, l.TakeLast())
	requireT.Equal(-1, l.TakeFirst())
}

func TestCheckedAccess(t *testing.T) {
	requireT := require.New(t)

	core, logs := observer.New(zap.WarnLevel)
	l := blocklist.FromSlice([]int{1, 2, 3}, blocklist.Copy,
		blocklist.WithInvalid(-1), blocklist.WithLogger[int](zap.New(core)))

	requireT.Equal(2, l.At(1))
	requireT.Equal(0, logs.Len())

	requireT.Equal(-1, l.At(3))
	requireT.Equal(-1, l.At(-1))
	requireT.Equal(42, l.ValueOr(3, 42))
	requireT.Equal(3, l.ValueOr(2, 42))
	requireT.Equal(1, l.First())
	requireT.Equal(3, l.Last())

	entries := logs.FilterMessage("Index out of range").All()
	requireT.Len(entries, 2)
	requireT.Equal(int64(3), entries[0].ContextMap()["index"])
	requireT.Equal(int64(3), entries[0].ContextMap()["length"])

	empty := blocklist.New[int](blocklist.WithInvalid(-1))
	requireT.Equal(-1, empty.First())
	requireT.Equal(-1, empty.Last())
}

func TestRef(t *testing.T) {
	l := blocklist.FromSlice([]int{1, 2, 3}, blocklist.Copy)
	*l.Ref(1) = 20
	requireElements(t, []int{1, 20, 3}, l)
}

func TestSort(t *testing.T) {
	l := blocklist.New[int]()
	for _, v := range []int{5, 3, 9, 1, 3, 7} {
		l.Prepend(v)
	}

	l.Sort(cmp.Compare[int])
	requireElements(t, []int{1, 3, 3, 5, 7, 9}, l)

	l.Sort(func(a, b int) int { return b - a })
	requireElements(t, []int{9, 7, 5, 3, 3, 1}, l)
}

func TestEach(t *testing.T) {
	requireT := require.New(t)

	l := blocklist.FromSlice([]int{1, 2, 3, 4}, blocklist.Copy)
	var visited []int
	l.Each(func(idx int, v int) bool {
		requireT.Equal(idx+1, v)
		visited = append(visited, v)
		return v < 2
	})
	requireT.Equal([]int{1, 2}, visited)
}
