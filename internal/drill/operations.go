package drill

import (
	"cmp"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"github.com/outofforest/blocklist"
)

// valueRange is small so value-based operations find duplicates.
const valueRange = 16

type operation struct {
	Name  string
	Apply func(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error)
}

var operations = []operation{
	{Name: "append", Apply: opAppend},
	{Name: "appendValues", Apply: opAppendValues},
	{Name: "prepend", Apply: opPrepend},
	{Name: "insert", Apply: opInsert},
	{Name: "insertN", Apply: opInsertN},
	{Name: "set", Apply: opSet},
	{Name: "removeAt", Apply: opRemoveAt},
	{Name: "removeAll", Apply: opRemoveAll},
	{Name: "replaceAll", Apply: opReplaceAll},
	{Name: "takeFirst", Apply: opTakeFirst},
	{Name: "takeLast", Apply: opTakeLast},
	{Name: "indexOf", Apply: opIndexOf},
	{Name: "shrink", Apply: opShrink},
	{Name: "reserve", Apply: opReserve},
	{Name: "compact", Apply: opCompact},
	{Name: "clone", Apply: opClone},
	{Name: "concat", Apply: opConcat},
	{Name: "sort", Apply: opSort},
	{Name: "swap", Apply: opSwap},
	{Name: "fill", Apply: opFill},
	{Name: "remove", Apply: opRemove},
	{Name: "replace", Apply: opReplace},
	{Name: "replaceAt", Apply: opReplaceAt},
	{Name: "appendList", Apply: opAppendList},
	{Name: "reservePrepend", Apply: opReservePrepend},
}

func randomValues(r *rand.Rand, maxLen int) []int {
	values := make([]int, r.Intn(maxLen+1))
	for i := range values {
		values[i] = r.Intn(valueRange)
	}
	return values
}

func opAppend(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	v := r.Intn(valueRange)
	l.Append(v)
	return append(model, v), nil
}

func opAppendValues(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	values := randomValues(r, 7)
	l.AppendValues(values...)
	return append(model, values...), nil
}

func opPrepend(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	v := r.Intn(valueRange)
	l.Prepend(v)
	return slices.Insert(model, 0, v), nil
}

func opInsert(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	idx := r.Intn(len(model) + 1)
	v := r.Intn(valueRange)
	if !l.Insert(idx, v) {
		return nil, errors.Errorf("inserting at valid index %d rejected", idx)
	}
	return slices.Insert(model, idx, v), nil
}

func opInsertN(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	idx := r.Intn(len(model) + 1)
	v := r.Intn(valueRange)
	count := r.Intn(5)
	if !l.InsertN(idx, v, count) {
		return nil, errors.Errorf("inserting %d elements at valid index %d rejected", count, idx)
	}
	values := make([]int, count)
	for i := range values {
		values[i] = v
	}
	return slices.Insert(model, idx, values...), nil
}

func opSet(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	idx := r.Intn(len(model) + 1)
	v := r.Intn(valueRange)
	l.Set(idx, v)
	if idx == len(model) {
		return append(model, v), nil
	}
	model[idx] = v
	return model, nil
}

func opRemoveAt(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	if len(model) == 0 {
		if l.RemoveAt(0) {
			return nil, errors.New("removing from empty list succeeded")
		}
		return model, nil
	}
	idx := r.Intn(len(model))
	if !l.RemoveAt(idx) {
		return nil, errors.Errorf("removing at valid index %d rejected", idx)
	}
	return slices.Delete(model, idx, idx+1), nil
}

func opRemoveAll(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	v := r.Intn(valueRange)
	expected := 0
	kept := model[:0]
	for _, m := range model {
		if m == v {
			expected++
			continue
		}
		kept = append(kept, m)
	}
	if n := l.RemoveAll(v); n != expected {
		return nil, errors.Errorf("removed %d occurrences of %d, expected %d", n, v, expected)
	}
	return kept, nil
}

func opReplaceAll(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	old := r.Intn(valueRange)
	v := r.Intn(valueRange)
	expected := 0
	for i, m := range model {
		if m == old {
			model[i] = v
			expected++
		}
	}
	if n := l.ReplaceAll(old, v); n != expected {
		return nil, errors.Errorf("replaced %d occurrences of %d, expected %d", n, old, expected)
	}
	return model, nil
}

func opTakeFirst(_ *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	if len(model) == 0 {
		return model, nil
	}
	if v := l.TakeFirst(); v != model[0] {
		return nil, errors.Errorf("took %d, expected %d", v, model[0])
	}
	return model[1:], nil
}

func opTakeLast(_ *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	if len(model) == 0 {
		return model, nil
	}
	last := model[len(model)-1]
	if v := l.TakeLast(); v != last {
		return nil, errors.Errorf("took %d, expected %d", v, last)
	}
	return model[:len(model)-1], nil
}

func opIndexOf(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	v := r.Intn(valueRange)
	if idx, expected := l.IndexOf(v), slices.Index(model, v); idx != expected {
		return nil, errors.Errorf("first index of %d is %d, expected %d", v, idx, expected)
	}

	expected := -1
	for i := len(model) - 1; i >= 0; i-- {
		if model[i] == v {
			expected = i
			break
		}
	}
	if idx := l.LastIndexOf(v); idx != expected {
		return nil, errors.Errorf("last index of %d is %d, expected %d", v, idx, expected)
	}
	return model, nil
}

func opShrink(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	size := r.Intn(len(model) + 1)
	capacity := l.Cap()
	l.Resize(size)
	if l.Cap() != capacity {
		return nil, errors.Errorf("shrinking changed capacity from %d to %d", capacity, l.Cap())
	}
	return model[:size], nil
}

func opReserve(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	capacity := l.Cap() + r.Intn(8)
	l.Reserve(capacity)
	if l.Cap() < capacity {
		return nil, errors.Errorf("capacity %d below reserved %d", l.Cap(), capacity)
	}
	return model, nil
}

func opCompact(_ *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	l.Compact()
	if l.Cap() != l.Len() {
		return nil, errors.Errorf("capacity %d differs from length %d after compaction", l.Cap(), l.Len())
	}
	return model, nil
}

func opClone(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	c := l.Clone()
	if !c.Equal(l) {
		return nil, errors.New("clone differs from source")
	}
	c.Append(r.Intn(valueRange))
	c.Set(0, valueRange)
	if l.Len() != len(model) || (len(model) > 0 && l.Get(0) != model[0]) {
		return nil, errors.New("mutating clone changed source")
	}
	return model, nil
}

func opConcat(_ *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	c := l.Concat(l)
	expected := append(slices.Clone(model), model...)
	if !slices.Equal(c.Slice(), expected) {
		return nil, errors.Errorf("concatenation %v, expected %v", c.Slice(), expected)
	}
	return model, nil
}

func opSort(_ *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	l.Sort(cmp.Compare[int])
	slices.Sort(model)
	return model, nil
}

func opSwap(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	values := randomValues(r, 12)
	mode := blocklist.Copy
	if r.Intn(2) == 0 {
		mode = blocklist.NoCopy
	}
	other := blocklist.FromSlice(values, mode)
	capacity := l.Cap()

	l.Swap(other)
	if !slices.Equal(other.Slice(), model) {
		return nil, errors.Errorf("swapped out %v, expected %v", other.Slice(), model)
	}
	if other.Cap() != capacity {
		return nil, errors.Errorf("swapped out capacity %d, expected %d", other.Cap(), capacity)
	}
	return slices.Clone(values), nil
}

func opFill(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	v := r.Intn(valueRange)
	size := r.Intn(len(model)+5) - 1
	l.Fill(v, size)
	if size < 0 {
		size = len(model)
	}
	model = model[:0]
	for i := 0; i < size; i++ {
		model = append(model, v)
	}
	return model, nil
}

func opRemove(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	v := r.Intn(valueRange)
	idx := slices.Index(model, v)
	if removed := l.Remove(v); removed != (idx != -1) {
		return nil, errors.Errorf("removing %d returned %t", v, removed)
	}
	if idx == -1 {
		return model, nil
	}
	return slices.Delete(model, idx, idx+1), nil
}

func opReplace(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	old := r.Intn(valueRange)
	v := r.Intn(valueRange)
	idx := slices.Index(model, old)
	if replaced := l.Replace(old, v); replaced != (idx != -1) {
		return nil, errors.Errorf("replacing %d returned %t", old, replaced)
	}
	if idx != -1 {
		model[idx] = v
	}
	return model, nil
}

func opReplaceAt(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	idx := r.Intn(len(model)+2) - 1
	v := r.Intn(valueRange)
	valid := idx >= 0 && idx < len(model)
	if replaced := l.ReplaceAt(idx, v); replaced != valid {
		return nil, errors.Errorf("replacing at %d returned %t", idx, replaced)
	}
	if valid {
		model[idx] = v
	}
	return model, nil
}

func opAppendList(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	if r.Intn(4) == 0 {
		l.AppendList(l)
		return append(model, model...), nil
	}
	values := randomValues(r, 8)
	l.AppendList(blocklist.FromSlice(values, blocklist.NoCopy))
	return append(model, values...), nil
}

func opReservePrepend(r *rand.Rand, l *blocklist.List[int], model []int) ([]int, error) {
	n := r.Intn(8)
	requested := l.Len() + n
	l.Reserve(requested)
	if l.Cap() < requested {
		return nil, errors.Errorf("reserved capacity %d, expected at least %d", l.Cap(), requested)
	}
	for i := 0; i < n; i++ {
		v := r.Intn(valueRange)
		l.Prepend(v)
		model = slices.Insert(model, 0, v)
	}
	return model, nil
}
