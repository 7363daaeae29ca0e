package dicts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEquals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts")
	defer teardown()
	//
	d1, _ := NewFromPairs("a", 1, "b", 2)
	d2, _ := NewFromPairs("b", 2, "a", 1) // insertion order does not matter
	if !d1.Equals(d2, nil) {
		t.Errorf("Expected dicts with equal entries to be equal, are not")
	}
	d2.Set("b", 3)
	if d1.Equals(d2, nil) {
		t.Errorf("Expected dicts with differing values to be unequal, are not")
	}
	d2.Set("b", 2)
	d2.Set("c", 4) // size mismatch
	if d1.Equals(d2, nil) {
		t.Errorf("Expected dicts of different size to be unequal, are not")
	}
	if d1.Equals(nil, nil) {
		t.Errorf("Expected no dict to equal nil, yet one does")
	}
}

func TestEqualsStructural(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts")
	defer teardown()
	//
	d1 := New()
	d1.Set("s", []int{1, 2, 3})
	d2 := New()
	d2.Set("s", []int{1, 2, 3})
	if !d1.Equals(d2, StructEq) {
		t.Errorf("Expected structural equality for equal slices, got inequality")
	}
	d2.Set("s", []int{1, 2})
	if d1.Equals(d2, StructEq) {
		t.Errorf("Expected structural inequality for differing slices, got equality")
	}
}

func TestTranspose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts")
	defer teardown()
	//
	d, _ := NewFromPairs("a", 1, "b", 2)
	tr := d.Transpose()
	if tr.Len() != 2 {
		t.Errorf("Expected transposed dict to have 2 entries, has %d", tr.Len())
	}
	if v, ok := tr.Get(1); !ok || v != "a" { // key 1 canonicalizes to "1"
		t.Errorf("Expected transposed entry 1=a, got %v", v)
	}
	if v, ok := tr.Get("2"); !ok || v != "b" {
		t.Errorf("Expected transposed entry 2=b, got %v", v)
	}
}

// Transposing a dict with colliding values keeps exactly one of the
// colliding pairs. Which one survives is implementation dependent and not
// guaranteed to be stable; we only check that it is one of the candidates.
func TestTransposeCollision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts")
	defer teardown()
	//
	d, _ := NewFromPairs("a", 1, "b", 1)
	tr := d.Transpose()
	if tr.Len() != 1 {
		t.Errorf("Expected transposed dict to have 1 entry, has %d", tr.Len())
	}
	v, ok := tr.Get("1")
	if !ok || (v != "a" && v != "b") {
		t.Errorf("Expected transposed value to be one of a/b, got %v", v)
	}
}

func TestAsMapRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts")
	defer teardown()
	//
	d, _ := NewFromPairs("x", 1, "y", 2, "z", 3)
	m := d.AsMap()
	want := map[string]interface{}{"x": 1, "y": 2, "z": 3}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Unexpected map export: %s", diff)
	}
	if !FromMap(m).Equals(d, nil) {
		t.Errorf("Expected round-tripped dict to equal the original, does not")
	}
}

func TestAddAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts")
	defer teardown()
	//
	d := New()
	d.Set("a", 1)
	src, _ := NewFromPairs("b", 2, "c", 3)
	d.AddAll(src)
	if diff := cmp.Diff([]string{"a", "b", "c"}, d.Keys()); diff != "" {
		t.Errorf("Unexpected key order after AddAll: %s", diff)
	}
	d.AddAll(map[string]interface{}{"d": 4})
	if v, ok := d.Get("d"); !ok || v != 4 {
		t.Errorf("Expected AddAll from map to insert d=4, got %v", v)
	}
	d.AddAll(42) // unsupported source type: a no-op
	if d.Len() != 4 {
		t.Errorf("Expected unsupported source to be ignored, len is %d", d.Len())
	}
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts")
	defer teardown()
	//
	d, _ := NewFromPairs("a", 1, "b", 2)
	c := d.Clone()
	if !c.Equals(d, nil) {
		t.Errorf("Expected clone to equal the original, does not")
	}
	c.Set("c", 3) // independent storage
	if d.Has("c") {
		t.Errorf("Expected original to be unaffected by clone mutation, is not")
	}
	if diff := cmp.Diff([]string{"a", "b"}, d.Keys()); diff != "" {
		t.Errorf("Unexpected key order in original: %s", diff)
	}
}

func TestEach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts")
	defer teardown()
	//
	d, _ := NewFromPairs("a", 1, "b", 2, "c", 3)
	var keys []string
	sum := 0
	d.Each(func(value interface{}, key string, dict *Dict) {
		keys = append(keys, key)
		sum += value.(int)
		if dict != d {
			t.Errorf("Expected callback to receive the dict itself, did not")
		}
	})
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Errorf("Unexpected callback order: %s", diff)
	}
	if sum != 6 {
		t.Errorf("Expected value sum of 6, got %d", sum)
	}
}

func TestSortedKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts")
	defer teardown()
	//
	d, _ := NewFromPairs("c", 1, "a", 2, "b", 3)
	if diff := cmp.Diff([]string{"a", "b", "c"}, d.SortedKeys()); diff != "" {
		t.Errorf("Unexpected sorted keys: %s", diff)
	}
	if diff := cmp.Diff([]string{"c", "a", "b"}, d.Keys()); diff != "" {
		t.Errorf("Unexpected insertion order: %s", diff)
	}
}

func TestStringer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dicts")
	defer teardown()
	//
	d, _ := NewFromPairs("a", 1, "b", 2)
	if s := d.String(); s != "Dict{a=1, b=2}" {
		t.Errorf("Unexpected string representation: %s", s)
	}
}
