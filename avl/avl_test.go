// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/wordtree/avl"
)

// stop on the first broken invariant and show the tree
func checkTree[K, V any](t *testing.T, tree *avl.Tree[K, V], when string) {
	t.Helper()
	if err := tree.Check(); nil != err {
		var b bytes.Buffer
		depth := tree.Print(&b, true)
		t.Logf("depth: %d\n%s", depth, b.String())
		t.Fatalf("%s: inconsistent tree: %s", when, err)
	}
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// lots of duplicates must count every item but not add structure
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"1720", "0506", "8382", "6774", "1042",
	}
	for i := 0; i < 40; i += 1 {
		addList = append(addList, "1042")
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func TestListLong(t *testing.T) {
	r := rand.New(rand.NewSource(8133))
	addList := make([]string, 0, 240)
	for i := 0; i < cap(addList); i += 1 {
		addList = append(addList, fmt.Sprintf("%04d", r.Intn(10000)))
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// for each split point delete the head of the list then the rest,
// checking the tree after every step
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		tree := avl.NewOrdered[string, string]()
		for _, key := range addList {
			err := tree.Insert(key, "data:"+key)
			require.NoError(t, err, "insert")
		}
		checkTree(t, tree, "add")
		require.Equal(t, len(addList), tree.Count(), "count after add")

		for _, key := range addList[:i] {
			if !tree.Delete(key) {
				t.Fatalf("delete: %q not found", key)
			}
			checkTree(t, tree, "delete")
		}

		for _, key := range addList[i:] {
			if !tree.Delete(key) {
				t.Fatalf("delete remainder: %q not found", key)
			}
		}
		checkTree(t, tree, "remainder")
		if !tree.IsEmpty() || 0 != tree.Count() {
			t.Fatalf("remaining items: %d", tree.Count())
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []string) {

	tree := avl.NewOrdered[string, string]()
	for _, key := range addList {
		_ = tree.Insert(key, "data:"+key)
	}

	expected := append([]string(nil), addList...)
	sort.Strings(expected)

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}
	n := 0
	for i := 0; nil != p; i += 1 {
		if p.Key() != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}
	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if p.Key() != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// recursive walk gives the same sequence
	walked := make([]string, 0, len(expected))
	tree.InOrder(func(p *avl.Node[string, string]) bool {
		walked = append(walked, p.Key())
		return true
	})
	assert.Equal(t, expected, walked, "in order walk")

	// delete remainder
	for _, key := range expected {
		tree.Delete(key)
	}
	if !tree.IsEmpty() {
		t.Fatalf("remaining nodes: %d", tree.Count())
	}
}

// use indexing to fetch each distinct key
func doGet(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := avl.NewOrdered[string, string]()
	for _, key := range addList {
		unique[key] = struct{}{}
		_ = tree.Insert(key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Distinct() {
		t.Fatalf("expected: %d keys, but tree distinct: %d", len(expected), tree.Distinct())
	}

	for index, key := range expected {
		node := tree.Get(index)
		if nil == node {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		if node.Key() != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Key())
		}
		node1, index1 := tree.Search(key)
		if node1 != node {
			t.Fatalf("[%d]: search: %q returned: %v", index, key, node1)
		}
		if index != index1 {
			t.Errorf("[%d]: search: %q index: %d expected: %d", index, key, index1, index)
		}
	}

	// delete even keys with all their duplicates
	for index, key := range expected {
		if 0 == index%2 {
			for tree.Delete(key) {
			}
		}
	}
	checkTree(t, tree, "even delete")

odd_scan:
	for index, key := range expected {
		if 0 == index%2 {
			continue odd_scan
		}
		index >>= 1 // 1,3,5, … → 0,1,2, …
		node := tree.Get(index)
		if nil == node {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		if node.Key() != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Key())
		}
	}
	assert.Nil(t, tree.Get(-1), "negative index")
	assert.Nil(t, tree.Get(tree.Distinct()), "index past end")
}

func TestRandomTree(t *testing.T) {
	r := rand.New(rand.NewSource(1042))

	randomTree(t, r, 2200, 2000)
	randomTree(t, r, 3400, 2760)
	randomTree(t, r, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, r, 2100, 2000)
	}
}

func randomTree(t *testing.T, r *rand.Rand, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.NewOrdered[string, string]()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := fmt.Sprintf("%04d", r.Intn(10000))
		if i < len(d) {
			d[i] = key
		}
		_ = tree.Insert(key, "data:"+key)
	}
	checkTree(t, tree, "random add")

	r.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
	for _, key := range d {
		if !tree.Delete(key) {
			t.Fatalf("delete: %q not found", key)
		}
		checkTree(t, tree, "random delete")
	}
	assert.Equal(t, total-toDelete, tree.Count(), "count after delete")

	// add back the test value
	testKey := "500"
	const testValue = "just testing data: test 500 value"
	_ = tree.Insert(testKey, testValue)
	checkTree(t, tree, "test add")

	tv, _ := tree.Search(testKey)
	if nil == tv {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testValue != tv.Value() {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.Value(), testValue)
	}

	// "500" sorts between the 4 digit keys so both neighbours exist
	if nil == tv.Next() || nil == tv.Prev() {
		t.Fatal("could not find neighbours")
	}

	if !tree.Delete(testKey) {
		t.Fatal("test key not deleted")
	}
	tv, index := tree.Search(testKey)
	if nil != tv || -1 != index {
		t.Fatalf("test key not deleted and contains: %q", tv.Value())
	}
}

// the worked example: seven keys, then delete the root which has two
// children
func TestSmallIntegerTree(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	for _, k := range []int{30, 20, 40, 10, 25, 50, 5} {
		require.NoError(t, tree.Insert(k, k*100))
	}
	checkTree(t, tree, "add")

	assert.Equal(t, 5, tree.Minimum().Key(), "minimum")
	assert.Equal(t, 50, tree.Maximum().Key(), "maximum")
	assert.Equal(t, 5, tree.First().Key(), "first")
	assert.Equal(t, 50, tree.Last().Key(), "last")

	// deepest node is three links below the root
	assert.LessOrEqual(t, tree.Height()-1, 3, "height")
	n, _ := tree.Search(5)
	assert.Equal(t, uint(3), n.Depth(), "depth of 5")

	keys := []int{}
	tree.Walk(func(p *avl.Node[int, int]) bool {
		keys = append(keys, p.Key())
		return true
	})
	assert.Equal(t, []int{5, 10, 20, 25, 30, 40, 50}, keys, "in order")

	require.True(t, tree.Delete(30), "delete root")
	checkTree(t, tree, "delete root")

	// 40 replaced 30, the left side was then too tall and a right
	// rotation lifted 20
	root := tree.Root()
	assert.Equal(t, 20, root.Key(), "root after rebalance")
	assert.Equal(t, 40, root.Right().Key(), "successor position")

	node, index := tree.Search(30)
	assert.Nil(t, node, "deleted key found")
	assert.Equal(t, -1, index, "deleted key index")
	assert.Equal(t, 6, tree.Count(), "count")
}

// the successor of a two child node comes from deeper in the right
// sub-tree and no rotation is needed afterwards
func TestDeleteSplitSuccessor(t *testing.T) {
	tree := avl.NewOrdered[int, string]()
	for _, k := range []int{30, 20, 40, 10, 25, 35, 50} {
		_ = tree.Insert(k, "")
	}
	n35, _ := tree.Search(35)

	require.True(t, tree.Delete(30))
	checkTree(t, tree, "delete")

	root := tree.Root()
	assert.Equal(t, n35, root, "successor node moved into the root")
	assert.Nil(t, root.Parent(), "root parent")
	assert.Equal(t, 20, root.Left().Key(), "left")
	assert.Equal(t, 40, root.Right().Key(), "right")
	assert.Nil(t, root.Right().Left(), "old successor slot cleared")
	assert.Equal(t, 3, tree.Height(), "height")
}

func TestDuplicates(t *testing.T) {
	tree := avl.NewOrdered[string, int]()
	for i, k := range []string{"m", "f", "t", "b", "h"} {
		_ = tree.Insert(k, i)
	}
	root := tree.Root()
	height := tree.Height()
	distinct := tree.Distinct()

	require.NoError(t, tree.Insert("h", 100))
	require.NoError(t, tree.Insert("h", 101))
	checkTree(t, tree, "duplicates")

	assert.Equal(t, 7, tree.Count(), "count")
	assert.Equal(t, distinct, tree.Distinct(), "distinct")
	assert.Equal(t, height, tree.Height(), "height")
	assert.Equal(t, root, tree.Root(), "root")

	head, _ := tree.Search("h")
	require.NotNil(t, head)
	assert.True(t, head.IsHead(), "head")
	assert.Equal(t, 4, head.Value(), "first inserted value is the head")
	assert.Equal(t, 3, head.ChainLength(), "chain length")
	assert.Equal(t, 101, head.Tail().Value(), "tail value")
	assert.False(t, head.Tail().IsHead(), "duplicate is not a head")

	// insertion order is kept inside the chain
	values := []int{}
	for p := head; p != head.Tail().Next(); p = p.Next() {
		values = append(values, p.Value())
	}
	assert.Equal(t, []int{4, 100, 101}, values, "chain order")
	assert.Equal(t, "m", head.Tail().Next().Key(), "chain followed by next key")

	// deleting a duplicate removes the newest one and leaves the
	// structure alone
	require.True(t, tree.Delete("h"))
	checkTree(t, tree, "delete duplicate")
	assert.Equal(t, 6, tree.Count(), "count")
	assert.Equal(t, root, tree.Root(), "root")
	assert.Equal(t, height, tree.Height(), "height")
	assert.Equal(t, 100, head.Tail().Value(), "new tail")

	require.True(t, tree.Delete("h"))
	require.True(t, tree.Delete("h"))
	assert.False(t, tree.Delete("h"), "all h removed")
	checkTree(t, tree, "delete all")
	assert.Equal(t, 4, tree.Count(), "count")
}

func TestDeleteAbsent(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	for _, k := range []int{8, 4, 12, 2, 6, 4} {
		_ = tree.Insert(k, k)
	}
	var before bytes.Buffer
	tree.Print(&before, true)

	assert.False(t, tree.Delete(7), "absent key")
	assert.False(t, tree.Delete(100), "absent key")

	var after bytes.Buffer
	tree.Print(&after, true)
	assert.Equal(t, before.String(), after.String(), "structure changed")
	assert.Equal(t, 6, tree.Count(), "count")
	checkTree(t, tree, "absent delete")

	empty := avl.NewOrdered[int, int]()
	assert.False(t, empty.Delete(1), "delete from empty tree")
	assert.True(t, empty.IsEmpty(), "empty")
}

// any insert order and any delete order must leave an empty tree
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4201))
	for round := 0; round < 20; round += 1 {
		tree := avl.NewOrdered[int, int]()
		keys := make([]int, 300)
		for i := range keys {
			keys[i] = r.Intn(150)
			_ = tree.Insert(keys[i], i)
		}
		checkTree(t, tree, "round trip add")

		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for i, k := range keys {
			require.True(t, tree.Delete(k), "delete: %d", k)
			if 0 == i%17 {
				checkTree(t, tree, "round trip delete")
			}
		}
		assert.True(t, tree.IsEmpty(), "empty")
		assert.Equal(t, 0, tree.Count(), "count")
		assert.Nil(t, tree.First(), "first")
		assert.Nil(t, tree.Last(), "last")
	}
}

// ascending inserts must still give a logarithmic height
func TestBalanceSequential(t *testing.T) {
	tree := avl.NewOrdered[int, struct{}]()
	for i := 0; i < 1023; i += 1 {
		_ = tree.Insert(i, struct{}{})
	}
	checkTree(t, tree, "sequential")
	assert.Equal(t, 10, tree.Height(), "perfect tree height")

	for i := 1022; i >= 0; i -= 2 {
		tree.Delete(i)
	}
	checkTree(t, tree, "sequential delete")
	assert.Equal(t, 511, tree.Count(), "count")
}

func TestSuccessorAndPredecessor(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80, 40, 40, 65} {
		_ = tree.Insert(k, k)
	}

	heads := []int{}
	for p := tree.Minimum(); nil != p; p = p.Successor() {
		heads = append(heads, p.Key())
	}
	assert.Equal(t, []int{20, 30, 40, 50, 60, 65, 70, 80}, heads, "successors")

	heads = heads[:0]
	for p := tree.Maximum(); nil != p; p = p.Predecessor() {
		heads = append(heads, p.Key())
	}
	assert.Equal(t, []int{80, 70, 65, 60, 50, 40, 30, 20}, heads, "predecessors")

	reverse := []int{}
	tree.WalkReverse(func(p *avl.Node[int, int]) bool {
		reverse = append(reverse, p.Key())
		return len(reverse) < 6
	})
	assert.Equal(t, []int{80, 70, 65, 60, 50, 40}, reverse, "early stop")
}

func TestCeilingAndFloor(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	assert.Nil(t, tree.Ceiling(1), "empty ceiling")
	assert.Nil(t, tree.Floor(1), "empty floor")

	for _, k := range []int{10, 20, 30, 40, 50} {
		_ = tree.Insert(k, k)
	}
	items := []struct {
		key     int
		ceiling interface{}
		floor   interface{}
	}{
		{5, 10, nil},
		{10, 10, 10},
		{11, 20, 10},
		{35, 40, 30},
		{50, 50, 50},
		{55, nil, 50},
	}
	for _, item := range items {
		c := tree.Ceiling(item.key)
		if nil == item.ceiling {
			assert.Nil(t, c, "ceiling of %d", item.key)
		} else if assert.NotNil(t, c, "ceiling of %d", item.key) {
			assert.Equal(t, item.ceiling, c.Key(), "ceiling of %d", item.key)
		}
		f := tree.Floor(item.key)
		if nil == item.floor {
			assert.Nil(t, f, "floor of %d", item.key)
		} else if assert.NotNil(t, f, "floor of %d", item.key) {
			assert.Equal(t, item.floor, f.Key(), "floor of %d", item.key)
		}
	}
}

// nodes keep a constant address when the tree is re-balanced
func TestNodeStability(t *testing.T) {
	tree := avl.NewOrdered[string, string]()
	for i := 1; i <= 10; i += 1 {
		key := fmt.Sprintf("%02d", i)
		_ = tree.Insert(key, "data:"+key)
	}

	node1, index1 := tree.Search("05")
	assert.Equal(t, 4, index1, "index")

	// delete a node so the "05" node moves
	tree.Delete("06")
	tree.Delete("04")
	checkTree(t, tree, "delete")

	node2, index2 := tree.Search("05")
	assert.Equal(t, 3, index2, "index")
	if node1 != node2 {
		t.Fatalf("node moved from: %p → %p", node1, node2)
	}
	assert.Equal(t, "data:05", node2.Value(), "value")
}

func TestGetDepthInTree(t *testing.T) {
	tree := avl.NewOrdered[string, string]()
	for _, key := range []string{"01", "02", "03", "04", "05", "06", "07"} {
		_ = tree.Insert(key, "data:"+key)
	}

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}
	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	tree := avl.NewOrdered[string, string]()
	for _, key := range []string{"01", "02", "03", "04", "05", "06", "07"} {
		_ = tree.Insert(key, "data:"+key)
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}
	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}

func TestPrint(t *testing.T) {
	tree := avl.NewOrdered[string, int]()
	for i, key := range []string{"b", "a", "c", "c"} {
		_ = tree.Insert(key, i)
	}
	var b bytes.Buffer
	depth := tree.Print(&b, true)
	assert.Equal(t, 2, depth, "depth")
	assert.Contains(t, b.String(), "c → [2 3] ^b", "chain values")
	assert.Contains(t, b.String(), "|------+ b", "root line")

	b.Reset()
	assert.Equal(t, 0, avl.NewOrdered[string, int]().Print(&b, false), "empty depth")
	assert.Equal(t, "", b.String(), "empty output")
}

func TestAllocatorReuse(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	for i := 0; i < 10; i += 1 {
		_ = tree.Insert(i, i)
	}
	for i := 0; i < 4; i += 1 {
		tree.Delete(i)
	}
	total, free := tree.Allocated()
	assert.Equal(t, 10, total, "total")
	assert.Equal(t, 4, free, "free")

	for i := 20; i < 23; i += 1 {
		_ = tree.Insert(i, i)
	}
	total, free = tree.Allocated()
	assert.Equal(t, 10, total, "total after reuse")
	assert.Equal(t, 1, free, "free after reuse")
	checkTree(t, tree, "reuse")

	tree.Destroy()
	assert.True(t, tree.IsEmpty(), "destroyed")
	total, free = tree.Allocated()
	assert.Equal(t, 0, total+free, "pool after destroy")
}
