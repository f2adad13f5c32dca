package bst

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/arbitrary"
	"github.com/leanovate/gopter/gen"
	"github.com/npillmayer/bstree/maybe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultGopterParameters = gopter.DefaultTestParameters()

// uintArbitraries produces keys from a small range, so that generated key
// sequences contain duplicates and removals hit present keys.
func uintArbitraries() *arbitrary.Arbitraries {
	arbitraries := arbitrary.DefaultArbitraries()
	arbitraries.RegisterGen(gen.UIntRange(0, 500))
	return arbitraries
}

// buildTree inserts keys in sequence, associating each key with its position.
// It returns the tree together with the value expected for each key, which is
// the position of a key's first occurrence.
func buildTree(keys []uint) (Tree[uint, string], map[uint]string) {
	tree := Empty[uint, string]()
	expected := make(map[uint]string, len(keys))
	for i, k := range keys {
		v := strconv.Itoa(i)
		tree = tree.Insert(k, v)
		if _, ok := expected[k]; !ok {
			expected[k] = v
		}
	}
	return tree, expected
}

func TestPropertyOrderInvariant(t *testing.T) {
	t.Parallel()
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := uintArbitraries()

	properties.Property("every node separates smaller from greater keys",
		arbitraries.ForAll(
			func(inserts []uint, removes []uint) bool {
				tree, _ := buildTree(inserts)
				if !isOrdered(tree.order, tree.root, nil, nil) {
					return false
				}
				for _, k := range removes {
					tree = tree.Remove(k)
					if !isOrdered(tree.order, tree.root, nil, nil) {
						return false
					}
				}
				return true
			}))
	properties.TestingRun(t)
}

func TestPropertyGetEveryInsert(t *testing.T) {
	t.Parallel()
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := uintArbitraries()

	properties.Property("get every insert, first value wins",
		arbitraries.ForAll(
			func(keys []uint) bool {
				tree, expected := buildTree(keys)
				for k, v := range expected {
					if !assert.Equal(t, maybe.Just(v), tree.Get(k), "key %d", k) {
						return false
					}
				}
				return FoldL(tree, countEntries[uint, string], 0) == len(expected)
			}))
	properties.TestingRun(t)
}

func TestPropertyRemoveThenGet(t *testing.T) {
	t.Parallel()
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := uintArbitraries()

	properties.Property("removed keys are gone, others and the original stay",
		arbitraries.ForAll(
			func(keys []uint, k uint) bool {
				tree, expected := buildTree(keys)
				removed := tree.Remove(k)
				if removed.Get(k).IsJust() {
					return false
				}
				for key, v := range expected {
					if key != k && removed.Get(key).WithDefault("") != v {
						return false
					}
					if tree.Get(key).WithDefault("") != v {
						return false // original incarnation must not change
					}
				}
				return true
			}))
	properties.TestingRun(t)
}

func TestPropertyRemoveAbsentKey(t *testing.T) {
	t.Parallel()
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := uintArbitraries()

	properties.Property("removing an absent key returns the tree unchanged",
		arbitraries.ForAll(
			func(keys []uint, k uint) bool {
				tree, expected := buildTree(keys)
				if _, present := expected[k]; present {
					tree = tree.Remove(k)
				}
				return tree.Remove(k).root == tree.root
			}))
	properties.TestingRun(t)
}

func TestPropertyFoldOrdering(t *testing.T) {
	t.Parallel()
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := uintArbitraries()

	collectKeys := func(k uint, _ string, acc []uint) []uint {
		return append(acc, k)
	}
	properties.Property("left folds ascend, right folds descend",
		arbitraries.ForAll(
			func(keys []uint) bool {
				tree, _ := buildTree(keys)
				asc := FoldL(tree, collectKeys, nil)
				desc := FoldR(tree, collectKeys, nil)
				if len(asc) != len(desc) {
					return false
				}
				for i := 1; i < len(asc); i++ {
					if asc[i-1] >= asc[i] || desc[i-1] <= desc[i] {
						return false
					}
				}
				for i := range asc {
					if asc[i] != desc[len(desc)-1-i] {
						return false
					}
				}
				return true
			}))
	properties.TestingRun(t)
}

func TestPropertyMapTransformsValuesOnly(t *testing.T) {
	t.Parallel()
	properties := gopter.NewProperties(defaultGopterParameters)
	arbitraries := uintArbitraries()

	f := func(k uint, v string) string {
		return strconv.FormatUint(uint64(k), 10) + ":" + v
	}
	properties.Property("map keeps keys and shape",
		arbitraries.ForAll(
			func(keys []uint, probes []uint) bool {
				tree, _ := buildTree(keys)
				mapped := Map(tree, f)
				if shape(mapped.root) != shape(tree.root) {
					return false
				}
				for _, k := range append(keys, probes...) {
					want := maybe.Map(func(v string) string {
						return f(k, v)
					}, tree.Get(k))
					if !assert.Equal(t, want, mapped.Get(k)) {
						return false
					}
				}
				return true
			}))
	properties.TestingRun(t)
}

func TestRoundTripInAnyOrder(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(4711))
	keys := make([]int, 200)
	for i := range keys {
		keys[i] = i * 3
	}
	for round := 0; round < 20; round++ {
		rnd.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
		tree := Empty[int, string]()
		for _, k := range keys {
			tree = tree.Insert(k, strconv.Itoa(k))
		}
		require.True(t, isOrdered(tree.order, tree.root, nil, nil), "round %d", round)
		for _, k := range keys {
			require.Equal(t, maybe.Just(strconv.Itoa(k)), tree.Get(k), "round %d", round)
			require.True(t, tree.Get(k+1).IsNothing(), "round %d", round)
		}
		for _, k := range keys[:100] {
			tree = tree.Remove(k)
		}
		for i, k := range keys {
			require.Equal(t, i >= 100, tree.Get(k).IsJust(), "round %d key %d", round, k)
		}
	}
}
