package capability

import (
	"slices"

	"tuple-generator/internal/arity"
)

var (
	importFmt     = Import{Path: "fmt"}
	importCmp     = Import{Path: "cmp"}
	importHash    = Import{Path: "hash"}
	importNested  = Import{Path: "nested", Runtime: true}
	importOption  = Import{Path: "option", Runtime: true}
	importHashing = Import{Path: "hashing", Runtime: true}
)

var (
	// upToPrev spans 0..max-1, for capabilities whose output has one more
	// element than their input.
	upToPrev = arity.Range{Hi: -1}
	// nonEmpty spans 1..max.
	nonEmpty = arity.Range{Lo: 1}
)

var tupleOnly = []Kind{KindTuple}

// catalog lists every capability in generation order.
var catalog = []*Descriptor{
	newDescriptor(KindTuple, "flat tuple types and constructors",
		arity.Full, arity.NoIndex, tupleTmpl, nil),
	newDescriptor(KindLen, "Len method",
		arity.Full, arity.NoIndex, lenTmpl, tupleOnly),
	newDescriptor(KindValues, "Values method returning the elements as []any",
		arity.Full, arity.NoIndex, valuesTmpl, tupleOnly),
	newDescriptor(KindDebug, "String method",
		arity.Full, arity.NoIndex, debugTmpl, tupleOnly, importFmt),
	newDescriptor(KindEq, "EqualN for comparable elements",
		arity.Full, arity.NoIndex, eqTmpl, tupleOnly),
	newDescriptor(KindOrd, "CompareN and LessN for ordered elements",
		arity.Full, arity.NoIndex, ordTmpl, tupleOnly, importCmp),
	newDescriptor(KindHash, "HashN and SumN over a 64-bit digest",
		arity.Full, arity.NoIndex, hashTmpl, tupleOnly, importHash, importHashing),
	newDescriptor(KindClone, "CloneN for elements implementing Clone",
		arity.Full, arity.NoIndex, cloneTmpl, tupleOnly, importNested),
	newDescriptor(KindIndex, "GetK and PtrK element accessors",
		arity.Full, arity.Exclusive, indexTmpl, tupleOnly),
	newDescriptor(KindPushFront, "PushFrontN prepending an element",
		upToPrev, arity.NoIndex, pushFrontTmpl, tupleOnly),
	newDescriptor(KindPushBack, "PushBackN appending an element",
		upToPrev, arity.NoIndex, pushBackTmpl, tupleOnly),
	newDescriptor(KindPopFront, "PopFront method",
		nonEmpty, arity.NoIndex, popFrontTmpl, tupleOnly),
	newDescriptor(KindPopBack, "PopBack method",
		nonEmpty, arity.NoIndex, popBackTmpl, tupleOnly),
	newDescriptor(KindRemove, "RemoveK methods",
		nonEmpty, arity.Exclusive, removeTmpl, tupleOnly),
	newDescriptor(KindInsert, "InsertNAtK inserting an element",
		upToPrev, arity.Inclusive, insertTmpl, tupleOnly),
	newDescriptor(KindSplit, "SplitK methods",
		arity.Full, arity.Inclusive, splitTmpl, tupleOnly),
	newDescriptor(KindReverse, "Reverse method",
		arity.Full, arity.NoIndex, reverseTmpl, tupleOnly),
	newDescriptor(KindReplicate, "ReplicateN filling every slot from one value",
		arity.Full, arity.NoIndex, replicateTmpl, tupleOnly, importNested),
	newDescriptor(KindNest, "NestedN aliases, Nest method and FlattenN",
		arity.Full, arity.NoIndex, nestTmpl, []Kind{KindTuple, KindPushFront}, importNested),
	newDescriptor(KindOption, "TransposeN and IntoOptionsN",
		arity.Full, arity.NoIndex, optionTmpl, tupleOnly, importOption),
	newDescriptor(KindMap, "MapN and TryMapN element-wise conversion",
		arity.Full, arity.NoIndex, mapTmpl, tupleOnly, importNested),
	newDescriptor(KindRow, "RowNAtK collecting one element of every row",
		nonEmpty, arity.Bounded, rowTmpl, []Kind{KindTuple, KindIndex}),
	newDescriptor(KindRowPtr, "RowPtrNAtK pointing at one element of every row",
		nonEmpty, arity.Bounded, rowPtrTmpl, []Kind{KindTuple, KindIndex}),
	newDescriptor(KindRefs, "PtrsN returning element pointers",
		arity.Full, arity.NoIndex, refsTmpl, tupleOnly),
}

// All returns every capability in catalog order.
func All() []*Descriptor {
	return slices.Clone(catalog)
}

// Names returns the names of every capability in catalog order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, d := range catalog {
		out[i] = d.Name
	}

	return out
}

// Lookup finds a capability by name.
func Lookup(name string) (*Descriptor, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return d, true
		}
	}

	return nil, false
}

// ByKind returns the descriptor of k. It panics on an unknown kind.
func ByKind(k Kind) *Descriptor {
	return catalog[k-1]
}
