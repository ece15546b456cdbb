package capability

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies a capability. The line comments are the capability names
// used in configuration files and on the command line.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindTuple     // tuple
	KindLen       // len
	KindValues    // values
	KindDebug     // debug
	KindEq        // eq
	KindOrd       // ord
	KindHash      // hash
	KindClone     // clone
	KindIndex     // index
	KindPushFront // push-front
	KindPushBack  // push-back
	KindPopFront  // pop-front
	KindPopBack   // pop-back
	KindRemove    // remove
	KindInsert    // insert
	KindSplit     // split
	KindReverse   // reverse
	KindReplicate // replicate
	KindNest      // nest
	KindOption    // option
	KindMap       // map
	KindRow       // row
	KindRowPtr    // row-ptr
	KindRefs      // refs

	// KindTotal is the number of kinds, the invalid zero value included.
	KindTotal = int(iota)
)
