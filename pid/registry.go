package pid

import "errors"

// ErrUnknownLund indicates a lund id has no entry in the block registry's
// lund→block mapping.
var ErrUnknownLund = errors.New("pid: lund id not mapped to any block")

// BlockDescriptor is a single row of the block registry (§6 Block registry).
type BlockDescriptor struct {
	// Name is the block's canonical name ("y", "b", "d", "c", "h", "l", "gamma").
	Name string

	// Capacity is the fixed declared capacity for the block.
	Capacity int

	// DMax is the number of daughter slots carried per candidate in this block.
	DMax int

	// Lunds lists every lund id (signed) routed to this block.
	Lunds []int64
}

// BlockNames is the declared block order, matching the upstream producer.
var BlockNames = []string{"y", "b", "d", "c", "h", "l", "gamma"}

// Blocks is the reference block registry (§6), in BlockNames order.
var Blocks = []BlockDescriptor{
	{Name: "y", Capacity: 800, DMax: 2, Lunds: []int64{70553, -70553}},
	{Name: "b", Capacity: 400, DMax: 4, Lunds: []int64{521, -521, 511, -511}},
	{Name: "d", Capacity: 200, DMax: 5, Lunds: []int64{413, -413, 423, -423, 421, -421, 411, -411}},
	{Name: "c", Capacity: 100, DMax: 2, Lunds: []int64{310, 213, -213, 111}},
	{Name: "h", Capacity: 100, DMax: 2, Lunds: []int64{321, -321, 211, -211}},
	{Name: "l", Capacity: 100, DMax: 3, Lunds: []int64{11, -11, 13, -13}},
	{Name: "gamma", Capacity: 100, DMax: 0, Lunds: []int64{22}},
}

// lund2block is built once at init time from Blocks; it is immutable
// afterward and safe to read concurrently without locking.
var lund2block = buildLundIndex(Blocks)

func buildLundIndex(blocks []BlockDescriptor) map[int64]string {
	idx := make(map[int64]string)
	for _, b := range blocks {
		for _, l := range b.Lunds {
			idx[l] = b.Name
		}
	}

	return idx
}

// BlockFor resolves the block a given lund id is routed to.
// Returns ErrUnknownLund if lund is not present in the registry.
func BlockFor(lund int64) (string, error) {
	name, ok := lund2block[lund]
	if !ok {
		return "", ErrUnknownLund
	}

	return name, nil
}

// Capacities returns the declared capacities in BlockNames order, suitable
// for blockindex.New(pid.BlockNames, pid.Capacities()).
func Capacities() []int {
	caps := make([]int, len(Blocks))
	for i, b := range Blocks {
		caps[i] = b.Capacity
	}

	return caps
}

// DMax returns the declared daughter-slot width for a block name, or -1 if
// the block name is unknown.
func DMax(name string) int {
	for _, b := range Blocks {
		if b.Name == name {
			return b.DMax
		}
	}

	return -1
}
