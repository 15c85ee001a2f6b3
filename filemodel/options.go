package filemodel

// Default limits. A single writable block holds DefaultMemoryBlockSize
// bytes; once the writable blocks of a model reach DefaultMaxMemoryUsed
// bytes in total, further edits are refused until the model is saved.
const (
	DefaultMemoryBlockSize uint64 = 4 * 1024
	DefaultMaxMemoryUsed   uint64 = 100 * 1024 * 1024
)

// Options are the construction parameters of a Model. New replaces a zero
// MemoryBlockSize or MaxMemoryUsed with its default but takes UndoEnabled as
// given; pass nil to New for the full defaults.
type Options struct {
	// UndoEnabled records every edit in the journal. Defaults to true.
	UndoEnabled bool

	// MemoryBlockSize is the capacity of a single writable block.
	MemoryBlockSize uint64

	// MaxMemoryUsed limits the bytes held in writable blocks. A single edit
	// larger than the limit is rejected outright; an edit is rejected with
	// ErrNeedSave when the bytes already held plus the edit's length exceed
	// the limit. The check counts the edit's length, not the whole blocks it
	// materialises, so the total held can end up above the limit.
	MaxMemoryUsed uint64
}

// DefaultOptions returns the options used when New is passed nil.
func DefaultOptions() Options {
	return Options{
		UndoEnabled:     true,
		MemoryBlockSize: DefaultMemoryBlockSize,
		MaxMemoryUsed:   DefaultMaxMemoryUsed,
	}
}

func (o *Options) sanitize() {
	if o.MemoryBlockSize == 0 {
		o.MemoryBlockSize = DefaultMemoryBlockSize
	}
	if o.MaxMemoryUsed == 0 {
		o.MaxMemoryUsed = DefaultMaxMemoryUsed
	}
}

// midBlock is the number of bytes of existing content copied in front of an
// edit when a mapped block is materialised, so that nearby edits land in the
// same writable block.
func (o *Options) midBlock() uint64 {
	return o.MemoryBlockSize / 2
}
