// Package atperf configuration constants
package atperf

// Cache sizes for different levels (in bytes)
const (
	// L1 data cache per core (Graviton3: 64KB)
	L1CacheSize = 64 * 1024

	// L2 cache per core (Graviton3: 1MB)
	L2CacheSize = 1024 * 1024

	// Last-level cache, shared (Graviton3: ~32MB)
	LLCacheSize = 32 * 1024 * 1024

	// Cache line size in bytes
	CacheLineSize = 64

	// Preferred buffer alignment for vectorized kernels. Misaligned
	// buffers still compute correctly, just slower.
	SIMDAlignment = 64
)

// Blocking parameters for the matrix multiply ladder
const (
	// DefaultTileSize is the nominal tile edge for the packed kernel.
	// Three 64x64 float32 tiles (A, B, C sub-blocks) occupy 48KB,
	// which fits in a 64KB L1d.
	DefaultTileSize = 64

	// TiledBlockSize is the tile edge for the unpacked tiled variants.
	// 128x128x4 = 64KB per tile: three tiles fit in L2 but not L1d.
	TiledBlockSize = 128

	// Micro-kernel register block shape. Four rows by four columns
	// matches one 128-bit vector per output row; the scalar fallback
	// is the same operation over a 1x1 block.
	microBlockRows = 4
	microBlockCols = 4
)
