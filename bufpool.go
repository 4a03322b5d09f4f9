package wire

import "sync"

// maxPooledCap keeps one oversized message from pinning a large buffer in the pool.
const maxPooledCap = 64 * 1024

// byteBufPool reuses buffers for whole-message encoding.
// This reduces GC pressure by avoiding frequent allocations.
var byteBufPool = sync.Pool{
	New: func() any {
		// A 4KB default is chosen to avoid re-allocations for common packet sizes.
		return NewByteBuf(4096)
	},
}

// AcquireByteBuf returns an empty little-endian buffer from the pool.
func AcquireByteBuf() *ByteBuf {
	b := byteBufPool.Get().(*ByteBuf)
	b.Reset()
	b.order = Order
	return b
}

// ReleaseByteBuf returns b to the pool. b must not be used afterwards.
func ReleaseByteBuf(b *ByteBuf) {
	if b == nil || cap(b.data) > maxPooledCap {
		return
	}
	byteBufPool.Put(b)
}
