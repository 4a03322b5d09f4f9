package wire

// --- Single-byte accessors ---

func (b *ByteBuf) WriteUint8(v uint8) { put(b, v, LE) }
func (b *ByteBuf) WriteInt8(v int8)   { put(b, v, LE) }

func (b *ByteBuf) WriteBool(v bool) {
	if v {
		put(b, uint8(1), LE)
	} else {
		put(b, uint8(0), LE)
	}
}

func (b *ByteBuf) WriteUint8At(pos int, v uint8) error { return putAt(b, pos, v, LE) }
func (b *ByteBuf) WriteInt8At(pos int, v int8) error   { return putAt(b, pos, v, LE) }

func (b *ByteBuf) ReadUint8() (uint8, error) { return get[uint8](b, LE) }
func (b *ByteBuf) ReadInt8() (int8, error)   { return get[int8](b, LE) }

// ReadBool treats any non-zero byte as true.
func (b *ByteBuf) ReadBool() (bool, error) {
	v, err := get[uint8](b, LE)
	return v != 0, err
}

// --- Multi-byte accessors ---
//
// The unsuffixed forms use the buffer's declared byte order; the LE and BE
// forms ignore it. All of them go through the same conversion as Put and Get.

func (b *ByteBuf) WriteUint16(v uint16)   { put(b, v, b.ByteOrder()) }
func (b *ByteBuf) WriteUint16LE(v uint16) { put(b, v, LE) }
func (b *ByteBuf) WriteUint16BE(v uint16) { put(b, v, BE) }

func (b *ByteBuf) WriteUint16At(pos int, v uint16) error   { return putAt(b, pos, v, b.ByteOrder()) }
func (b *ByteBuf) WriteUint16LEAt(pos int, v uint16) error { return putAt(b, pos, v, LE) }
func (b *ByteBuf) WriteUint16BEAt(pos int, v uint16) error { return putAt(b, pos, v, BE) }

func (b *ByteBuf) ReadUint16() (uint16, error)   { return get[uint16](b, b.ByteOrder()) }
func (b *ByteBuf) ReadUint16LE() (uint16, error) { return get[uint16](b, LE) }
func (b *ByteBuf) ReadUint16BE() (uint16, error) { return get[uint16](b, BE) }

func (b *ByteBuf) WriteUint32(v uint32)   { put(b, v, b.ByteOrder()) }
func (b *ByteBuf) WriteUint32LE(v uint32) { put(b, v, LE) }
func (b *ByteBuf) WriteUint32BE(v uint32) { put(b, v, BE) }

func (b *ByteBuf) WriteUint32At(pos int, v uint32) error   { return putAt(b, pos, v, b.ByteOrder()) }
func (b *ByteBuf) WriteUint32LEAt(pos int, v uint32) error { return putAt(b, pos, v, LE) }
func (b *ByteBuf) WriteUint32BEAt(pos int, v uint32) error { return putAt(b, pos, v, BE) }

func (b *ByteBuf) ReadUint32() (uint32, error)   { return get[uint32](b, b.ByteOrder()) }
func (b *ByteBuf) ReadUint32LE() (uint32, error) { return get[uint32](b, LE) }
func (b *ByteBuf) ReadUint32BE() (uint32, error) { return get[uint32](b, BE) }

func (b *ByteBuf) WriteUint64(v uint64)   { put(b, v, b.ByteOrder()) }
func (b *ByteBuf) WriteUint64LE(v uint64) { put(b, v, LE) }
func (b *ByteBuf) WriteUint64BE(v uint64) { put(b, v, BE) }

func (b *ByteBuf) WriteUint64At(pos int, v uint64) error   { return putAt(b, pos, v, b.ByteOrder()) }
func (b *ByteBuf) WriteUint64LEAt(pos int, v uint64) error { return putAt(b, pos, v, LE) }
func (b *ByteBuf) WriteUint64BEAt(pos int, v uint64) error { return putAt(b, pos, v, BE) }

func (b *ByteBuf) ReadUint64() (uint64, error)   { return get[uint64](b, b.ByteOrder()) }
func (b *ByteBuf) ReadUint64LE() (uint64, error) { return get[uint64](b, LE) }
func (b *ByteBuf) ReadUint64BE() (uint64, error) { return get[uint64](b, BE) }

func (b *ByteBuf) WriteInt16(v int16)   { put(b, v, b.ByteOrder()) }
func (b *ByteBuf) WriteInt16LE(v int16) { put(b, v, LE) }
func (b *ByteBuf) WriteInt16BE(v int16) { put(b, v, BE) }

func (b *ByteBuf) WriteInt16At(pos int, v int16) error   { return putAt(b, pos, v, b.ByteOrder()) }
func (b *ByteBuf) WriteInt16LEAt(pos int, v int16) error { return putAt(b, pos, v, LE) }
func (b *ByteBuf) WriteInt16BEAt(pos int, v int16) error { return putAt(b, pos, v, BE) }

func (b *ByteBuf) ReadInt16() (int16, error)   { return get[int16](b, b.ByteOrder()) }
func (b *ByteBuf) ReadInt16LE() (int16, error) { return get[int16](b, LE) }
func (b *ByteBuf) ReadInt16BE() (int16, error) { return get[int16](b, BE) }

func (b *ByteBuf) WriteInt32(v int32)   { put(b, v, b.ByteOrder()) }
func (b *ByteBuf) WriteInt32LE(v int32) { put(b, v, LE) }
func (b *ByteBuf) WriteInt32BE(v int32) { put(b, v, BE) }

func (b *ByteBuf) WriteInt32At(pos int, v int32) error   { return putAt(b, pos, v, b.ByteOrder()) }
func (b *ByteBuf) WriteInt32LEAt(pos int, v int32) error { return putAt(b, pos, v, LE) }
func (b *ByteBuf) WriteInt32BEAt(pos int, v int32) error { return putAt(b, pos, v, BE) }

func (b *ByteBuf) ReadInt32() (int32, error)   { return get[int32](b, b.ByteOrder()) }
func (b *ByteBuf) ReadInt32LE() (int32, error) { return get[int32](b, LE) }
func (b *ByteBuf) ReadInt32BE() (int32, error) { return get[int32](b, BE) }

func (b *ByteBuf) WriteInt64(v int64)   { put(b, v, b.ByteOrder()) }
func (b *ByteBuf) WriteInt64LE(v int64) { put(b, v, LE) }
func (b *ByteBuf) WriteInt64BE(v int64) { put(b, v, BE) }

func (b *ByteBuf) WriteInt64At(pos int, v int64) error   { return putAt(b, pos, v, b.ByteOrder()) }
func (b *ByteBuf) WriteInt64LEAt(pos int, v int64) error { return putAt(b, pos, v, LE) }
func (b *ByteBuf) WriteInt64BEAt(pos int, v int64) error { return putAt(b, pos, v, BE) }

func (b *ByteBuf) ReadInt64() (int64, error)   { return get[int64](b, b.ByteOrder()) }
func (b *ByteBuf) ReadInt64LE() (int64, error) { return get[int64](b, LE) }
func (b *ByteBuf) ReadInt64BE() (int64, error) { return get[int64](b, BE) }

func (b *ByteBuf) WriteFloat32(v float32)   { put(b, v, b.ByteOrder()) }
func (b *ByteBuf) WriteFloat32LE(v float32) { put(b, v, LE) }
func (b *ByteBuf) WriteFloat32BE(v float32) { put(b, v, BE) }

func (b *ByteBuf) WriteFloat32At(pos int, v float32) error   { return putAt(b, pos, v, b.ByteOrder()) }
func (b *ByteBuf) WriteFloat32LEAt(pos int, v float32) error { return putAt(b, pos, v, LE) }
func (b *ByteBuf) WriteFloat32BEAt(pos int, v float32) error { return putAt(b, pos, v, BE) }

func (b *ByteBuf) ReadFloat32() (float32, error)   { return get[float32](b, b.ByteOrder()) }
func (b *ByteBuf) ReadFloat32LE() (float32, error) { return get[float32](b, LE) }
func (b *ByteBuf) ReadFloat32BE() (float32, error) { return get[float32](b, BE) }

func (b *ByteBuf) WriteFloat64(v float64)   { put(b, v, b.ByteOrder()) }
func (b *ByteBuf) WriteFloat64LE(v float64) { put(b, v, LE) }
func (b *ByteBuf) WriteFloat64BE(v float64) { put(b, v, BE) }

func (b *ByteBuf) WriteFloat64At(pos int, v float64) error   { return putAt(b, pos, v, b.ByteOrder()) }
func (b *ByteBuf) WriteFloat64LEAt(pos int, v float64) error { return putAt(b, pos, v, LE) }
func (b *ByteBuf) WriteFloat64BEAt(pos int, v float64) error { return putAt(b, pos, v, BE) }

func (b *ByteBuf) ReadFloat64() (float64, error)   { return get[float64](b, b.ByteOrder()) }
func (b *ByteBuf) ReadFloat64LE() (float64, error) { return get[float64](b, LE) }
func (b *ByteBuf) ReadFloat64BE() (float64, error) { return get[float64](b, BE) }
