package wire

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mocks and Helpers ---

// A simple fixed-size struct for testing codec implementations.
type mockPayload struct {
	ID   uint32
	Data [4]byte
}

// mockCodec is a Fixed codec over mockPayload.
type mockCodec = Fixed[mockPayload]

// logon is a variable-size message built on Reader and Writer,
// the way a protocol package writes its messages.
type logon struct {
	SenderID  string
	Seq       uint32
	Heartbeat uint16
	Tags      []string
}

func (m *logon) Encode(b *ByteBuf) error {
	w := NewWriter(b)
	WriteString[uint8](w, m.SenderID)
	w.WriteUint32(m.Seq)
	w.WriteUint16(m.Heartbeat)
	WriteStringList[uint8, uint8](w, m.Tags)
	return w.Err()
}

func (m *logon) Decode(b *ByteBuf) error {
	r := NewReader(b)
	ReadString[uint8](r, &m.SenderID)
	r.ReadUint32(&m.Seq)
	r.ReadUint16(&m.Heartbeat)
	ReadStringList[uint8, uint8](r, &m.Tags)
	if err := r.Err(); err != nil {
		r.Rewind()
		return err
	}
	return nil
}

func (m *logon) Equal(other BinaryCodec) bool {
	o, ok := other.(*logon)
	return ok && o.SenderID == m.SenderID && o.Seq == m.Seq && o.Heartbeat == m.Heartbeat &&
		Join(o.Tags) == Join(m.Tags)
}

func (m *logon) String() string {
	return fmt.Sprintf("Logon{sender=%q seq=%d hb=%d tags=%s}", m.SenderID, m.Seq, m.Heartbeat, Join(m.Tags))
}

// heartbeat has no body.
type heartbeat struct{}

func (*heartbeat) Encode(*ByteBuf) error { return nil }
func (*heartbeat) Decode(*ByteBuf) error { return nil }
func (*heartbeat) Equal(other BinaryCodec) bool {
	_, ok := other.(*heartbeat)
	return ok
}
func (*heartbeat) String() string { return "Heartbeat{}" }

// --- Writer Test Suite ---

type WriterTestSuite struct {
	suite.Suite
	buf    *ByteBuf
	writer *Writer
}

// SetupTest runs before each test in the suite, ensuring a clean state.
func (s *WriterTestSuite) SetupTest() {
	s.buf = NewByteBuf(0)
	s.writer = NewWriter(s.buf)
}

func (s *WriterTestSuite) TestBasicWrites() {
	codec := &mockCodec{mockPayload{ID: 0xDEADBEEF, Data: [4]byte{1, 2, 3, 4}}}

	s.writer.WriteUint8(0xAA)
	s.writer.WriteUint16(0xBBCC)
	s.writer.WriteUint32(0xDDEEFF00)
	s.writer.WriteUint64(0x0102030405060708)
	s.writer.WriteBytes([]byte{5, 6, 7})
	s.writer.WriteZeros(2)
	s.writer.WriteObject(codec)

	n, err := s.writer.Result()
	s.Require().NoError(err)
	s.Assert().EqualValues(1+2+4+8+3+2+8, n)
	s.Assert().EqualValues(s.buf.ReadableBytes(), s.writer.Count())

	expected := []byte{
		0xAA,       // WriteUint8
		0xCC, 0xBB, // WriteUint16 (Little Endian)
		0x00, 0xFF, 0xEE, 0xDD, // WriteUint32 (Little Endian)
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // WriteUint64 (Little Endian)
		5, 6, 7, // WriteBytes
		0, 0, // WriteZeros
		0xEF, 0xBE, 0xAD, 0xDE, 1, 2, 3, 4, // WriteObject(codec)
	}
	s.Assert().Equal(expected, s.buf.Bytes())
}

func (s *WriterTestSuite) TestBigEndianBuffer() {
	b := NewByteBuf(0).WithByteOrder(BE)
	w := NewWriter(b)
	w.WriteUint16(0x0102)
	WriteString[uint16](w, "ab")
	s.Require().NoError(w.Err())
	s.Assert().Equal([]byte{0x01, 0x02, 0x00, 0x02, 'a', 'b'}, b.Bytes())
}

func (s *WriterTestSuite) TestPatchLength() {
	pos := s.writer.Offset()
	s.writer.WriteUint16(0) // reserved
	WriteString[uint8](s.writer, "payload")
	s.writer.PatchUint16(pos, uint16(s.writer.Count()-2))
	s.Require().NoError(s.writer.Err())

	v, err := s.buf.ReadUint16()
	s.Require().NoError(err)
	s.Assert().EqualValues(1+len("payload"), v)
}

func (s *WriterTestSuite) TestAlign() {
	s.writer.WriteUint8(1)
	s.writer.Align(4)
	s.writer.WriteUint8(2)
	s.Require().NoError(s.writer.Err())
	s.Assert().Equal([]byte{1, 0, 0, 0, 2}, s.buf.Bytes())
}

func (s *WriterTestSuite) TestErrorHandling() {
	s.T().Run("PrefixOverflow", func(t *testing.T) {
		b := NewByteBuf(0)
		w := NewWriter(b)
		WriteString[uint8](w, string(make([]byte, 256)))

		require.Error(t, w.Err())
		assert.ErrorIs(t, w.Err(), ErrLengthOverflow)
		assert.Zero(t, b.ReadableBytes(), "nothing is written when the prefix overflows")
	})

	s.T().Run("WriteAfterErrorIsNoOp", func(t *testing.T) {
		b := NewByteBuf(0)
		w := NewWriter(b)
		w.PatchUint32(10, 1) // Nothing written yet, so the patch is out of range.

		firstErr := w.Err()
		require.Error(t, firstErr)
		require.ErrorIs(t, firstErr, ErrOutOfRange)

		// This subsequent write should be a no-op because an error state is set.
		w.WriteUint8(0xFF)
		WriteString[uint8](w, "x")
		assert.Equal(t, firstErr, w.Err(), "The first error should be preserved")
		assert.Zero(t, b.ReadableBytes())
	})

	s.T().Run("NestedEncodeError", func(t *testing.T) {
		w := NewWriter(NewByteBuf(0))
		w.WriteObject(&logon{SenderID: string(make([]byte, 300))})
		assert.ErrorIs(t, w.Err(), ErrLengthOverflow)
	})
}

// TestWriter runs the WriterTestSuite.
func TestWriter(t *testing.T) {
	suite.Run(t, new(WriterTestSuite))
}

// --- Reader Test Suite ---

type ReaderTestSuite struct {
	suite.Suite
}

func (s *ReaderTestSuite) TestBasicReads() {
	data := []byte{
		0xAA,
		0xCC, 0xBB,
		0x00, 0xFF, 0xEE, 0xDD,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		5, 6, 7,
		0xEF, 0xBE, 0xAD, 0xDE, 1, 2, 3, 4,
		'Z', 1,
	}
	r := NewReader(Wrap(data))

	var (
		v8    uint8
		v16   uint16
		v32   uint32
		v64   uint64
		codec mockCodec
		ch    Char
		flag  bool
	)
	r.ReadUint8(&v8)
	r.ReadUint16(&v16)
	r.ReadUint32(&v32)
	r.ReadUint64(&v64)
	raw := r.ReadBytes(3)
	r.ReadObject(&codec)
	r.ReadChar(&ch)
	r.ReadBool(&flag)

	s.Require().NoError(r.Err())
	s.Assert().Equal(uint8(0xAA), v8)
	s.Assert().Equal(uint16(0xBBCC), v16)
	s.Assert().Equal(uint32(0xDDEEFF00), v32)
	s.Assert().Equal(uint64(0x0102030405060708), v64)
	s.Assert().Equal([]byte{5, 6, 7}, raw)
	s.Assert().Equal(mockPayload{ID: 0xDEADBEEF, Data: [4]byte{1, 2, 3, 4}}, codec.Payload)
	s.Assert().Equal(Char('Z'), ch)
	s.Assert().True(flag)
	s.Assert().EqualValues(len(data), r.Count())
}

func (s *ReaderTestSuite) TestMessageRoundTrip() {
	in := &logon{SenderID: "GW01", Seq: 42, Heartbeat: 30, Tags: []string{"one", "two", "three"}}
	b := NewByteBuf(0)
	s.Require().NoError(in.Encode(b))

	out := &logon{}
	s.Require().NoError(out.Decode(b))
	s.Assert().True(in.Equal(out), "got %s", out)
	s.Assert().Zero(b.ReadableBytes())
}

func (s *ReaderTestSuite) TestErrorHandling() {
	s.T().Run("ReadPastEnd", func(t *testing.T) {
		r := NewReader(Wrap([]byte{0x01, 0x02, 0x03}))
		var v32 uint32
		r.ReadUint32(&v32) // Attempt to read 4 bytes from a 3-byte source.

		require.Error(t, r.Err())
		assert.ErrorIs(t, r.Err(), ErrBufferUnderflow)
		assert.True(t, r.IsUnderflow())
		assert.Zero(t, r.Count(), "an underflowing read consumes nothing")
	})

	s.T().Run("ReadAfterErrorIsNoOp", func(t *testing.T) {
		r := NewReader(Wrap([]byte{0x01, 0x02, 0x03}))
		var v32 uint32
		var v8 uint8

		r.ReadUint32(&v32) // This will trigger and latch the error.
		firstErr := r.Err()
		require.Error(t, firstErr)

		r.ReadUint8(&v8) // This read should not happen.
		assert.Equal(t, firstErr, r.Err(), "The latched error should not change")
		assert.Equal(t, uint8(0), v8, "Destination variable should be unchanged after an error")
	})

	s.T().Run("RewindOnPartialFrame", func(t *testing.T) {
		full := NewByteBuf(0)
		require.NoError(t, (&logon{SenderID: "GW01", Seq: 7}).Encode(full))
		frame := full.Bytes()

		b := Wrap(append([]byte(nil), frame[:len(frame)-1]...))
		var m logon
		err := m.Decode(b)
		require.ErrorIs(t, err, ErrBufferUnderflow)
		assert.Zero(t, b.ReaderIndex(), "the partial frame is left for a retry")

		b.WriteBytes(frame[len(frame)-1:])
		require.NoError(t, m.Decode(b))
		assert.Equal(t, "GW01", m.SenderID)
		assert.EqualValues(t, 7, m.Seq)
	})
}

func (s *ReaderTestSuite) TestAlign() {
	r := NewReader(Wrap([]byte{1, 0, 0, 0, 2}))
	var a, b uint8
	r.ReadUint8(&a)
	r.Align(4)
	r.ReadUint8(&b)
	s.Require().NoError(r.Err())
	s.Assert().Equal(uint8(2), b)
}

// TestReader runs the ReaderTestSuite.
func TestReader(t *testing.T) {
	suite.Run(t, new(ReaderTestSuite))
}

// --- Standalone Codec Tests ---

func TestFixedSizeCodec_SizeCache(t *testing.T) {
	c := &mockCodec{mockPayload{ID: 1}}
	expectedSize := 8 // uint32(4) + [4]byte(4)

	// The first call populates the cache.
	size1 := c.Size()
	assert.Equal(t, expectedSize, size1)

	// The second call should hit the cache.
	size2 := c.Size()
	assert.Equal(t, expectedSize, size2)

	// Verify the cache is shared globally.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c2 := &mockCodec{mockPayload{ID: 2}}
			assert.Equal(t, expectedSize, c2.Size())
		}()
	}
	wg.Wait()
}

func TestFixedSizeCodec_ByteOrder(t *testing.T) {
	c := &mockCodec{mockPayload{ID: 0x01020304, Data: [4]byte{9, 9, 9, 9}}}
	b := NewByteBuf(0).WithByteOrder(BE)
	require.NoError(t, c.Encode(b))
	assert.Equal(t, []byte{1, 2, 3, 4, 9, 9, 9, 9}, b.Bytes())

	var out mockCodec
	require.NoError(t, out.Decode(b))
	assert.True(t, c.Equal(&out))
	assert.Equal(t, "{ID:16909060 Data:[9 9 9 9]}", out.String())
}

func TestFixedSizeCodec_Errors(t *testing.T) {
	t.Run("MarshalToShortBuffer", func(t *testing.T) {
		c := &mockCodec{}
		shortBuf := make([]byte, c.Size()-1)
		_, err := MarshalTo(c, shortBuf, nil)
		assert.ErrorContains(t, err, "short buffer")
	})

	t.Run("UnmarshalWithTruncatedData", func(t *testing.T) {
		c := &mockCodec{}
		validData, _ := Marshal(c, nil)
		truncatedData := validData[:len(validData)-1]

		err := Unmarshal(truncatedData, c, nil)
		assert.ErrorIs(t, err, ErrBufferUnderflow)
	})

	t.Run("UnmarshalWithTrailingData", func(t *testing.T) {
		c := &mockCodec{}
		validData, _ := Marshal(c, nil)
		trailingData := append(validData, 0x01, 0x02, 0x03) // Append non-zero bytes

		err := Unmarshal(trailingData, c, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTrailingData)
		assert.Contains(t, err.Error(), "non-zero byte")
	})

	t.Run("UnmarshalWithZeroPadding", func(t *testing.T) {
		c := &mockCodec{mockPayload{ID: 5}}
		validData, _ := Marshal(c, nil)
		var out mockCodec
		require.NoError(t, Unmarshal(append(validData, 0, 0, 0), &out, nil))
		assert.EqualValues(t, 5, out.Payload.ID)
	})

	t.Run("VariableSizePayload", func(t *testing.T) {
		c := &Fixed[struct{ S []byte }]{}
		assert.Error(t, c.Encode(NewByteBuf(0)))
	})
}
