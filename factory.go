package wire

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"
)

// Constructor returns a fresh, not yet decoded message.
type Constructor func() BinaryCodec

// Registration is one row of a startup table passed to Factory.RegisterAll.
type Registration[K comparable] struct {
	Key K
	New Constructor
}

// Entry builds a Registration for the message type T.
func Entry[K comparable, T any, PT interface {
	*T
	BinaryCodec
}](key K) Registration[K] {
	return Registration[K]{Key: key, New: func() BinaryCodec { return PT(new(T)) }}
}

// Factory maps a wire-level discriminant to a message constructor.
//
// A protocol declares one Factory per discriminant space and fills it once at
// startup from an ordered table, so adding a message type never touches a
// central switch:
//
//	var Messages = wire.NewFactory[uint16]()
//
//	func init() {
//		Messages.RegisterAll([]wire.Registration[uint16]{
//			wire.Entry[uint16, Logon](1),
//			wire.Entry[uint16, Heartbeat](3),
//		})
//	}
//
// All methods are safe for concurrent use.
type Factory[K comparable] struct {
	creators *xsync.Map[K, Constructor]
}

func NewFactory[K comparable]() *Factory[K] {
	return &Factory[K]{creators: xsync.NewMap[K, Constructor]()}
}

// RegisterFunc stores newFn under key, replacing any previous constructor.
func (f *Factory[K]) RegisterFunc(key K, newFn Constructor) {
	if newFn == nil {
		panic("wire: Factory.RegisterFunc called with a nil constructor")
	}
	if _, loaded := f.creators.LoadAndStore(key, newFn); loaded {
		Logger().Warn().Str("key", fmt.Sprint(key)).Msg("wire: message constructor replaced")
		return
	}
	Logger().Debug().Str("key", fmt.Sprint(key)).Msg("wire: message registered")
}

// Register stores a constructor for T under key, replacing any previous one.
func Register[K comparable, T any, PT interface {
	*T
	BinaryCodec
}](f *Factory[K], key K) {
	f.RegisterFunc(key, func() BinaryCodec { return PT(new(T)) })
}

// RegisterAll registers every row of table in order; later rows win on duplicate keys.
func (f *Factory[K]) RegisterAll(table []Registration[K]) {
	for _, r := range table {
		f.RegisterFunc(r.Key, r.New)
	}
}

// Unregister removes the constructor for key. It is a no-op if none exists.
func (f *Factory[K]) Unregister(key K) {
	if _, loaded := f.creators.LoadAndDelete(key); loaded {
		Logger().Debug().Str("key", fmt.Sprint(key)).Msg("wire: message unregistered")
	}
}

// Create returns a fresh instance for key, or ErrUnknownKey.
func (f *Factory[K]) Create(key K) (BinaryCodec, error) {
	newFn, ok := f.creators.Load(key)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	return newFn(), nil
}

// Decode creates the message registered for key and decodes it from b.
func (f *Factory[K]) Decode(key K, b *ByteBuf) (BinaryCodec, error) {
	msg, err := f.Create(key)
	if err != nil {
		return nil, err
	}
	if err := msg.Decode(b); err != nil {
		return nil, fmt.Errorf("decode message %v: %w", key, err)
	}
	return msg, nil
}

func (f *Factory[K]) Contains(key K) bool {
	_, ok := f.creators.Load(key)
	return ok
}

func (f *Factory[K]) Len() int { return f.creators.Size() }

// Keys returns the registered keys in no particular order.
func (f *Factory[K]) Keys() []K {
	keys := make([]K, 0, f.creators.Size())
	f.creators.Range(func(key K, _ Constructor) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
