package wire

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	msgLogon     uint16 = 1
	msgHeartbeat uint16 = 3
)

type FactoryTestSuite struct {
	suite.Suite
	factory *Factory[uint16]
}

func (s *FactoryTestSuite) SetupTest() {
	s.factory = NewFactory[uint16]()
	s.factory.RegisterAll([]Registration[uint16]{
		Entry[uint16, logon](msgLogon),
		Entry[uint16, heartbeat](msgHeartbeat),
	})
}

func (s *FactoryTestSuite) TestCreate() {
	m, err := s.factory.Create(msgLogon)
	s.Require().NoError(err)
	s.Assert().IsType(&logon{}, m)

	m2, err := s.factory.Create(msgLogon)
	s.Require().NoError(err)
	s.Assert().NotSame(m, m2, "every Create returns a fresh instance")

	hb, err := s.factory.Create(msgHeartbeat)
	s.Require().NoError(err)
	s.Assert().Equal("Heartbeat{}", hb.String())
}

func (s *FactoryTestSuite) TestUnknownKey() {
	_, err := s.factory.Create(99)
	s.Require().ErrorIs(err, ErrUnknownKey)
	s.Assert().Contains(err.Error(), "99")
}

func (s *FactoryTestSuite) TestRegisterOverwrites() {
	Register[uint16, heartbeat](s.factory, msgLogon)
	m, err := s.factory.Create(msgLogon)
	s.Require().NoError(err)
	s.Assert().IsType(&heartbeat{}, m)
	s.Assert().Equal(2, s.factory.Len())
}

func (s *FactoryTestSuite) TestUnregister() {
	s.factory.Unregister(msgHeartbeat)
	s.Assert().False(s.factory.Contains(msgHeartbeat))
	_, err := s.factory.Create(msgHeartbeat)
	s.Assert().ErrorIs(err, ErrUnknownKey)

	s.factory.Unregister(msgHeartbeat) // absent: no-op
	s.Assert().ElementsMatch([]uint16{msgLogon}, s.factory.Keys())
}

func (s *FactoryTestSuite) TestDecode() {
	b := NewByteBuf(0)
	in := &logon{SenderID: "GW", Seq: 11, Heartbeat: 5}
	s.Require().NoError(in.Encode(b))

	m, err := s.factory.Decode(msgLogon, b)
	s.Require().NoError(err)
	s.Assert().True(in.Equal(m))

	_, err = s.factory.Decode(msgLogon, NewByteBuf(0))
	s.Assert().ErrorIs(err, ErrBufferUnderflow)
}

func (s *FactoryTestSuite) TestStringKeys() {
	f := NewFactory[string]()
	Register[string, logon](f, "A")
	m, err := f.Create("A")
	s.Require().NoError(err)
	s.Assert().IsType(&logon{}, m)
	_, err = f.Create("B")
	s.Assert().ErrorIs(err, ErrUnknownKey)
}

func (s *FactoryTestSuite) TestNilConstructorPanics() {
	s.Assert().Panics(func() { s.factory.RegisterFunc(7, nil) })
}

func (s *FactoryTestSuite) TestConcurrentUse() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(key uint16) {
			defer wg.Done()
			Register[uint16, heartbeat](s.factory, key)
		}(uint16(100 + i))
		go func() {
			defer wg.Done()
			m, err := s.factory.Create(msgLogon)
			assert.NoError(s.T(), err)
			assert.IsType(s.T(), &logon{}, m)
		}()
	}
	wg.Wait()
	s.Assert().Equal(52, s.factory.Len())
}

func TestFactory(t *testing.T) {
	suite.Run(t, new(FactoryTestSuite))
}

func TestFactoryLogging(t *testing.T) {
	var out bytes.Buffer
	SetLogger(zerolog.New(&out).Level(zerolog.DebugLevel))
	t.Cleanup(func() { SetLogger(zerolog.Nop()) })

	f := NewFactory[int]()
	Register[int, heartbeat](f, 1)
	Register[int, logon](f, 1)

	logs := out.String()
	require.Contains(t, logs, `"level":"debug"`)
	assert.Contains(t, logs, `"level":"warn"`)
	assert.Contains(t, logs, fmt.Sprintf(`"key":"%d"`, 1))
}
