package libemit

import (
	"github.com/stretchr/testify/mock"
)

// mockListener records invocations through testify's mock.Mock. Its Handler and Method helpers produce handlers
// backed by the mock so that expectations can be set with On("Handle", ...) and On("HandleWith", ...).
type mockListener struct {
	mock.Mock

	tapHandle func(args []any)
}

func (m *mockListener) Handle(args ...any) error {
	if m.tapHandle != nil {
		m.tapHandle(args)
	}
	ret := m.Called(args)
	return ret.Error(0)
}

func (m *mockListener) HandleWith(recv any, args ...any) error {
	ret := m.Called(recv, args)
	return ret.Error(0)
}

func (m *mockListener) Handler() *Handler {
	return Func(m.Handle)
}

func (m *mockListener) Method() *Handler {
	return Method(m.HandleWith)
}
