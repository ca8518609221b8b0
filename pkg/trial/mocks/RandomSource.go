package mocks

import "github.com/stretchr/testify/mock"

// RandomSource mock
type RandomSource struct {
	mock.Mock
}

// Float64 provides a mock function with given fields:
func (_m *RandomSource) Float64() float64 {
	ret := _m.Called()

	var r0 float64
	if rf, ok := ret.Get(0).(func() float64); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(float64)
	}

	return r0
}

// ReturnSequence queues draws to be returned in order, once each.
func (_m *RandomSource) ReturnSequence(draws ...float64) {
	for _, draw := range draws {
		_m.On("Float64").Return(draw).Once()
	}
}
