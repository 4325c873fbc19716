package hexdump

import (
	"github.com/stretchr/testify/mock"
)

// MockReadSeeker is a mock io.ReadSeeker for exercising read and seek failures.
type MockReadSeeker struct {
	mock.Mock
}

func (m *MockReadSeeker) Read(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *MockReadSeeker) Seek(offset int64, whence int) (int64, error) {
	args := m.Called(offset, whence)
	return args.Get(0).(int64), args.Error(1)
}

// errWriter fails every write.
type errWriter struct {
	err error
}

func (w errWriter) Write(p []byte) (int, error) {
	return 0, w.err
}
