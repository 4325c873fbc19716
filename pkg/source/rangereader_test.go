package source

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	data  []byte
	calls int
	fail  error
}

func (f *fakeRemote) fetch(off, n int64) ([]byte, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	end := off + n
	if end > int64(len(f.data)) {
		end = int64(len(f.data))
	}
	return append([]byte(nil), f.data[off:end]...), nil
}

func payload(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i * 7)
	}
	return b
}

func TestRangeReaderReadAll(t *testing.T) {
	remote := &fakeRemote{data: payload(1000)}
	r := newRangeReader(1000, remote.fetch)
	r.windowSize = 64

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, remote.data, got)
	assert.Equal(t, 16, remote.calls) // ceil(1000/64)
}

func TestRangeReaderSmallReadsShareWindow(t *testing.T) {
	remote := &fakeRemote{data: payload(100)}
	r := newRangeReader(100, remote.fetch)

	buf := make([]byte, 16)
	for i := 0; i < 6; i++ {
		_, err := io.ReadFull(r, buf)
		require.NoError(t, err)
		assert.Equal(t, remote.data[i*16:(i+1)*16], buf)
	}
	assert.Equal(t, 1, remote.calls)
}

func TestRangeReaderSeek(t *testing.T) {
	remote := &fakeRemote{data: payload(300)}
	r := newRangeReader(300, remote.fetch)
	r.windowSize = 32

	pos, err := r.Seek(0x2e, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(0x2e), pos)

	buf := make([]byte, 16)
	_, err = io.ReadFull(r, buf)
	require.NoError(t, err)
	assert.Equal(t, remote.data[0x2e:0x3e], buf)

	pos, err = r.Seek(-10, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(290), pos)
	n, err := io.ReadFull(r, buf)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, 10, n)

	pos, err = r.Seek(-20, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(280), pos)

	_, err = r.Seek(-1, io.SeekStart)
	assert.Error(t, err)
	_, err = r.Seek(0, 42)
	assert.Error(t, err)
}

func TestRangeReaderFetchError(t *testing.T) {
	boom := errors.New("connection reset")
	remote := &fakeRemote{data: payload(10), fail: boom}
	r := newRangeReader(10, remote.fetch)

	_, err := r.Read(make([]byte, 4))
	assert.ErrorIs(t, err, boom)
}

func TestRangeReaderShrunkObject(t *testing.T) {
	// the object got shorter after its size was taken
	remote := &fakeRemote{data: payload(8)}
	r := newRangeReader(32, remote.fetch)

	buf := make([]byte, 16)
	n, err := io.ReadFull(r, buf)
	assert.Equal(t, 8, n)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
