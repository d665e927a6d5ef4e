package encoding

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestRecordLayout(t *testing.T) {
	var rec Record
	assert.Equal(t, uintptr(RecordSize), unsafe.Sizeof(rec))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(rec.Type))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(rec.Layer))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(rec.Params))
	assert.Equal(t, uintptr(56), unsafe.Offsetof(rec.FillColor))
	assert.Equal(t, uintptr(60), unsafe.Offsetof(rec.StrokeColor))
	assert.Equal(t, uintptr(64), unsafe.Offsetof(rec.StrokeWidth))
	assert.Equal(t, uintptr(68), unsafe.Offsetof(rec.Round))
	assert.Equal(t, uintptr(72), unsafe.Offsetof(rec.Bounds))
}

func TestParamBits(t *testing.T) {
	var rec Record
	rec.SetParamBits(3, 0xDEADBEEF)
	assert.Equal(t, uint32(0xDEADBEEF), rec.ParamBits(3))
	assert.Zero(t, rec.ParamBits(0))
}
