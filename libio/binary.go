package libio

import (
	"encoding/binary"
	"io"

	"github.com/chewxy/math32"
)

// BinaryReader decodes fixed size values from Src and remembers the first error.
// Once Err is set every further read reports false without touching Src.
type BinaryReader struct {
	Order binary.ByteOrder
	Src   io.Reader
	// Index is the number of bytes consumed, LastIndex where the last read started.
	Index     int
	LastIndex int
	Err       error
	scratch   [8]byte
}

func (br *BinaryReader) ReadBytes(p []byte) (ok bool) {
	if br.Err != nil {
		return false
	}
	n, err := io.ReadFull(br.Src, p)
	br.LastIndex = br.Index
	br.Index += n
	br.Err = err
	return err == nil
}

func (br *BinaryReader) ReadUInt32(i *uint32) (ok bool) {
	buf := br.scratch[:4]
	if !br.ReadBytes(buf) {
		return false
	}
	*i = br.Order.Uint32(buf)
	return true
}

func (br *BinaryReader) ReadFloat32(f *float32) (ok bool) {
	var bits uint32
	if !br.ReadUInt32(&bits) {
		return false
	}
	*f = math32.Float32frombits(bits)
	return true
}

// ReadRef decodes into data with binary.Read, so data has to point to a fixed size value.
func (br *BinaryReader) ReadRef(data any) (ok bool) {
	if br.Err != nil {
		return false
	}
	br.LastIndex = br.Index
	if br.Err = binary.Read(br.Src, br.Order, data); br.Err != nil {
		return false
	}
	br.Index += binary.Size(data)
	return true
}

// BinaryWriter is the encoding counterpart of BinaryReader.
type BinaryWriter struct {
	Order   binary.ByteOrder
	Dst     io.Writer
	Err     error
	scratch [8]byte
}

func (bw *BinaryWriter) WriteBytes(p []byte) (ok bool) {
	if bw.Err != nil {
		return false
	}
	_, bw.Err = bw.Dst.Write(p)
	return bw.Err == nil
}

func (bw *BinaryWriter) WriteUInt32(i uint32) (ok bool) {
	buf := bw.scratch[:4]
	bw.Order.PutUint32(buf, i)
	return bw.WriteBytes(buf)
}

func (bw *BinaryWriter) WriteFloat32(f float32) (ok bool) {
	return bw.WriteUInt32(math32.Float32bits(f))
}

func (bw *BinaryWriter) WriteRef(data any) (ok bool) {
	if bw.Err != nil {
		return false
	}
	bw.Err = binary.Write(bw.Dst, bw.Order, data)
	return bw.Err == nil
}
