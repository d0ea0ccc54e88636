package libio_test

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"simplegl/libcam"
	"simplegl/libio"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPose = libcam.Pose{
	Position: mgl32.Vec3{1.5, -2, 30},
	Forward:  mgl32.Vec3{0, 0.6, -0.8},
	WorldUp:  mgl32.Vec3{0, 1, 0},
	Fov:      60,
}

func TestPoseRoundTrip(t *testing.T) {
	for _, compression := range []libio.PoseCompression{libio.PoseCompressionNone, libio.PoseCompressionLz4} {
		buf := bytes.NewBuffer(nil)
		require.NoError(t, libio.EncodePose(buf, testPose, compression))

		actual, err := libio.DecodePose(buf)
		require.NoError(t, err, "compression %d", compression)
		assert.Equal(t, testPose, actual, "compression %d", compression)
	}
}

func TestPoseHeaderLayout(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, libio.EncodePose(buf, testPose, libio.PoseCompressionNone))

	data := buf.Bytes()
	require.Len(t, data, 12+40)
	assert.Equal(t, uint32(libio.MagicNumberPose), binary.LittleEndian.Uint32(data[0:]))
	assert.Equal(t, uint32(1_000_000), binary.LittleEndian.Uint32(data[4:]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(data[8:]))
}

func TestDecodePoseCorruptHeader(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, libio.EncodePose(buf, testPose, libio.PoseCompressionNone))
	data := buf.Bytes()
	data[0] ^= 0xff

	_, err := libio.DecodePose(bytes.NewReader(data))
	assert.ErrorIs(t, err, libio.ErrCorruptHeader)
}

func TestDecodePoseUnsupportedVersion(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	bw := &libio.BinaryWriter{Order: binary.LittleEndian, Dst: buf}
	bw.WriteRef(libio.PoseHeader{Check: libio.MagicNumberPose, Version: 2_000_000})
	bw.WriteRef(testPose)
	require.NoError(t, bw.Err)

	_, err := libio.DecodePose(buf)
	assert.ErrorIs(t, err, libio.ErrUnsupportedVersion)
}

func TestDecodePoseUnknownCompression(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	bw := &libio.BinaryWriter{Order: binary.LittleEndian, Dst: buf}
	bw.WriteRef(libio.PoseHeader{Check: libio.MagicNumberPose, Version: libio.PoseVersion1_000_000, Compression: 7})
	require.NoError(t, bw.Err)

	_, err := libio.DecodePose(buf)
	assert.ErrorIs(t, err, libio.ErrUnknownCompression)
}

func TestEncodePoseUnknownCompression(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := libio.EncodePose(buf, testPose, 7)
	assert.ErrorIs(t, err, libio.ErrUnknownCompression)
	assert.Zero(t, buf.Len())
}

func TestDecodePoseTruncated(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, libio.EncodePose(buf, testPose, libio.PoseCompressionNone))
	data := buf.Bytes()[:20]

	_, err := libio.DecodePose(bytes.NewReader(data))
	assert.Error(t, err)
}

func TestSaveLoadPose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.pose")
	require.NoError(t, libio.SavePose(path, testPose))

	actual, err := libio.LoadPose(path)
	require.NoError(t, err)
	assert.Equal(t, testPose, actual)
}

func TestLoadPoseMissingFile(t *testing.T) {
	_, err := libio.LoadPose(filepath.Join(t.TempDir(), "missing.pose"))
	assert.Error(t, err)
}
