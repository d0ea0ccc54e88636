package libio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"simplegl/libcam"

	"github.com/pierrec/lz4/v4"
)

const MagicNumberPose = 0x43a9e1b5

type PoseVersion uint32

const (
	PoseVersion1_000_000 = PoseVersion(1_000_000)
)

type PoseCompression uint32

const (
	PoseCompressionNone = PoseCompression(iota)
	PoseCompressionLz4
)

var (
	ErrCorruptHeader      = errors.New("pose header is corrupt")
	ErrUnsupportedVersion = errors.New("pose version unsupported")
	ErrUnknownCompression = errors.New("pose compression unknown")
)

type PoseHeader struct {
	Check       uint32
	Version     PoseVersion
	Compression PoseCompression
}

// three vec3 and the fov
const poseRecordSize = 10 * 4

// poseFields lists the components of p in file order.
func poseFields(p *libcam.Pose) []*float32 {
	return []*float32{
		&p.Position[0], &p.Position[1], &p.Position[2],
		&p.Forward[0], &p.Forward[1], &p.Forward[2],
		&p.WorldUp[0], &p.WorldUp[1], &p.WorldUp[2],
		&p.Fov,
	}
}

func writePoseRecord(bw *BinaryWriter, pose libcam.Pose) {
	for _, f := range poseFields(&pose) {
		bw.WriteFloat32(*f)
	}
}

func readPoseRecord(br *BinaryReader, pose *libcam.Pose) {
	for _, f := range poseFields(pose) {
		br.ReadFloat32(f)
	}
}

func EncodePose(w io.Writer, pose libcam.Pose, compression PoseCompression) (err error) {
	var bw *BinaryWriter
	var ok bool

	if bw, ok = w.(*BinaryWriter); !ok {
		bw = &BinaryWriter{
			Dst:   w,
			Order: binary.LittleEndian,
		}
	}

	header := PoseHeader{
		Check:       MagicNumberPose,
		Version:     PoseVersion1_000_000,
		Compression: compression,
	}

	buf := bytes.NewBuffer(make([]byte, 0, poseRecordSize))
	writePoseRecord(&BinaryWriter{Order: bw.Order, Dst: buf}, pose)

	var data []byte

	switch compression {
	case PoseCompressionNone:
		data = buf.Bytes()
	case PoseCompressionLz4:
		out := bytes.NewBuffer(nil)
		lzw := lz4.NewWriter(out)
		if err = lzw.Apply(lz4.CompressionLevelOption(lz4.Fast)); err != nil {
			break
		}
		if _, err = lzw.Write(buf.Bytes()); err != nil {
			break
		}
		err = lzw.Close()
		data = out.Bytes()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	}

	if err != nil {
		return fmt.Errorf("could not compress pose: %w", err)
	}

	if !bw.WriteRef(header) {
		return fmt.Errorf("could not write pose header: %w", bw.Err)
	}
	if !bw.WriteBytes(data) {
		return fmt.Errorf("could not write pose: %w", bw.Err)
	}

	return nil
}

func DecodePose(r io.Reader) (pose libcam.Pose, err error) {
	var br *BinaryReader
	var ok bool

	if br, ok = r.(*BinaryReader); !ok {
		br = &BinaryReader{
			Src:   r,
			Order: binary.LittleEndian,
		}
	}

	header := PoseHeader{}
	if !br.ReadRef(&header) {
		return pose, fmt.Errorf("expected pose header; byte 0x%08x: %w", br.LastIndex, br.Err)
	}

	if header.Check != MagicNumberPose {
		return pose, fmt.Errorf("%w; byte 0x%08x", ErrCorruptHeader, br.LastIndex)
	}

	if header.Version != PoseVersion1_000_000 {
		return pose, fmt.Errorf("%w: %d; byte 0x%08x", ErrUnsupportedVersion, header.Version, br.LastIndex)
	}

	switch header.Compression {
	case PoseCompressionNone:
		readPoseRecord(br, &pose)
		err = br.Err
	case PoseCompressionLz4:
		lzr := &BinaryReader{Order: br.Order, Src: lz4.NewReader(br.Src)}
		readPoseRecord(lzr, &pose)
		err = lzr.Err
	default:
		return pose, fmt.Errorf("%w: %d", ErrUnknownCompression, header.Compression)
	}

	if err != nil {
		return libcam.Pose{}, fmt.Errorf("could not read pose: %w", err)
	}

	return pose, nil
}

func SavePose(path string, pose libcam.Pose) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = EncodePose(f, pose, PoseCompressionLz4)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func LoadPose(path string) (libcam.Pose, error) {
	f, err := os.Open(path)
	if err != nil {
		return libcam.Pose{}, err
	}
	defer f.Close()
	return DecodePose(f)
}
