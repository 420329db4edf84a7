package exif

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDateTime = "2023:05:10 09:30:00\x00" // 20 bytes including NUL

// writeIFDEntry appends one 12-byte IFD entry in little-endian byte order.
func writeIFDEntry(buf *bytes.Buffer, tag, typ uint16, count uint32, value []byte) {
	binary.Write(buf, binary.LittleEndian, tag)
	binary.Write(buf, binary.LittleEndian, typ)
	binary.Write(buf, binary.LittleEndian, count)
	buf.Write(value)
}

func uint32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)

	return b
}

func rationals(vals ...[2]uint32) []byte {
	buf := &bytes.Buffer{}
	for _, v := range vals {
		binary.Write(buf, binary.LittleEndian, v[0])
		binary.Write(buf, binary.LittleEndian, v[1])
	}

	return buf.Bytes()
}

// tiffWithDateTime builds a minimal little-endian TIFF whose IFD0 holds a
// DateTime tag, optionally followed by a GPS sub-IFD with 37.5N 127.25E.
func tiffWithDateTime(t *testing.T, withGPS bool) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	buf.WriteString("II")
	binary.Write(buf, binary.LittleEndian, uint16(42))
	binary.Write(buf, binary.LittleEndian, uint32(8)) // IFD0 offset

	entryCount := uint16(1)
	if withGPS {
		entryCount = 2
	}

	// layout: header(8) + IFD0 + datetime string [+ GPS IFD + rationals]
	dtOffset := uint32(8 + 2 + int(entryCount)*12 + 4)
	gpsIFDOffset := dtOffset + uint32(len(testDateTime))
	latOffset := gpsIFDOffset + 2 + 4*12 + 4
	longOffset := latOffset + 24

	binary.Write(buf, binary.LittleEndian, entryCount)
	writeIFDEntry(buf, 0x0132, 2, uint32(len(testDateTime)), uint32le(dtOffset))
	if withGPS {
		writeIFDEntry(buf, 0x8825, 4, 1, uint32le(gpsIFDOffset))
	}
	binary.Write(buf, binary.LittleEndian, uint32(0)) // no next IFD

	buf.WriteString(testDateTime)

	if withGPS {
		binary.Write(buf, binary.LittleEndian, uint16(4))
		writeIFDEntry(buf, 0x0001, 2, 2, []byte{'N', 0, 0, 0})
		writeIFDEntry(buf, 0x0002, 5, 3, uint32le(latOffset))
		writeIFDEntry(buf, 0x0003, 2, 2, []byte{'E', 0, 0, 0})
		writeIFDEntry(buf, 0x0004, 5, 3, uint32le(longOffset))
		binary.Write(buf, binary.LittleEndian, uint32(0))

		buf.Write(rationals([2]uint32{37, 1}, [2]uint32{30, 1}, [2]uint32{0, 1}))  // 37°30'00" N
		buf.Write(rationals([2]uint32{127, 1}, [2]uint32{15, 1}, [2]uint32{0, 1})) // 127°15'00" E
	}

	return buf.Bytes()
}

func TestExtract_DateTimeAndGPS(t *testing.T) {
	extractor := NewExtractor()

	capture, err := extractor.Extract(tiffWithDateTime(t, true))
	require.NoError(t, err)

	require.NotNil(t, capture.TakenAt)
	assert.Equal(t, "2023-05-10", capture.TakenAt.Format("2006-01-02"))
	assert.Equal(t, 9, capture.TakenAt.Hour())
	assert.Equal(t, 30, capture.TakenAt.Minute())

	require.NotNil(t, capture.Latitude)
	require.NotNil(t, capture.Longitude)
	assert.InDelta(t, 37.5, *capture.Latitude, 1e-9)
	assert.InDelta(t, 127.25, *capture.Longitude, 1e-9)
}

func TestExtract_NoGPSYieldsNilSentinels(t *testing.T) {
	extractor := NewExtractor()

	capture, err := extractor.Extract(tiffWithDateTime(t, false))
	require.NoError(t, err)

	require.NotNil(t, capture.TakenAt)
	assert.Nil(t, capture.Latitude)
	assert.Nil(t, capture.Longitude)
}

func TestExtract_UnsupportedBytes(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"plain text", []byte("not an image at all")},
		{"png header without exif", []byte("\x89PNG\r\n\x1a\n0000000000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.Extract(tt.data)
			assert.Error(t, err)
		})
	}
}
