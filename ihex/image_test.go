package ihex

import (
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const twoWindowHex = ":020000040800F2\n" +
	":0400000000010203F6\n" +
	":020000040801F1\n" +
	":04FFFC00AABBCCDDF3\n" +
	":0400000508000131BD\n" +
	":00000001FF\n"

func TestParseReader(t *testing.T) {
	img, err := ParseReader(strings.NewReader(twoWindowHex), WithLogger(log.NewTestLogger(t)))
	assert.NoError(t, err)

	groups := img.Groups()
	assert.Equal(t, 2, len(groups))

	assert.Equal(t, uint32(0x08000000), groups[0].Base())
	assert.False(t, groups[0].Implicit())
	assert.Equal(t, 1, len(groups[0].Rows()))

	assert.Equal(t, uint32(0x08010000), groups[1].Base())
	assert.Equal(t, 3, len(groups[1].Rows()))
	assert.Equal(t, 1, len(groups[1].DataRows()))
	assert.Equal(t, uint32(0x0801FFFC), groups[1].Address(groups[1].DataRows()[0]))

	assert.Equal(t, 4, img.RowCount())

	start, ok := img.StartAddress()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x08000131), start)
}

func TestParseLinesDefaultGroup(t *testing.T) {
	img, err := ParseLines([]string{
		":040010001122334442",
		":00000001FF",
	})
	assert.NoError(t, err)

	groups := img.Groups()
	assert.Equal(t, 1, len(groups))
	assert.True(t, groups[0].Implicit())
	assert.Equal(t, uint32(0), groups[0].Base())
	assert.True(t, groups[0].Header().Equal(DefaultAddressRow))

	byteList := img.ByteList()
	assert.Equal(t, 4, len(byteList))
	assert.Equal(t, uint32(0x0010), byteList[0].Address)
	assert.Equal(t, byte(0x11), byteList[0].Data)

	_, ok := img.StartAddress()
	assert.False(t, ok)
}

func TestParseLinesAppendsToLatestGroup(t *testing.T) {
	img, err := ParseLines([]string{
		":040010001122334442",
		":020000040800F2",
		":0400000000010203F6",
	})
	assert.NoError(t, err)

	groups := img.Groups()
	assert.Equal(t, 2, len(groups))
	assert.True(t, groups[0].Implicit())
	assert.False(t, groups[1].Implicit())
	assert.Equal(t, 1, len(groups[0].Rows()))
	assert.Equal(t, 1, len(groups[1].Rows()))
}

func TestParseLinesErrors(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		errMsg string
	}{
		{
			name:   "invalid second line",
			lines:  []string{":020000040800F2", "0400000000010203F6"},
			errMsg: "line 2: invalid hex input: missing start code",
		},
		{
			name:   "checksum mismatch after blank line",
			lines:  []string{":020000040800F2", "", ":0400000000010203F7"},
			errMsg: "line 3: checksum mismatch",
		},
		{
			name:   "extended linear address with wrong size",
			lines:  []string{":0100000408F3"},
			errMsg: "line 1: invalid hex input: extended linear address record must carry exactly 2 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := ParseLines(tt.lines)
			assert.True(t, img == nil)
			assert.ErrorContains(t, err, tt.errMsg)
			assert.True(t, errors.Is(err, ErrInvalidHex))
		})
	}
}

func TestParseReaderSkipsBlankLines(t *testing.T) {
	input := "\n:020000040800F2\r\n\n  \n:0400000000010203F6\n:00000001FF\n\n"
	img, err := ParseReader(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(img.Groups()))
	assert.Equal(t, 2, img.RowCount())
}

func TestParseReaderEmpty(t *testing.T) {
	img, err := ParseReader(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Equal(t, 0, len(img.Groups()))
	assert.Equal(t, 0, len(img.BinaryText()))
	assert.Equal(t, "", img.HexText())
}

func TestHexRoundTrip(t *testing.T) {
	inputs := []string{
		twoWindowHex,
		":040010001122334442\n:00000001FF\n",
	}

	for _, input := range inputs {
		img, err := ParseReader(strings.NewReader(input))
		assert.NoError(t, err)
		assert.Equal(t, input, img.HexText())
	}
}

func TestHexRoundTripNormalizesCase(t *testing.T) {
	img, err := ParseReader(strings.NewReader(strings.ToLower(twoWindowHex)))
	assert.NoError(t, err)
	assert.Equal(t, twoWindowHex, img.HexText())
}
