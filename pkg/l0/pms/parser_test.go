package pms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func frameWithChecksum(b ...byte) []byte {
	var sum uint16
	for _, c := range b {
		sum += uint16(c)
	}
	return append(b, byte(sum>>8), byte(sum))
}

// compactWire is a PMS3003 frame: std 1,2,3 atm 4,5,6 reserved 7,8,9.
func compactWire() []byte {
	return frameWithChecksum(
		0x42, 0x4d, 0x00, 0x14,
		0x00, 0x01, 0x00, 0x02, 0x00, 0x03,
		0x00, 0x04, 0x00, 0x05, 0x00, 0x06,
		0x00, 0x07, 0x00, 0x08, 0x00, 0x09,
	)
}

func TestParser(t *testing.T) {
	testCases := []struct {
		name    string
		in      []byte
		states  []SyncState
		frame   bool
		errKind ErrorKind
	}{
		{
			name:  "frame",
			in:    compactWire(),
			frame: true,
		},
		{
			name:  "skip noise",
			in:    append([]byte{0x00, 0x4d, 0x42, 0x42}, compactWire()[1:]...),
			frame: true,
		},
		{
			name:   "signature not matched",
			in:     []byte{0x4d, 0x42, 0x00, 0x42, 0x00, 0x4d},
			states: []SyncState{SyncStateSyncing},
		},
		{
			name:   "receiving",
			in:     []byte{0x42, 0x4d, 0x00},
			states: []SyncState{SyncStateSyncing, SyncStateReceiving},
		},
		{
			name:    "zero length",
			in:      []byte{0x42, 0x4d, 0x00, 0x00},
			errKind: ZeroLength,
		},
		{
			name:    "length exceeds buffer",
			in:      []byte{0x42, 0x4d, 0x00, 0x1d},
			errKind: BodyTimeout,
		},
		{
			name: "checksum mismatch",
			in: func() []byte {
				b := compactWire()
				b[len(b)-1]++
				return b
			}(),
			errKind: ChecksumError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var parser Parser
			parser.Reset()
			var pr ParseResult
			seen := map[SyncState]bool{}
			for i, b := range tc.in {
				pr = parser.Parse(b)
				seen[pr.State] = true
				if i+1 < len(tc.in) {
					require.NoErrorf(t, pr.Err, "byte[%d]", i)
					require.Nilf(t, pr.Frame, "byte[%d]", i)
				}
			}
			if tc.errKind != NoError {
				require.Error(t, pr.Err)
				require.Equal(t, tc.errKind, KindOf(pr.Err))
				require.Nil(t, pr.Frame)
				require.Equal(t, SyncStateSyncing, parser.State())
				return
			}
			require.NoError(t, pr.Err)
			if tc.frame {
				require.NotNil(t, pr.Frame)
				require.Equal(t, SyncStateSyncing, pr.State)
				return
			}
			require.Nil(t, pr.Frame)
			for _, state := range tc.states {
				require.Truef(t, seen[state], "state %s not seen", state)
			}
			require.Equal(t, tc.states[len(tc.states)-1], pr.State)
		})
	}
}

func TestParserTimeout(t *testing.T) {
	var parser Parser
	parser.Reset()
	pr := parser.Timeout()
	require.ErrorIs(t, pr.Err, ErrSyncTimeout)

	parser.Parse(0x42)
	parser.Parse(0x4d)
	require.Equal(t, SyncStateReceiving, parser.State())
	pr = parser.Timeout()
	require.ErrorIs(t, pr.Err, ErrBodyTimeout)
	require.Contains(t, pr.Err.Error(), "2 bytes received")
	require.Equal(t, SyncStateSyncing, parser.State())

	for _, b := range []byte{0x42, 0x4d, 0x00, 0x14, 0x00} {
		parser.Parse(b)
	}
	pr = parser.Timeout()
	require.ErrorIs(t, pr.Err, ErrBodyTimeout)
	require.Contains(t, pr.Err.Error(), "24 expected")
}

func TestParserResync(t *testing.T) {
	var parser Parser
	parser.Reset()
	// a failed frame doesn't leak into the next one.
	for _, b := range []byte{0x42, 0x4d, 0x00, 0x00} {
		parser.Parse(b)
	}
	var pr ParseResult
	for _, b := range compactWire() {
		pr = parser.Parse(b)
	}
	require.NoError(t, pr.Err)
	require.NotNil(t, pr.Frame)
	require.Equal(t, uint16(CompactLength), pr.Frame.Len())
}

func TestSyncState(t *testing.T) {
	require.Equal(t, "syncing", SyncStateSyncing.String())
	require.Equal(t, "receiving", SyncStateReceiving.String())
}
