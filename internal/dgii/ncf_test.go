package dgii_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/model"
)

func TestSplitNCF(t *testing.T) {
	s, code, seq := dgii.SplitNCF("E310000224062")
	assert.Equal(t, "E", s)
	assert.Equal(t, "31", code)
	assert.Equal(t, "0000224062", seq)

	s, code, seq = dgii.SplitNCF("B0100000001")
	assert.Equal(t, "B", s)
	assert.Equal(t, "01", code)
	assert.Equal(t, "00000001", seq)

	s, code, seq = dgii.SplitNCF("")
	assert.Empty(t, s+code+seq)
}

func TestValidateNCF(t *testing.T) {
	tests := []struct {
		name  string
		ncf   string
		only  string
		valid bool
		rule  string
	}{
		{"electronic fiscal invoice", "E310000000001", "", true, ""},
		{"electronic consumer invoice", "E320000000001", "E", true, ""},
		{"paper series", "B0100000001", "", true, ""},
		{"paper series pinned to E", "B0100000001", "E", false, "ncf_series"},
		{"unknown series", "A310000000001", "", false, "ncf_series"},
		{"letters in sequence", "E3100000000A1", "", false, "ncf_sequence"},
		{"type not valid for E", "E010000000001", "", false, "ncf_type"},
		{"type not valid for B", "B3100000001", "", false, "ncf_type"},
		{"E too short", "E31000000001", "", false, "ncf_length"},
		{"B too long", "B010000000001", "", false, "ncf_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dgii.ValidateNCF(tt.ncf, tt.only)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.ncf, got)
				return
			}
			var verr *model.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.rule, verr.Rule)
		})
	}
}

func TestParseNCF(t *testing.T) {
	n, err := dgii.ParseNCF("E340000000123")
	require.NoError(t, err)
	assert.Equal(t, int64(123), n.Number())
	assert.Equal(t, "E340000000123", n.String())

	dt, err := n.DocumentType()
	require.NoError(t, err)
	assert.Equal(t, model.TypeCreditNote, dt)

	b, err := dgii.ParseNCF("B0100000001")
	require.NoError(t, err)
	_, err = b.DocumentType()
	require.Error(t, err)
	assert.False(t, n.SameKind(b))
}

func TestDocumentTypeOf(t *testing.T) {
	dt, err := dgii.DocumentTypeOf("E470000000001")
	require.NoError(t, err)
	assert.Equal(t, model.TypePaymentAbroadSupport, dt)

	_, err = dgii.DocumentTypeOf("E99")
	require.Error(t, err)
}

func TestCountSequence(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		until    string
		expected int64
		wantErr  bool
	}{
		{"single", "E310000000001", "E310000000001", 1, false},
		{"two", "E310000000001", "E310000000002", 2, false},
		{"ten", "E310000000001", "E310000000010", 10, false},
		{"eleven", "E310000000010", "E310000000020", 11, false},
		{"paper", "B0100000001", "B0100000005", 5, false},
		{"types differ", "E310000000001", "E320000000002", 0, true},
		{"series differ", "E310000000001", "B0100000002", 0, true},
		{"reversed", "E310000000010", "E310000000001", 0, true},
		{"invalid endpoint", "E31", "E310000000001", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dgii.CountSequence(tt.from, tt.until)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNCFRange(t *testing.T) {
	got, err := dgii.NCFRange("E310000000009", "E310000000011")
	require.NoError(t, err)
	assert.Equal(t, []string{"E310000000009", "E310000000010", "E310000000011"}, got)

	_, err = dgii.NCFRange("E310000000011", "E310000000009")
	require.Error(t, err)
}
