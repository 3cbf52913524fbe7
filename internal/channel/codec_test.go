package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

func TestDecodeReply(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr error
	}{
		{name: "ok", data: `{"status":"ok","result":[1,2]}`, want: `[1,2]`},
		{name: "not implemented", data: `{"status":"not_implemented"}`, wantErr: types.ErrUnimplemented},
		{name: "unknown status", data: `{"status":"maybe"}`, wantErr: types.ErrMalformed},
		{name: "garbage", data: `{`, wantErr: types.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeReply([]byte(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestDecodeReply_ErrorWithoutBody(t *testing.T) {
	_, err := decodeReply([]byte(`{"status":"error"}`))
	var callErr *types.CallError
	assert.ErrorAs(t, err, &callErr)
	assert.Equal(t, codeError, callErr.Code)
}

func TestEncodeReply_NotImplemented(t *testing.T) {
	data, err := encodeReply(nil, types.ErrUnimplemented)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"status":"not_implemented"}`, string(data))
}

func TestDecodeCall_MissingMethod(t *testing.T) {
	call, err := decodeCall([]byte(`{"id":"x"}`))
	assert.NoError(t, err)
	assert.Equal(t, types.MethodCall{ID: "x"}, call)
}
