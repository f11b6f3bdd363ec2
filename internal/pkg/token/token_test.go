package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	issuedAt := time.Unix(1688443200, 0)
	gen := NewJWTGenerator("careerhub", "key", 15*time.Minute)
	gen.nowFunc = func() time.Time {
		return issuedAt
	}
	tk, err := gen.Generate(123)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		key     string
		token   string
		now     time.Time
		wantUid int64
		wantErr error
	}{
		{
			name:    "有效token",
			key:     "key",
			token:   tk,
			now:     issuedAt.Add(time.Minute),
			wantUid: 123,
		},
		{
			name:    "token已过期",
			key:     "key",
			token:   tk,
			now:     issuedAt.Add(16 * time.Minute),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "签名错误",
			key:     "another key",
			token:   tk,
			now:     issuedAt.Add(time.Minute),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "错误token",
			key:     "key",
			token:   "abc",
			now:     issuedAt,
			wantErr: ErrInvalidToken,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewJWTVerifier(tc.key)
			v.nowFunc = func() time.Time {
				return tc.now
			}
			uid, err := v.Verify(tc.token)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantUid, uid)
		})
	}
}
