package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCallbackToken(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  CallbackToken
		expectErr bool
	}{
		{
			name:     "user subscription check",
			input:    "usr:check_sub",
			expected: CallbackToken{Namespace: "usr", Action: "check_sub"},
		},
		{
			name:     "user reply with target",
			input:    "usr:reply:42",
			expected: CallbackToken{Namespace: "usr", Action: "reply", Arg: "42"},
		},
		{
			name:     "admin stats",
			input:    "adm:stats",
			expected: CallbackToken{Namespace: "adm", Action: "stats"},
		},
		{
			name:     "admin channel delete with handle arg",
			input:    "adm:del_ch:@news",
			expected: CallbackToken{Namespace: "adm", Action: "del_ch", Arg: "@news"},
		},
		{
			name:      "unknown namespace",
			input:     "sys:reload",
			expectErr: true,
		},
		{
			name:      "no separator",
			input:     "usrreply",
			expectErr: true,
		},
		{
			name:      "empty data",
			input:     "",
			expectErr: true,
		},
		{
			name:      "empty action",
			input:     "adm:",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := ParseCallbackToken(tt.input)

			if tt.expectErr {
				assert.ErrorIs(t, err, ErrUnknownToken)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, tok)
		})
	}
}

func TestCallbackToken_UserID(t *testing.T) {
	tok := CallbackToken{Namespace: "usr", Action: "ban", Arg: "12345"}
	id, err := tok.UserID()
	assert.NoError(t, err)
	assert.Equal(t, int64(12345), id)

	tok.Arg = "@news"
	_, err = tok.UserID()
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestCallbackToken_String(t *testing.T) {
	assert.Equal(t, "usr:reply:42", CallbackToken{Namespace: "usr", Action: "reply", Arg: "42"}.String())
	assert.Equal(t, "adm:stats", CallbackToken{Namespace: "adm", Action: "stats"}.String())
}

func TestSubscribed(t *testing.T) {
	assert.True(t, Subscribed(MemberStatusMember))
	assert.True(t, Subscribed(MemberStatusAdmin))
	assert.True(t, Subscribed(MemberStatusCreator))
	assert.False(t, Subscribed("left"))
	assert.False(t, Subscribed("kicked"))
	assert.False(t, Subscribed(""))
}
