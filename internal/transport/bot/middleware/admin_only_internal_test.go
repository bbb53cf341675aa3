package middleware

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"
)

func TestSenderID(t *testing.T) {
	cases := []struct {
		name   string
		update telego.Update
		want   int64
		ok     bool
	}{
		{
			name:   "message",
			update: telego.Update{Message: &telego.Message{From: &telego.User{ID: 42}}},
			want:   42,
			ok:     true,
		},
		{
			name:   "channel post without sender",
			update: telego.Update{Message: &telego.Message{}},
		},
		{
			name:   "callback",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{From: telego.User{ID: 7}}},
			want:   7,
			ok:     true,
		},
		{
			name:   "empty",
			update: telego.Update{},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			id, ok := senderID(tt.update)
			r.Equal(tt.ok, ok)
			r.Equal(tt.want, id)
		})
	}
}
