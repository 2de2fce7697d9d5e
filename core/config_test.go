package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAuthUsers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{name: "empty", in: "", want: map[string]string{}},
		{name: "single pair", in: "bilalab:saymynamehhh", want: map[string]string{"bilalab": "saymynamehhh"}},
		{
			name: "multiple pairs with spaces",
			in:   "bilalab:saymynamehhh, abdou:bouker6666",
			want: map[string]string{"bilalab": "saymynamehhh", "abdou": "bouker6666"},
		},
		{
			name: "bcrypt secret keeps inner colons intact",
			in:   "ops:$2a$10$abc:def",
			want: map[string]string{"ops": "$2a$10$abc:def"},
		},
		{name: "malformed entries skipped", in: "nosecret,:nouser,ok:fine,", want: map[string]string{"ok": "fine"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAuthUsers(tt.in))
		})
	}
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Ali Ben", CleanString("  Ali Ben\t"))
	assert.Equal(t, "ali ben", CleanString("  Ali Ben ", true))
}

func TestConf_devDefaults(t *testing.T) {
	assert.NotNil(t, Conf)
	assert.NotEmpty(t, Conf.SecretKey)
	assert.NotEmpty(t, Conf.AuthUsers) // legacy dev pairs outside PROD
	assert.Equal(t, ":8000", Conf.Server.Addr)
}
