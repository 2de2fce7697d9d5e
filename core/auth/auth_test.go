package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerifier_Verify(t *testing.T) {
	v := NewStaticVerifier(map[string]string{
		"bilalab": "saymynamehhh",
		"abdou":   "bouker6666",
	})

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "first pair", username: "bilalab", password: "saymynamehhh"},
		{name: "second pair", username: "abdou", password: "bouker6666"},
		{name: "wrong password", username: "bilalab", password: "bouker6666", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "ghost", password: "whatever", wantErr: ErrInvalidCredentials},
		{name: "empty username", username: "", password: "saymynamehhh", wantErr: ErrMissingCredentials},
		{name: "empty password", username: "bilalab", password: "", wantErr: ErrMissingCredentials},
		{name: "both empty", username: "", password: "", wantErr: ErrMissingCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Verify(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStaticVerifier_Verify_bcryptSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewStaticVerifier(map[string]string{"ops": string(hash)})

	assert.NoError(t, v.Verify("ops", "s3cret"))
	assert.ErrorIs(t, v.Verify("ops", "nope"), ErrInvalidCredentials)
}
