package cli

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// The generate commands never touch the vault; the mocks carry no
// expectations, so any manager or recorder call fails the test.

func TestGenerateCmd_Password(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestCLI(t, ctrl)

	out, _, err := runCommand(t, c, "", "generate", "password", "--length", "16")

	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 16)
}

func TestGenerateCmd_PasswordNoSymbols(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestCLI(t, ctrl)

	out, _, err := runCommand(t, c, "", "generate", "password", "--no-symbols")

	require.NoError(t, err)

	value := strings.TrimSpace(out)
	assert.Len(t, value, 20)
	for _, r := range value {
		assert.True(t, unicode.IsLetter(r) || unicode.IsDigit(r),
			"unexpected character %q in a no-symbols password", r)
	}
}

func TestGenerateCmd_APIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestCLI(t, ctrl)

	out, _, err := runCommand(t, c, "", "generate", "api-key")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "kk_"))
}

func TestGenerateCmd_KeyAndJWTSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestCLI(t, ctrl)

	// 32 random bytes encode to 43 base64url characters.
	key, _, err := runCommand(t, c, "", "generate", "key")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(key), 43)

	secret, _, err := runCommand(t, c, "", "generate", "jwt-secret")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(secret), 43)

	assert.NotEqual(t, key, secret)
}
