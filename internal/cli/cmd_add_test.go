package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/kookie/internal/vault"
	"github.com/MKhiriev/kookie/models"
)

func TestAddCmd_Note_ContentFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, manager, _ := newTestCLI(t, ctrl)

	manager.EXPECT().UnlockWithSession(gomock.Any(), testUnlockTTL).Return(nil)
	manager.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.SecretEntry) (models.SecretEntry, error) {
			assert.Equal(t, "recovery", entry.Name)
			assert.Equal(t, models.SecretTypeNote, entry.Type)
			require.NotNil(t, entry.Note)
			assert.Equal(t, "backup codes", entry.Note.Content)

			entry.ID = "0195f0aa-2222-7000-8000-000000000002"

			return entry, nil
		})

	out, _, err := runCommand(t, c, "", "add", "note", "recovery", "--content", "backup codes")

	require.NoError(t, err)
	assert.Contains(t, out, "Stored note")
	assert.Contains(t, out, `"recovery"`)
	assert.Contains(t, out, "0195f0aa-2222-7000-8000-000000000002")
}

func TestAddCmd_Note_PromptsForContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, manager, _ := newTestCLI(t, ctrl)

	manager.EXPECT().UnlockWithSession(gomock.Any(), testUnlockTTL).Return(nil)
	manager.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.SecretEntry) (models.SecretEntry, error) {
			assert.Equal(t, "typed at the prompt", entry.Note.Content)

			return entry, nil
		})

	_, _, err := runCommand(t, c, "typed at the prompt\n", "add", "note", "memo")

	require.NoError(t, err)
}

func TestAddCmd_Password_Generated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, manager, _ := newTestCLI(t, ctrl)

	manager.EXPECT().UnlockWithSession(gomock.Any(), testUnlockTTL).Return(nil)
	manager.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.SecretEntry) (models.SecretEntry, error) {
			assert.Equal(t, models.SecretTypePassword, entry.Type)
			require.NotNil(t, entry.Password)
			assert.Equal(t, "octocat", entry.Password.Username)
			assert.Equal(t, "https://github.com", entry.Password.URL)
			assert.Len(t, entry.Password.Password, 12)

			return entry, nil
		})

	_, errOut, err := runCommand(t, c, "", "add", "password", "github",
		"--username", "octocat", "--url", "https://github.com",
		"--generate", "--length", "12")

	require.NoError(t, err)
	assert.Contains(t, errOut, "Generated a 12-character password.")
}

func TestAddCmd_Password_DuplicateSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, manager, _ := newTestCLI(t, ctrl)

	manager.EXPECT().UnlockWithSession(gomock.Any(), testUnlockTTL).Return(nil)
	manager.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(models.SecretEntry{}, fmt.Errorf("%w: password %q", vault.ErrDuplicateSecret, "github"))

	_, _, err := runCommand(t, c, "", "add", "password", "github",
		"--username", "octocat", "--generate")

	require.Error(t, err)
	assert.ErrorIs(t, err, vault.ErrDuplicateSecret)
}

func TestAddCmd_APIKey_Generated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, manager, _ := newTestCLI(t, ctrl)

	manager.EXPECT().UnlockWithSession(gomock.Any(), testUnlockTTL).Return(nil)
	manager.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.SecretEntry) (models.SecretEntry, error) {
			assert.Equal(t, models.SecretTypeAPIKey, entry.Type)
			require.NotNil(t, entry.APIKey)
			assert.Equal(t, "stripe", entry.APIKey.Service)
			assert.True(t, strings.HasPrefix(entry.APIKey.Key, "kk_"))

			return entry, nil
		})

	_, _, err := runCommand(t, c, "", "add", "api-key", "stripe-live",
		"--service", "stripe", "--generate")

	require.NoError(t, err)
}

func TestAddCmd_Token_BadExpiresStopsEarly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the flag is rejected before the vault or the
	// prompts are touched.
	c, _, _ := newTestCLI(t, ctrl)

	_, _, err := runCommand(t, c, "", "add", "token", "ci", "--expires", "tomorrow")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RFC 3339")
}
