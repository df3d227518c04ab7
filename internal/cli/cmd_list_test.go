package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/kookie/models"
)

func TestListCmd_Table(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, manager, _ := newTestCLI(t, ctrl)

	password := storedPassword()
	note := storedNote()
	entries := []models.SecretEntry{
		password.Redacted(),
		note.Redacted(),
	}

	manager.EXPECT().UnlockWithSession(gomock.Any(), testUnlockTTL).Return(nil)
	manager.EXPECT().List(gomock.Any(), nil).Return(entries, nil)

	out, _, err := runCommand(t, c, "", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "UPDATED")
	assert.Contains(t, out, "github")
	assert.Contains(t, out, "recovery")
}

func TestListCmd_TypeFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, manager, _ := newTestCLI(t, ctrl)

	manager.EXPECT().UnlockWithSession(gomock.Any(), testUnlockTTL).Return(nil)
	manager.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter *models.SecretType) ([]models.SecretEntry, error) {
			require.NotNil(t, filter)
			assert.Equal(t, models.SecretTypeNote, *filter)

			note := storedNote()

			return []models.SecretEntry{note.Redacted()}, nil
		})

	out, _, err := runCommand(t, c, "", "list", "--type", "note")

	require.NoError(t, err)
	assert.Contains(t, out, "recovery")
}

func TestListCmd_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, manager, _ := newTestCLI(t, ctrl)

	manager.EXPECT().UnlockWithSession(gomock.Any(), testUnlockTTL).Return(nil)
	manager.EXPECT().List(gomock.Any(), nil).Return(nil, nil)

	out, _, err := runCommand(t, c, "", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "The vault is empty.")
}

func TestListCmd_EmptyWithFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, manager, _ := newTestCLI(t, ctrl)

	manager.EXPECT().UnlockWithSession(gomock.Any(), testUnlockTTL).Return(nil)
	manager.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

	out, _, err := runCommand(t, c, "", "list", "--type", "token")

	require.NoError(t, err)
	assert.Contains(t, out, "No token secrets stored.")
}

func TestListCmd_InvalidTypeStopsBeforeUnlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the filter is rejected before any unlock.
	c, _, _ := newTestCLI(t, ctrl)

	_, _, err := runCommand(t, c, "", "list", "--type", "bogus")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownSecretType)
}
