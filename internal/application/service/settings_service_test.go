package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structurachem/scpl-api/pkg/apperror"
)

func TestGetSettingsSeedsDefaults(t *testing.T) {
	env := newTestEnv(t)

	settings, err := env.settings.GetSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Structura Chemicals Private Limited", settings.CompanyName)
	assert.Equal(t, "SCPL", settings.CompanyShortName)
	assert.Equal(t, "1234567-8", settings.CompanyNTN)
	assert.Equal(t, 0.18, settings.GSTRate)
	assert.Equal(t, 0.15, settings.SRBRate)
	assert.Len(t, settings.Categories, 7)

	// The seeded row is persisted, not recreated on every read.
	again, err := env.settings.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestUpdateSettingsReplacesDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	updated, err := env.settings.UpdateSettings(ctx, adminActor, &UpdateSettingsInput{
		CompanyName:      "Structura Chemicals Private Limited",
		CompanyShortName: "SCPL",
		CompanyNTN:       "1234567-8",
		GSTRate:          0.17,
		SRBRate:          0.13,
		Categories:       []string{"Admixture", "Paints"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.17, updated.GSTRate)
	assert.Equal(t, 0.13, updated.SRBRate)
	assert.Equal(t, []string{"Admixture", "Paints"}, updated.Categories)
}

func TestUpdateSettingsIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.settings.UpdateSettings(context.Background(), salesActor, &UpdateSettingsInput{
		CompanyName: "Anything",
	})
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestUpdateSettingsValidatesRates(t *testing.T) {
	env := newTestEnv(t)

	// Whole-percent values are a common entry mistake; rates are
	// fractions.
	_, err := env.settings.UpdateSettings(context.Background(), adminActor, &UpdateSettingsInput{
		CompanyName: "Structura Chemicals Private Limited",
		GSTRate:     18,
	})
	assert.Error(t, err)
}
