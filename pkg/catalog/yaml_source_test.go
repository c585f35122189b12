package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uboraplatform/ubora/pkg/catalog"
)

const packagesYAML = `
- tier: starter
  name: Starter
  price: 35000
  limits:
    max_forms: 10
    max_dashboards: 5
    max_users: 3
    monthly_tokens: 60000
    additional_user_cost: 7000
  features: [pdf_export, csv_export]
- tier: standard
  name: Standard
  price: 85000
  limits:
    max_forms: -1
    max_dashboards: 15
    max_users: 7
    monthly_tokens: 150000
    additional_user_cost: 7000
  features: [pdf_export, excel_export, team_roles]
`

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestYAMLSource_Load(t *testing.T) {
	t.Parallel()

	src := catalog.NewYAMLSource(writeYAML(t, packagesYAML))
	cat, err := catalog.New(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, int64(35000), cat.Price(catalog.TierStarter))
	assert.Equal(t, int64(85000), cat.Price(catalog.TierStandard))
	assert.True(t, cat.IsUnlimited(catalog.TierStandard, catalog.ResourceForms))
	assert.True(t, cat.HasFeature(catalog.TierStandard, catalog.FeatureTeamRoles))
	assert.False(t, cat.HasFeature(catalog.TierStarter, catalog.FeatureTeamRoles))
}

func TestYAMLSource_MissingFile(t *testing.T) {
	t.Parallel()

	src := catalog.NewYAMLSource(filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := catalog.New(context.Background(), src)
	assert.ErrorIs(t, err, catalog.ErrFailedToLoadPackages)
}

func TestYAMLSource_MalformedYAML(t *testing.T) {
	t.Parallel()

	src := catalog.NewYAMLSource(writeYAML(t, "- tier: [broken"))
	_, err := catalog.New(context.Background(), src)
	assert.ErrorIs(t, err, catalog.ErrFailedToParseYAML)
}

func TestYAMLSource_CancelledContext(t *testing.T) {
	t.Parallel()

	src := catalog.NewYAMLSource(writeYAML(t, packagesYAML))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
