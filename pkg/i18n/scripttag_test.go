package i18n_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localekit/localekit/pkg/gettext"
	"github.com/localekit/localekit/pkg/i18n"
)

func TestScriptCatalogJSON(t *testing.T) {
	t.Parallel()

	t.Run("renders the script catalog document", func(t *testing.T) {
		t.Parallel()

		loader := gettext.NewLoader(writeLocaleTree(t))
		ctx := i18n.SetLanguages(context.Background(), []string{"pl", "en"})

		out, err := i18n.ScriptCatalogJSON(ctx, loader)
		require.NoError(t, err)

		var w gettext.WireCatalog
		require.NoError(t, json.Unmarshal([]byte(out), &w))
		assert.Equal(t, "Cześć", w.Catalog["Hello"])
		assert.NotEmpty(t, w.Plural)
		assert.Nil(t, w.Fallback, "only pl ships a jsmessages catalog")
	})

	t.Run("no jsmessages catalog for any language", func(t *testing.T) {
		t.Parallel()

		loader := gettext.NewLoader(t.TempDir())
		ctx := i18n.SetLanguages(context.Background(), []string{"pl", "en"})

		_, err := i18n.ScriptCatalogJSON(ctx, loader)
		assert.ErrorIs(t, err, i18n.ErrNoScriptCatalog)
	})

	t.Run("languages come from the context", func(t *testing.T) {
		t.Parallel()

		loader := gettext.NewLoader(writeLocaleTree(t))

		// No middleware ran, so resolution uses the default language,
		// which has no jsmessages catalog.
		_, err := i18n.ScriptCatalogJSON(context.Background(), loader)
		assert.ErrorIs(t, err, i18n.ErrNoScriptCatalog)
	})
}

func TestScriptTag(t *testing.T) {
	t.Parallel()

	t.Run("embeds the catalog with the default renderer", func(t *testing.T) {
		t.Parallel()

		loader := gettext.NewLoader(writeLocaleTree(t))
		ctx := i18n.SetLanguages(context.Background(), []string{"pl"})

		out, err := i18n.ScriptTag(ctx, loader, nil)
		require.NoError(t, err)

		assert.Contains(t, out, `<script type="text/javascript">`)
		assert.Contains(t, out, "window.i18nCatalog = {")
		assert.Contains(t, out, `"Hello": "Cześć"`)
		assert.Contains(t, out, "</script>")
	})

	t.Run("missing catalog renders an empty body", func(t *testing.T) {
		t.Parallel()

		loader := gettext.NewLoader(t.TempDir())
		ctx := i18n.SetLanguages(context.Background(), []string{"pl"})

		out, err := i18n.ScriptTag(ctx, loader, nil)
		require.NoError(t, err)

		assert.Contains(t, out, "<script")
		assert.NotContains(t, out, "window.i18nCatalog")
	})

	t.Run("custom renderer receives the document", func(t *testing.T) {
		t.Parallel()

		loader := gettext.NewLoader(writeLocaleTree(t))
		ctx := i18n.SetLanguages(context.Background(), []string{"pl"})

		var got string
		out, err := i18n.ScriptTag(ctx, loader, func(jsonBody string) (string, error) {
			got = jsonBody
			return "rendered", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "rendered", out)
		assert.Contains(t, got, `"Hello": "Cześć"`)
	})
}
