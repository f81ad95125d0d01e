package gettext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localekit/localekit/pkg/gettext"
)

const polishMeta = "Language: pl\n" +
	"Plural-Forms: nplurals=3; plural=(n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);\n"

func polishCatalog(opts ...gettext.Option) *gettext.Catalog {
	return gettext.New("pl", gettext.DomainMessages, map[gettext.Key]string{
		gettext.MetaKey:               polishMeta,
		gettext.Singular("Hello"):     "Cześć",
		gettext.PluralForm("Cart", 0): "koszyk",
		gettext.PluralForm("Cart", 1): "koszyki",
		gettext.PluralForm("Cart", 2): "koszyków",
	}, opts...)
}

func englishCatalog(opts ...gettext.Option) *gettext.Catalog {
	return gettext.New("en", gettext.DomainMessages, map[gettext.Key]string{
		gettext.Singular("Hello"):       "Hello",
		gettext.Singular("Goodbye"):     "Goodbye",
		gettext.PluralForm("Basket", 0): "basket",
		gettext.PluralForm("Basket", 1): "baskets",
	}, opts...)
}

func TestCatalogGettext(t *testing.T) {
	t.Parallel()

	t.Run("translates a known message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Cześć", polishCatalog().Gettext("Hello"))
	})

	t.Run("unknown message comes back unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Unmapped", polishCatalog().Gettext("Unmapped"))
	})

	t.Run("walks the fallback chain", func(t *testing.T) {
		t.Parallel()

		cat := polishCatalog(gettext.WithFallback(englishCatalog()))
		assert.Equal(t, "Cześć", cat.Gettext("Hello"), "primary wins over fallback")
		assert.Equal(t, "Goodbye", cat.Gettext("Goodbye"), "fallback fills the gap")
		assert.Equal(t, "Nowhere", cat.Gettext("Nowhere"), "miss everywhere passes through")
	})
}

func TestCatalogNGettext(t *testing.T) {
	t.Parallel()

	t.Run("selects with the catalog's own plural rule", func(t *testing.T) {
		t.Parallel()

		cat := polishCatalog()
		assert.Equal(t, "koszyk", cat.NGettext("Cart", "Carts", 1))
		assert.Equal(t, "koszyki", cat.NGettext("Cart", "Carts", 3))
		assert.Equal(t, "koszyków", cat.NGettext("Cart", "Carts", 5))
	})

	t.Run("each chain link applies its own rule", func(t *testing.T) {
		t.Parallel()

		// "Basket" lives only in the English catalog, which declares the
		// default two-form rule even though the primary declares three.
		cat := polishCatalog(gettext.WithFallback(englishCatalog()))
		assert.Equal(t, "basket", cat.NGettext("Basket", "Baskets", 1))
		assert.Equal(t, "baskets", cat.NGettext("Basket", "Baskets", 5))
	})

	t.Run("miss everywhere picks between the two ids", func(t *testing.T) {
		t.Parallel()

		cat := polishCatalog()
		assert.Equal(t, "Apple", cat.NGettext("Apple", "Apples", 1))
		assert.Equal(t, "Apples", cat.NGettext("Apple", "Apples", 2))
	})
}

func TestCatalogAccessors(t *testing.T) {
	t.Parallel()

	cat := polishCatalog(gettext.WithFallback(englishCatalog()))
	assert.Equal(t, "pl", cat.Language())
	assert.Equal(t, gettext.DomainMessages, cat.Domain())
	assert.Equal(t, "en", cat.Fallback().Language())
	assert.Equal(t, 3, cat.PluralForms().NPlurals)
	assert.Equal(t, 4, cat.Len(), "metadata entry is not a message")
}

func TestNewNoop(t *testing.T) {
	t.Parallel()

	cat := gettext.NewNoop(gettext.DomainMessages)
	assert.Equal(t, gettext.DomainMessages, cat.Domain())
	assert.Equal(t, 0, cat.Len())
	assert.Equal(t, "Hello", cat.Gettext("Hello"))
	assert.Equal(t, "Apple", cat.NGettext("Apple", "Apples", 1))
	assert.Equal(t, "Apples", cat.NGettext("Apple", "Apples", 0))
}
