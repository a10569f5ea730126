// internal/repository/csv_product_repository_test.go
package repository

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeCSV(t *testing.T, records [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.WriteAll(records))
	require.NoError(t, w.Error())
	return path
}

func TestNewCSVProductRepositoryMissingFile(t *testing.T) {
	_, err := NewCSVProductRepository("/nonexistent/products.csv", testLogger())
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	path := writeCSV(t, [][]string{
		{"product_id", "name", "url", "subcategory", "description", "price",
			"rating_score", "total_rating_count", "star_1_count", "star_5_count",
			"comments", "social_proof_1", "social_proof_2", "total_comment_count", "Renk", "Menşei"},
		{"p1", "Maskara Siyah", "https://example.com/p1", "Maskara", "Hacim veren", "89,90 TL",
			"4.6", "210.0", "2", "8",
			`[{"userFullName":"Ayşe","rate":5,"comment":"harika","likes":3},{"userFullName":"","rate":2,"comment":"beğenmedim"}]`,
			"Son 3 günde 100 ürün satıldı", "1.234 kişi favoriledi", "85", "Siyah", "TR"},
	})

	repo, err := NewCSVProductRepository(path, testLogger())
	require.NoError(t, err)

	catalog, err := repo.LoadCatalog()
	require.NoError(t, err)
	require.Equal(t, 1, catalog.TotalProducts())

	p, ok := catalog.GetByID("p1")
	require.True(t, ok)
	assert.Equal(t, "Maskara Siyah", p.Name)
	assert.Equal(t, "Maskara", p.Subcategory)
	assert.Equal(t, 89.9, p.Price.Amount)
	assert.Equal(t, 4.6, p.Rating.Score)
	// Fractional counts in the source are truncated.
	assert.Equal(t, 210, p.Rating.Count)
	assert.Equal(t, 2, p.StarDistribution.Star1)
	assert.Equal(t, 8, p.StarDistribution.Star5)
	assert.Equal(t, 85, p.TotalCommentCount)
	assert.Equal(t, "Siyah", p.Color)
	assert.Equal(t, "TR", p.Origin)
	assert.Len(t, p.SocialProofs, 2)
	// Backfilled from the social proof texts during load.
	assert.Equal(t, 1234, p.FavoriteCount)

	require.Len(t, p.Comments, 2)
	assert.Equal(t, "Ayşe", p.Comments[0].UserName)
	assert.Equal(t, "Anonim", p.Comments[1].UserName)
}

func TestLoadCatalogSkipsRowsMissingIdentity(t *testing.T) {
	path := writeCSV(t, [][]string{
		{"product_id", "name", "subcategory"},
		{"", "İsimli ama kimliksiz", "Ruj"},
		{"p2", "", "Ruj"},
		{"p3", "Geçerli Ürün", "Ruj"},
	})

	repo, err := NewCSVProductRepository(path, testLogger())
	require.NoError(t, err)

	catalog, err := repo.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.TotalProducts())
	_, ok := catalog.GetByID("p3")
	assert.True(t, ok)
}

func TestLoadCatalogRatingFallbackColumns(t *testing.T) {
	path := writeCSV(t, [][]string{
		{"product_id", "name", "subcategory", "rating", "rating_count"},
		{"p1", "Ruj", "Ruj", "4.2", "33"},
	})

	repo, err := NewCSVProductRepository(path, testLogger())
	require.NoError(t, err)

	catalog, err := repo.LoadCatalog()
	require.NoError(t, err)

	p, ok := catalog.GetByID("p1")
	require.True(t, ok)
	assert.Equal(t, 4.2, p.Rating.Score)
	assert.Equal(t, 33, p.Rating.Count)
}

func TestLoadCatalogDropsUndecodableComments(t *testing.T) {
	path := writeCSV(t, [][]string{
		{"product_id", "name", "subcategory", "comments"},
		{"p1", "Ruj", "Ruj", "{bozuk json"},
		{"p2", "Maskara", "Maskara", "[]"},
	})

	repo, err := NewCSVProductRepository(path, testLogger())
	require.NoError(t, err)

	catalog, err := repo.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.TotalProducts())

	p, ok := catalog.GetByID("p1")
	require.True(t, ok)
	assert.Empty(t, p.Comments)
}

func TestLoadCatalogKeepsValidCommentsFromMixedArray(t *testing.T) {
	path := writeCSV(t, [][]string{
		{"product_id", "name", "subcategory", "comments"},
		{"p1", "Ruj", "Ruj",
			`[{"userFullName":"Ayşe","rate":5,"comment":"harika"},"bozuk kayıt",{"userFullName":"Deniz","rate":4.5,"comment":"iyi"}]`},
	})

	repo, err := NewCSVProductRepository(path, testLogger())
	require.NoError(t, err)

	catalog, err := repo.LoadCatalog()
	require.NoError(t, err)

	p, ok := catalog.GetByID("p1")
	require.True(t, ok)
	// The non-object entry is skipped; the valid neighbors survive.
	require.Len(t, p.Comments, 2)
	assert.Equal(t, "Ayşe", p.Comments[0].UserName)
	assert.Equal(t, 5, p.Comments[0].Rate)
	assert.Equal(t, "Deniz", p.Comments[1].UserName)
	// Fractional rates are truncated.
	assert.Equal(t, 4, p.Comments[1].Rate)
}

func TestLoadCatalogStripsHeaderBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	content := "\uFEFFproduct_id,name,subcategory\np1,Ruj,Ruj\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo, err := NewCSVProductRepository(path, testLogger())
	require.NoError(t, err)

	catalog, err := repo.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.TotalProducts())
}

func TestSafeParsing(t *testing.T) {
	assert.Equal(t, 4.5, safeFloat("4.5"))
	assert.Equal(t, 0.0, safeFloat(""))
	assert.Equal(t, 0.0, safeFloat("yok"))
	assert.Equal(t, 12, safeInt("12.9"))
	assert.Equal(t, 0, safeInt("abc"))
}
