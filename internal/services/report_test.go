// internal/services/report_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazaldoster/beautybot/internal/models"
)

func reportProducts() []*models.Product {
	return []*models.Product{
		{
			ProductID:   "p1",
			Name:        "Maskara Siyah",
			Subcategory: "Maskara",
			Price:       models.ParsePrice("89,90 TL"),
			Rating:      models.NewRating(4.6, 210, 0),
			Comments: []models.Comment{
				{Rate: 5, Text: "harika bir ürün, kirpiklerim çok dolgun görünüyor"},
				{Rate: 1, Text: "hiç beğenmedim"},
			},
			TotalCommentCount: 80,
			FavoriteCount:     600,
		},
		{
			ProductID:        "p2",
			Name:             "Fondöten Açık Ton",
			Subcategory:      "Ten Makyajı",
			Price:            models.ParsePrice("249,90 TL"),
			Rating:           models.NewRating(3.8, 130, 0),
			StarDistribution: models.StarDistribution{Star1: 40, Star5: 60},
		},
	}
}

func TestContextDocumentSectionOrder(t *testing.T) {
	a := analyzerOver(t, reportProducts())
	doc := a.ContextDocument()

	sections := []string{
		"=== KATALOG GENEL BAKIŞ ===",
		"=== KATEGORİ DAĞILIMI ===",
		"=== GENEL DUYGU ANALİZİ ===",
		"=== EN ÇOK YORUM ALAN ÜRÜNLER ===",
		"=== EN YÜKSEK ETKİLEŞİM ALAN ÜRÜNLER ===",
		"=== TARTIŞMALI / KUTUPLAŞTIRICI ÜRÜNLER ===",
		"=== EN İYİ FİYAT/PERFORMANS ÜRÜNLER ===",
		"=== KATEGORİ BAZINDA FİYAT ARALIKLARI ===",
		"=== KATEGORİ BAZINDA EN İYİ PUANLI ÜRÜNLER ===",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(doc, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestContextDocumentContent(t *testing.T) {
	a := analyzerOver(t, reportProducts())
	doc := a.ContextDocument()

	assert.Contains(t, doc, "Toplam ürün: 2")
	assert.Contains(t, doc, "Toplam kategori: 2")
	assert.Contains(t, doc, "  Maskara: 1 ürün")
	assert.Contains(t, doc, "  Ten Makyajı: 1 ürün")
	assert.Contains(t, doc, "Toplam yorum: 2")
	assert.Contains(t, doc, "Olumlu yorumlar: 1 (50%)")
	assert.Contains(t, doc, `En beğenilen olumlu yorum: "harika bir ürün, kirpiklerim çok dolgun görünüyor"`)
	assert.Contains(t, doc, `En dikkat çeken olumsuz yorum: "hiç beğenmedim"`)
	assert.Contains(t, doc, "  Fondöten Açık Ton (Ten Makyajı)")
	assert.Contains(t, doc, "  Maskara: Min 90 TL | Max 90 TL | Ort 90 TL")
	assert.Contains(t, doc, "  [Maskara]")
	assert.Contains(t, doc, "    Ürün: Maskara Siyah")
}

func TestContextDocumentOmitsEmptyPolarizingSection(t *testing.T) {
	products := reportProducts()[:1]
	a := analyzerOver(t, products)
	doc := a.ContextDocument()

	assert.NotContains(t, doc, "=== TARTIŞMALI / KUTUPLAŞTIRICI ÜRÜNLER ===")
	assert.Contains(t, doc, "=== EN İYİ FİYAT/PERFORMANS ÜRÜNLER ===")
}

func TestContextDocumentEmptyCatalog(t *testing.T) {
	a := analyzerOver(t, nil)
	doc := a.ContextDocument()

	assert.Contains(t, doc, "Toplam ürün: 0")
	assert.NotContains(t, doc, "=== TARTIŞMALI / KUTUPLAŞTIRICI ÜRÜNLER ===")
}
