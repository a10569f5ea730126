// internal/repository/csv_product_repository.go
package repository

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hazaldoster/beautybot/internal/models"
)

// CSVProductRepository loads the product table from a CSV export and maps
// rows to domain entities. Malformed rows are skipped, never fatal.
type CSVProductRepository struct {
	path string
	log  *logrus.Logger
}

func NewCSVProductRepository(path string, log *logrus.Logger) (*CSVProductRepository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("csv file not found: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CSVProductRepository{path: path, log: log}, nil
}

// LoadCatalog reads every row and returns a fully indexed catalog.
func (r *CSVProductRepository) LoadCatalog() (*models.Catalog, error) {
	products, err := r.loadProducts()
	if err != nil {
		return nil, err
	}

	catalog := models.NewCatalog()
	catalog.Load(products)

	r.log.WithFields(logrus.Fields{
		"products":   catalog.TotalProducts(),
		"categories": len(catalog.Categories()),
	}).Info("Product catalog loaded")

	return catalog, nil
}

func (r *CSVProductRepository) loadProducts() ([]*models.Product, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var products []*models.Product
	line := 1
	for {
		record, err := reader.Read()
		if err != nil {
			break
		}
		line++

		product := r.mapRecord(columns, record)
		if product == nil {
			r.log.WithField("line", line).Warn("Skipping malformed product row")
			continue
		}
		products = append(products, product)
	}

	return products, nil
}

// mapRecord builds a Product from one row; nil when required identity fields
// are missing.
func (r *CSVProductRepository) mapRecord(columns map[string]int, record []string) *models.Product {
	get := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}
	getAny := func(names ...string) string {
		for _, name := range names {
			if v := get(name); v != "" {
				return v
			}
		}
		return ""
	}

	productID := get("product_id")
	name := get("name")
	if productID == "" || name == "" {
		return nil
	}

	rating := models.NewRating(
		safeFloat(getAny("rating_score", "rating")),
		safeInt(getAny("total_rating_count", "rating_count")),
		safeFloat(get("average_rating")),
	)

	stars := models.StarDistribution{
		Star0: safeInt(get("star_0_count")),
		Star1: safeInt(get("star_1_count")),
		Star2: safeInt(get("star_2_count")),
		Star3: safeInt(get("star_3_count")),
		Star4: safeInt(get("star_4_count")),
		Star5: safeInt(get("star_5_count")),
	}

	var socialProofs []string
	for i := 1; i <= 4; i++ {
		if proof := get(fmt.Sprintf("social_proof_%d", i)); proof != "" {
			socialProofs = append(socialProofs, proof)
		}
	}

	return &models.Product{
		ProductID:         productID,
		Name:              name,
		URL:               get("url"),
		Subcategory:       get("subcategory"),
		Description:       get("description"),
		Price:             models.ParsePrice(get("price")),
		Rating:            rating,
		StarDistribution:  stars,
		Comments:          r.parseComments(get("comments")),
		SocialProofs:      socialProofs,
		Color:             get("Renk"),
		Origin:            get("Menşei"),
		TotalCommentCount: safeInt(get("total_comment_count")),
		TotalQuestions:    safeInt(get("total_questions")),
	}
}

// parseComments decodes the JSON comment array embedded in one CSV field.
// Elements are mapped one by one so a single bad entry only loses itself;
// an undecodable array drops the comments, not the row. Fractional rates in
// the source are truncated.
func (r *CSVProductRepository) parseComments(raw string) []models.Comment {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		r.log.WithError(err).Debug("Dropping undecodable comment payload")
		return nil
	}

	var comments []models.Comment
	for _, element := range elements {
		var item struct {
			UserName  string  `json:"userFullName"`
			Rate      float64 `json:"rate"`
			Text      string  `json:"comment"`
			Date      string  `json:"date"`
			IsTrusted bool    `json:"is_trusted"`
			Likes     int     `json:"likes"`
		}
		if err := json.Unmarshal(element, &item); err != nil {
			r.log.WithError(err).Debug("Skipping undecodable comment entry")
			continue
		}
		if item.UserName == "" {
			item.UserName = "Anonim"
		}
		comments = append(comments, models.Comment{
			UserName:  item.UserName,
			Rate:      int(item.Rate),
			Text:      item.Text,
			Date:      item.Date,
			IsTrusted: item.IsTrusted,
			Likes:     item.Likes,
		})
	}
	return comments
}

func safeFloat(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

// safeInt truncates fractional values toward zero, matching how the source
// table stores count fields.
func safeInt(value string) int {
	return int(safeFloat(value))
}
