package repositories

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Desire4travels/Chatbot/internal/models/db_models"
	"github.com/Desire4travels/Chatbot/internal/models/vendors"
)

// VendorIndexRepository is the vector index boundary: upsert a record into
// its category partition, and similarity-query one partition restricted to
// a city set. Matches always carry full stored metadata.
type VendorIndexRepository interface {
	Upsert(ctx context.Context, record vendors.ServiceRecord, embedding pgvector.Vector) error
	Query(ctx context.Context, category vendors.Category, vector pgvector.Vector, topK int, cities []string) ([]vendors.Match, error)
}

type VendorIndexRepositoryImpl struct {
	db *gorm.DB
}

func NewVendorIndexRepository(db *gorm.DB) VendorIndexRepository {
	return &VendorIndexRepositoryImpl{db: db}
}

func (r *VendorIndexRepositoryImpl) Upsert(ctx context.Context, record vendors.ServiceRecord, embedding pgvector.Vector) error {
	row := db_models.VendorEmbeddingFromRecord(record, embedding)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert vendor %s: %w", record.ID, err)
	}
	return nil
}

type vendorMatchRow struct {
	db_models.VendorEmbedding
	Similarity float64
}

func (r *VendorIndexRepositoryImpl) Query(ctx context.Context, category vendors.Category, vector pgvector.Vector, topK int, cities []string) ([]vendors.Match, error) {
	if len(cities) == 0 {
		return nil, nil
	}

	var rows []vendorMatchRow

	vecStr := vector.String()

	// Cosine distance (<=>): closer to 0 is better, so similarity is its
	// complement and the ORDER BY already yields descending score.
	query := `
        SELECT *, 1 - (embedding <=> ?) AS similarity
        FROM vendor_embeddings
        WHERE category = ? AND city IN ?
        ORDER BY embedding <=> ?
        LIMIT ?
    `

	err := r.db.WithContext(ctx).
		Raw(query, vecStr, string(category), cities, vecStr, topK).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query %s vendors: %w", category, err)
	}

	matches := make([]vendors.Match, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, vendors.Match{
			Record: row.ToRecord(),
			Score:  row.Similarity,
		})
	}
	return matches, nil
}
