package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"game-insights/core/storage"
	mergemodels "game-insights/feature/merge/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MergedSource provides read access to the merged records.
type MergedSource interface {
	ListAll(ctx context.Context) ([]mergemodels.MergedRecord, error)
}

// Service exports the merged store as CSV, either to a local writer or
// as an object upload. Rows are written in store order, so exports of
// the same merge result are byte-identical.
type Service struct {
	merged  MergedSource
	storage storage.Client
	bucket  string
	logger  *zap.Logger
}

// NewService creates a new export service. The storage client may be nil
// when only local writes are needed.
func NewService(merged MergedSource, storageClient storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		merged:  merged,
		storage: storageClient,
		bucket:  bucket,
		logger:  logger,
	}
}

var csvHeader = []string{
	"merged_id", "game_id", "sale_id",
	"title", "rating", "genres", "plays", "wishlist",
	"release_date", "release_year", "platform", "team",
	"sales_platform", "publisher",
	"na_sales", "eu_sales", "jp_sales", "other_sales", "global_sales",
}

// WriteCSV streams the merged store to w as CSV with a header row.
// Returns the number of data rows written.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer) (int, error) {
	records, err := s.merged.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list merged records: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range records {
		if err := cw.Write(csvRow(r)); err != nil {
			return 0, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush csv: %w", err)
	}
	return len(records), nil
}

// Upload serializes the merged store and puts it into the configured
// bucket, creating the bucket on first use. Returns the object name.
func (s *Service) Upload(ctx context.Context) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("storage client not configured")
	}

	var buf bytes.Buffer
	rows, err := s.WriteCSV(ctx, &buf)
	if err != nil {
		return "", err
	}

	exists, err := s.storage.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
	}
	if !exists {
		if err := s.storage.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %q: %w", s.bucket, err)
		}
	}

	objectName := fmt.Sprintf("merged-%s.csv", time.Now().UTC().Format("20060102-150405"))
	_, err = s.storage.PutObject(ctx, s.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %q: %w", objectName, err)
	}

	s.logger.Info("Exported merged records",
		zap.String("bucket", s.bucket),
		zap.String("object", objectName),
		zap.Int("rows", rows))
	return objectName, nil
}

func csvRow(r mergemodels.MergedRecord) []string {
	rating := ""
	if r.Rating != nil {
		rating = strconv.FormatFloat(*r.Rating, 'f', -1, 64)
	}
	releaseDate := ""
	if r.ReleaseDate != nil {
		releaseDate = r.ReleaseDate.Format("2006-01-02")
	}
	return []string{
		strconv.FormatInt(r.ID, 10),
		strconv.FormatInt(r.GameID, 10),
		strconv.FormatInt(r.SaleID, 10),
		r.Title,
		rating,
		r.Genres,
		strconv.FormatFloat(r.Plays, 'f', -1, 64),
		strconv.FormatFloat(r.Wishlist, 'f', -1, 64),
		releaseDate,
		strconv.Itoa(r.ReleaseYear),
		r.Platform,
		r.Team,
		r.SalesPlatform,
		r.Publisher,
		strconv.FormatFloat(r.NASales, 'f', -1, 64),
		strconv.FormatFloat(r.EUSales, 'f', -1, 64),
		strconv.FormatFloat(r.JPSales, 'f', -1, 64),
		strconv.FormatFloat(r.OtherSales, 'f', -1, 64),
		strconv.FormatFloat(r.GlobalSales, 'f', -1, 64),
	}
}
