package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/vidprompt/vidprompt/internal/embeddings"
	"github.com/vidprompt/vidprompt/internal/models"
)

// PostgresConfig holds connection details for PostgreSQL
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func (c PostgresConfig) connString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.User, c.Password, c.Host, c.Port, c.DBName,
	)
}

// PostgresStore persists caption results with an embedding column so
// similar captions can be found across past runs.
type PostgresStore struct {
	pool      *pgxpool.Pool
	embedder  *embeddings.Service
	logger    *slog.Logger
	videoID   int
	videoName string
}

// NewPostgresStore creates a new PostgreSQL caption store
func NewPostgresStore(ctx context.Context, config PostgresConfig, embedder *embeddings.Service, logger *slog.Logger, videoName string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, config.connString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{
		pool:      pool,
		embedder:  embedder,
		logger:    logger,
		videoName: videoName,
	}

	videoID, err := store.getOrCreateVideo(ctx, videoName)
	if err != nil {
		return nil, err
	}
	store.videoID = videoID

	return store, nil
}

// Close closes the database connection
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// getOrCreateVideo gets an existing video entry or creates a new one
func (s *PostgresStore) getOrCreateVideo(ctx context.Context, videoName string) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx,
		"SELECT id FROM videos WHERE name = $1",
		videoName).Scan(&id)

	if err == nil {
		return id, nil
	} else if err != pgx.ErrNoRows {
		return 0, fmt.Errorf("error checking for existing video: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		"INSERT INTO videos (name, created_at) VALUES ($1, $2) RETURNING id",
		videoName, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create video entry: %w", err)
	}

	return id, nil
}

// AddResult stores one frame caption together with its embedding
func (s *PostgresStore) AddResult(ctx context.Context, result models.CaptionResult) error {
	frameNum := 0
	if _, err := fmt.Sscanf(result.Frame, "frame_%04d.jpg", &frameNum); err != nil {
		return fmt.Errorf("invalid frame filename format: %s", result.Frame)
	}

	var frameID int
	err := s.pool.QueryRow(ctx,
		`INSERT INTO frames
        (video_id, frame_number, frame_path, timestamp, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`,
		s.videoID, frameNum, result.Frame, result.Timestamp, time.Now()).Scan(&frameID)
	if err != nil {
		return fmt.Errorf("failed to store frame information: %w", err)
	}

	embedding := <-s.embedder.GetEmbedding(result.Content)
	if embedding.Error != nil {
		// Keep the caption even when the embedding queue is saturated.
		s.logger.Warn("failed to generate embedding", "frame", result.Frame, "error", embedding.Error)
		embedding.Embedding = make([]float32, embeddings.Dimensions)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO captions
        (frame_id, content, embedding, created_at)
        VALUES ($1, $2, $3, $4)`,
		frameID, result.Content, pgvector.NewVector(embedding.Embedding), time.Now())
	if err != nil {
		return fmt.Errorf("failed to store caption: %w", err)
	}

	return nil
}

// Flush implements the Store interface - no-op for Postgres as we save immediately
func (s *PostgresStore) Flush() error {
	return nil
}

// SearchSimilarCaptions finds frames of this video whose captions are close
// to the query text
func (s *PostgresStore) SearchSimilarCaptions(ctx context.Context, query string, limit int) ([]models.CaptionSearchResult, error) {
	queryEmbedding := <-s.embedder.GetEmbedding(query)
	if queryEmbedding.Error != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", queryEmbedding.Error)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT f.frame_number, f.frame_path, c.content,
        1 - (c.embedding <=> $1) AS similarity
        FROM captions c
        JOIN frames f ON c.frame_id = f.id
        JOIN videos v ON f.video_id = v.id
        WHERE v.id = $2
        ORDER BY c.embedding <=> $1
        LIMIT $3`,
		pgvector.NewVector(queryEmbedding.Embedding), s.videoID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar captions: %w", err)
	}
	defer rows.Close()

	var results []models.CaptionSearchResult
	for rows.Next() {
		var result models.CaptionSearchResult
		if err := rows.Scan(&result.FrameNumber, &result.FramePath,
			&result.Description, &result.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan search results: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// InitSchema creates the database schema if it doesn't exist
func InitSchema(ctx context.Context, config PostgresConfig) error {
	conn, err := pgx.Connect(ctx, config.connString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'vector')").Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for vector extension: %w", err)
	}

	if !exists {
		if _, err = conn.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
			return fmt.Errorf("failed to create vector extension: %w", err)
		}
	}

	_, err = conn.Exec(ctx, fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS videos (
            id SERIAL PRIMARY KEY,
            name VARCHAR(255) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            UNIQUE(name)
        );

        CREATE TABLE IF NOT EXISTS frames (
            id SERIAL PRIMARY KEY,
            video_id INTEGER REFERENCES videos(id) ON DELETE CASCADE,
            frame_number INTEGER NOT NULL,
            frame_path VARCHAR(255) NOT NULL,
            timestamp DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            UNIQUE(video_id, frame_number)
        );

        CREATE TABLE IF NOT EXISTS captions (
            id SERIAL PRIMARY KEY,
            frame_id INTEGER REFERENCES frames(id) ON DELETE CASCADE,
            content TEXT NOT NULL,
            embedding vector(%d),
            created_at TIMESTAMPTZ NOT NULL
        );
    `, embeddings.Dimensions))
	if err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	_, err = conn.Exec(ctx, `
        CREATE INDEX IF NOT EXISTS idx_frames_video_id ON frames(video_id);
        CREATE INDEX IF NOT EXISTS idx_captions_frame_id ON captions(frame_id);
        CREATE INDEX IF NOT EXISTS idx_embedding_vector ON captions USING ivfflat (embedding vector_l2_ops) WITH (lists = 100);
    `)
	if err != nil {
		return fmt.Errorf("failed to create database indexes: %w", err)
	}

	return nil
}
