package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/vidprompt/vidprompt/internal/analyzer"
	"github.com/vidprompt/vidprompt/internal/captioner"
	"github.com/vidprompt/vidprompt/internal/config"
	"github.com/vidprompt/vidprompt/internal/embeddings"
	"github.com/vidprompt/vidprompt/internal/storage"
)

func main() {
	ctx := context.Background()

	// Configure logger
	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: "15:04:05",
		}),
	)

	// Optional .env for database credentials
	_ = godotenv.Load()

	// Parse command line arguments
	videoPath := ""
	configPath := ""
	outputDir := ""
	frameCount := 0
	useDB := false

	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "--video":
			if i+1 < len(os.Args) {
				videoPath = os.Args[i+1]
				i++
			}
		case "--output":
			if i+1 < len(os.Args) {
				outputDir = os.Args[i+1]
				i++
			}
		case "--config":
			if i+1 < len(os.Args) {
				configPath = os.Args[i+1]
				i++
			}
		case "--frames":
			if i+1 < len(os.Args) {
				if n, err := strconv.Atoi(os.Args[i+1]); err == nil {
					frameCount = n
				}
				i++
			}
		case "--store":
			useDB = true
		}
	}

	if videoPath == "" {
		fmt.Println("Usage: vidprompt --video path/to/video.mp4 [--output dir] [--frames n] [--config file] [--store]")
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if frameCount > 0 {
		cfg.FrameCount = frameCount
	}
	if useDB {
		cfg.Postgres.Enabled = true
	}
	if pw := os.Getenv("VIDPROMPT_DB_PASSWORD"); pw != "" {
		cfg.Postgres.Password = pw
	}

	videoName := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	// Initialize the caption store
	var store storage.Store
	if cfg.Postgres.Enabled {
		pgConfig := storage.PostgresConfig{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			DBName:   cfg.Postgres.DBName,
		}
		if err := storage.InitSchema(ctx, pgConfig); err != nil {
			log.Fatalf("Failed to initialize database schema: %v", err)
		}

		embedder := embeddings.NewService(cfg.Workers)
		defer embedder.Close()

		pgStore, err := storage.NewPostgresStore(ctx, pgConfig, embedder, logger, videoName)
		if err != nil {
			log.Fatalf("Failed to connect caption store: %v", err)
		}
		defer pgStore.Close()
		store = pgStore
	} else {
		store = storage.NewFileStore(cfg.OutputDir, videoName)
	}

	// Initialize the captioner
	visionCaptioner, err := captioner.NewAgentCaptioner(ctx, logger, cfg.Ollama.BaseURL, cfg.Ollama.Port, cfg.Ollama.Model)
	if err != nil {
		log.Fatalf("Failed to initialize vision captioner: %v", err)
	}

	// Process video
	fmt.Printf("Starting video analysis...\n")
	processor := analyzer.NewProcessor(visionCaptioner, store, logger, cfg.Workers, cfg.FrameCount)
	report, err := processor.ProcessVideo(ctx, videoPath, cfg.OutputDir)
	if err != nil {
		log.Printf("Error processing video: %v", err)
		os.Exit(1)
	}

	printReport(report)
}

func printReport(report *analyzer.Report) {
	fmt.Printf("\nAnalysis %s\n", report.ID)
	fmt.Printf("Video: %s (%dx%d, %.2f fps, %.2fs, codec %s, audio: %v)\n",
		report.VideoPath,
		report.Info.Width, report.Info.Height,
		report.Info.FPS, report.Info.Duration,
		report.Info.VideoCodec, report.Info.HasAudio)

	fmt.Println("\nKey frames:")
	for _, caption := range report.Captions {
		fmt.Printf("  [%6.2fs] %s: %s\n", caption.Timestamp, caption.Frame, caption.Content)
	}

	fmt.Printf("\nComposite prompt:\n  %s\n", report.CompositePrompt)

	attribution := report.Attribution
	fmt.Printf("\nLikely generator: %s (%s)\n", attribution.Model, attribution.Description)
	fmt.Printf("Confidence: %.2f\n", attribution.Confidence)
	if len(attribution.Features) > 0 {
		fmt.Println("Matched features:")
		for feature, score := range attribution.Features {
			fmt.Printf("  - %s: %.2f\n", feature, score)
		}
	}
	if len(attribution.KeywordMatches) > 0 {
		fmt.Printf("Trigger keywords: %s\n", strings.Join(attribution.KeywordMatches, ", "))
	}
}
