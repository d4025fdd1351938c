package infrastructure_test

import (
	"slices"
	"testing"
	"time"

	"github.com/JaimeStill/stylarch/internal/config"
	"github.com/JaimeStill/stylarch/internal/infrastructure"
	"github.com/JaimeStill/stylarch/pkg/database"
	"github.com/JaimeStill/stylarch/pkg/storage"
)

const azurite = "DefaultEndpointsProtocol=http;AccountName=stylarchstore;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://127.0.0.1:10000/stylarchstore;"

// offline points both systems at ports nothing listens on.
func offline() *config.Config {
	return &config.Config{
		Database: database.Config{
			Host:            "127.0.0.1",
			Port:            1,
			Name:            "stylarch",
			User:            "stylarch",
			SSLMode:         "disable",
			MaxOpenConns:    2,
			MaxIdleConns:    1,
			ConnMaxLifetime: "1m",
			ConnTimeout:     "100ms",
		},
		Storage: storage.Config{
			ContainerName:    "designs",
			ConnectionString: azurite,
			MaxRetries:       0,
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
		Version: "0.1.0",
	}
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(offline())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer infra.Database.Connection().Close()

	if infra.Lifecycle == nil || infra.Logger == nil || infra.Database == nil || infra.Storage == nil {
		t.Fatalf("incomplete infrastructure: %+v", infra)
	}
	if infra.Database.Ready() || infra.Storage.Ready() {
		t.Error("systems ready before Start")
	}
}

func TestNewInvalidStorage(t *testing.T) {
	cfg := offline()
	cfg.Storage.ConnectionString = "not-a-connection-string"

	if _, err := infrastructure.New(cfg); err == nil {
		t.Fatal("expected error for invalid storage connection string")
	}
}

func TestStartRegistersReadinessChecks(t *testing.T) {
	infra, err := infrastructure.New(offline())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := infra.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if infra.Lifecycle.Ready() {
		t.Error("ready before startup completes")
	}

	// Storage retries against the missing emulator until shutdown cancels it.
	time.AfterFunc(time.Second, func() { infra.Lifecycle.Shutdown(5 * time.Second) })
	infra.Lifecycle.WaitForStartup()

	pending := infra.Lifecycle.Pending()
	if !slices.Contains(pending, "database") {
		t.Errorf("pending: got %v, want database listed", pending)
	}
	if slices.Contains(pending, "startup") {
		t.Errorf("pending: got %v, startup should have finished", pending)
	}
}
