//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestClipscoutWithMySQL tests the clipscout CLI with a MySQL backend.
func TestClipscoutWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "clipscout",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/clipscout?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("CLIPSCOUT_CACHE_BACKEND", "mysql")
	_ = os.Setenv("CLIPSCOUT_CACHE_DB_CONNECT", connStr)
	_ = os.Setenv("CLIPSCOUT_RUN_BACKEND", "mysql")
	_ = os.Setenv("CLIPSCOUT_RUN_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("CLIPSCOUT_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("CLIPSCOUT_CACHE_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("CLIPSCOUT_RUN_BACKEND") }()
	defer func() { _ = os.Unsetenv("CLIPSCOUT_RUN_DB_CONNECT") }()

	runBackendSmoke(t)
}

// TestClipscoutWithPostgres tests the clipscout CLI with a PostgreSQL backend.
func TestClipscoutWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("CLIPSCOUT_CACHE_BACKEND", "postgresql")
	_ = os.Setenv("CLIPSCOUT_CACHE_DB_CONNECT", connStr)
	_ = os.Setenv("CLIPSCOUT_RUN_BACKEND", "postgresql")
	_ = os.Setenv("CLIPSCOUT_RUN_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("CLIPSCOUT_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("CLIPSCOUT_CACHE_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("CLIPSCOUT_RUN_BACKEND") }()
	defer func() { _ = os.Unsetenv("CLIPSCOUT_RUN_DB_CONNECT") }()

	runBackendSmoke(t)
}

// runBackendSmoke exercises the store-backed commands against the configured backend.
func runBackendSmoke(t *testing.T) {
	t.Helper()

	// Start from clean stores
	require.NoError(t, runClipscoutCommand(t, "cache", "clear"))
	require.NoError(t, runClipscoutCommand(t, "runs", "clear"))

	// Run a scan against a small fixture directory
	curveDir := t.TempDir()
	writeCurveExport(t, curveDir, "fixture-a", 120, 50, 80, 0.40, 0.60)
	require.NoError(t, runClipscoutCommand(t, "scan", curveDir, "--limit", "5"))

	// Status commands must succeed after a populated run
	require.NoError(t, runClipscoutCommand(t, "cache", "status"))
	require.NoError(t, runClipscoutCommand(t, "runs", "status"))
}

func runClipscoutCommand(t *testing.T, args ...string) error {
	clipscoutPath := getClipscoutBinary()
	cmd := exec.Command(clipscoutPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
