package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("POSTGRES_CONN", "postgres://u:p@localhost/auctionbase?sslmode=disable")
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("RUN_MIGRATIONS", "false")
	t.Setenv("READ_TIMEOUT", "3s")

	c, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.NoError(t, err)
	require.Equal(t, ":9090", c.ServerAddr)
	require.False(t, c.RunMigrations)
	require.Equal(t, 3*time.Second, c.ReadTimeout)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("POSTGRES_CONN", "postgres://env")

	c, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-postgresConn", "postgres://flag", "-logLevel", "debug"})
	require.NoError(t, err)
	require.Equal(t, "postgres://flag", c.PostgresConn)
	require.Equal(t, "debug", c.LogLevel)
}

func TestLoad_MissingConn(t *testing.T) {
	t.Setenv("POSTGRES_CONN", "")

	_, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.Error(t, err)
}

func TestLookupEnvBool_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_BOOL", "maybe")
	require.True(t, LookupEnvBool("SOME_BOOL", true))
}
