package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectDBSurvivesUnparseableCredentials(t *testing.T) {
	// Unescaped credentials make the mongodb+srv URI invalid; the server
	// must still get a usable client handle and start listening.
	t.Setenv("DB_USER", "singerx")
	t.Setenv("DB_PASS", "p@ss/word")

	client := ConnectDB()
	require.NotNil(t, client)
	require.NotNil(t, client.Database("singerx"))
}
