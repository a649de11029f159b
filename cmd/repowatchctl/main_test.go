package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"count":2,"lastUpdated":"2024-05-02T12:00:00.000Z","repositories":[
			{"name":"palera1n","html_url":"https://github.com/palera1n/palera1n","description":"iOS 15+ jailbreak","stargazers_count":120,"updated_at":"2024-05-02T10:00:00Z"},
			{"name":"dopamine","html_url":"https://github.com/opa334/Dopamine","description":"No description","stargazers_count":80,"updated_at":"2024-05-01T09:30:00Z"}
		]}`))
	}))
	t.Cleanup(server.Close)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"data", "--env", "does-not-exist.env", "--server", server.URL, "--match", "dopa"})
	t.Cleanup(func() {
		matchTerm = ""
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "2024-05-02T12:00:00.000Z (1 repositories)")
	assert.Contains(t, out.String(), "https://github.com/opa334/Dopamine")
	assert.NotContains(t, out.String(), "palera1n")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
