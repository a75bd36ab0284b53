package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netra-cyber/netra-portal/models"
)

func TestInfo(t *testing.T) {
	setup()

	req := httptest.NewRequest("GET", "/info", nil)
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var infoResp models.Info
	err := json.Unmarshal(resp.Body.Bytes(), &infoResp)
	if err != nil {
		t.Fatal("Error decoding JSON response from 'GET /info', ", err.Error())
	}

	assert.Equal(t, viper.GetString("service_name"), infoResp.Name)
	assert.Equal(t, backendURL, infoResp.Backend)
	assert.True(t, infoResp.Features["tools"])
}

func TestInfoReportsBackendTheClientUses(t *testing.T) {
	setup()
	viper.Set("backend_url", backendURL+"/")
	defer viper.Set("backend_url", backendURL)
	require.NoError(t, configure())

	router.ServeHTTP(resp, httptest.NewRequest("GET", "/info", nil))

	var infoResp models.Info
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &infoResp))
	assert.Equal(t, backendURL, infoResp.Backend)
}
