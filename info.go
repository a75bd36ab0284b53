package main

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/viper"

	"github.com/netra-cyber/netra-portal/models"
)

func info(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	info := models.Info{
		Name:     viper.GetString("service_name"),
		Version:  viper.GetString("app_version"),
		Backend:  api.BaseURL(),
		Features: enabledFeatures(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}
