package main

import (
	"encoding/json"
	"net/http"

	"github.com/Unleash/unleash-client-go/v3"
	"github.com/julienschmidt/httprouter"
	"github.com/spf13/viper"

	"github.com/netra-cyber/netra-portal/models"
)

// Feature flags gating whole pages.
const (
	featureNetworkGraph = "netra.portal.network-graph"
	featureFileSearch   = "netra.portal.file-search"
	featureTools        = "netra.portal.tools"
)

// featureKeys are the short names templates use to show or hide navigation.
var featureKeys = map[string]string{
	featureNetworkGraph: "network-graph",
	featureFileSearch:   "file-search",
	featureTools:        "tools",
}

func initFeatures(listener interface{}, opts ...unleash.ConfigOption) error {
	opts = append([]unleash.ConfigOption{
		unleash.WithListener(listener),
		unleash.WithAppName(viper.GetString("service_name")),
		unleash.WithUrl(viper.GetString("unleash_path")),
	}, opts...)
	return unleash.Initialize(opts...)
}

func isEnabled(feature string) bool {
	return unleash.IsEnabled(feature, unleash.WithFallback(false))
}

// enabledFeatures is the per-request view of every flag.
func enabledFeatures() map[string]bool {
	out := make(map[string]bool, len(featureKeys))
	for flag, key := range featureKeys {
		out[key] = isEnabled(flag)
	}
	return out
}

// flagged answers 405 while feature is switched off.
func flagged(feature string, h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !isEnabled(feature) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusMethodNotAllowed)
			json.NewEncoder(w).Encode(models.Error{Detail: "This feature is switched off"})
			return
		}
		h(w, r, ps)
	}
}
