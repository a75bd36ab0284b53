package main

import (
	"crypto/sha256"
	"net/http"
	"sync"

	"github.com/gorilla/csrf"
	"github.com/julienschmidt/httprouter"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func addRoutes(router *httprouter.Router) {
	router.GET("/info", info)

	router.GET("/login", getLogin)
	router.POST("/login", postLogin)
	router.GET("/logout", getLogout)
	router.GET("/password", authed(getPassword))
	router.POST("/password", authed(postPassword))

	router.GET("/", authed(getDashboard))
	router.POST("/cases", authed(postCase))
	router.GET("/cases/:id", authed(getCase))
	router.POST("/cases/:id/status", authed(postCaseStatus))
	router.POST("/cases/:id/evidence", authed(postEvidence))
	router.POST("/cases/:id/requests", authed(postCaseRequests))
	router.POST("/cases/:id/financial", authed(postFinancialEntity))
	router.POST("/cases/:id/npci", authed(postNPCIRequest))
	router.GET("/evidence/:id/download", authed(getEvidenceDownload))
	router.GET("/evidence/:id/view", authed(getEvidenceView))

	router.GET("/requests", authed(getRequests))
	router.POST("/requests/:id/approve", authed(postApproveRequest))
	router.POST("/requests/:id/reject", authed(postRejectRequest))
	router.POST("/requests/:id/dispatch", authed(postDispatchRequest))
	router.POST("/requests/:id/upload", authed(postRequestUpload))
	router.GET("/requests/:id/letter", authed(getRequestLetter))

	router.GET("/analytics", authed(getAnalytics))
	router.GET("/analytics/search", authed(getSearch))
	router.GET("/analytics/report", authed(getReport))
	router.GET("/analytics/network", flagged(featureNetworkGraph, authed(getNetwork)))
	router.POST("/analytics/file-search", flagged(featureFileSearch, authed(postFileSearch)))
	router.GET("/analytics/cdr", authed(getCDR))

	router.GET("/admin", authed(getAdmin))
	router.POST("/admin/register", authed(postRegister))

	router.GET("/tools", flagged(featureTools, authed(getTools)))
	router.GET("/tools/ip-lookup", flagged(featureTools, authed(getIPLookup)))
	router.POST("/tools/tower-dump", flagged(featureTools, authed(postTowerDump)))
}

// csrfKey derives the 32 byte CSRF key from config. An empty key still works for a single
// instance but tokens will not survive a restart.
func csrfKey() []byte {
	sum := sha256.Sum256([]byte(viper.GetString("csrf_key") + viper.GetString("service_name")))
	return sum[:]
}

// protect puts CSRF protection in front of every form post.
func protect(h http.Handler) http.Handler {
	return csrf.Protect(csrfKey(),
		csrf.Secure(viper.GetBool("secure_cookies")),
		csrf.Path("/"),
		csrf.FieldName("csrf_token"),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("csrf check failed", zap.String("path", r.URL.Path), zap.Error(csrf.FailureReason(r)))
			http.Error(w, "Form expired, reload the page and try again.", http.StatusForbidden)
		})),
	)(h)
}

func startServer(router http.Handler, wg *sync.WaitGroup) *http.Server {
	srv := &http.Server{
		Addr:    ":" + viper.GetString("listen_port"),
		Handler: protect(router),
	}

	go func() {
		defer wg.Done()
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", zap.Error(err))
		}
	}()

	return srv
}
