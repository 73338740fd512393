package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	apphttp "bedrockrag/internal/http"
	"bedrockrag/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the catalog and RAG service over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		h := apphttp.NewHandler(a.service, a.client)
		router := apphttp.NewRouter(h)
		handler := corsMiddleware(router)

		addr := ":" + a.cfg.Server.Port
		logger.Get().Infow("API listening", "addr", addr)
		return http.ListenAndServe(addr, handler)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "http://localhost:3000" || origin == "http://127.0.0.1:3000" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
