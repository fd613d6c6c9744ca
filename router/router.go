package router

import (
	"net/http"

	"wordthink/config"
	thinkHandler "wordthink/internal/think"
	"wordthink/internal/think/repository"
	"wordthink/internal/think/service"
	"wordthink/middleware"
	"wordthink/socket"

	"github.com/jmoiron/sqlx"
)

func Setup(cfg *config.Config, db *sqlx.DB, hub *socket.Hub, dict service.DictionaryClient) http.Handler {
	mux := http.NewServeMux()

	// Live public feed; anyone may follow a user's public thinks.
	mux.HandleFunc("/ws/thinks", func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			http.Error(w, "Missing username parameter", http.StatusBadRequest)
			return
		}
		socket.ServeWs(hub, w, r, username)
	})

	// REST API
	thinkRepo := repository.NewThinkRepository(db)
	userRepo := repository.NewUserRepository(db)
	wordBookRepo := repository.NewWordBookRepository(db)
	txManager := repository.NewTxManager(db)
	thinkService := service.NewThinkService(
		thinkRepo, userRepo, wordBookRepo, dict,
		middleware.SessionAuthenticator{}, txManager, hub, cfg.Think,
	)
	thinkHandler := thinkHandler.NewThinkHandler(thinkService)

	auth := middleware.AuthMiddleware(cfg.Auth.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.Auth.JWTSecret)

	mux.Handle("/api/thinks/create", auth(http.HandlerFunc(thinkHandler.CreateThink)))
	mux.Handle("/api/thinks/update", auth(http.HandlerFunc(thinkHandler.ChangeThink)))
	mux.Handle("/api/thinks/delete", auth(http.HandlerFunc(thinkHandler.DeleteThink)))
	mux.Handle("/api/thinks", auth(http.HandlerFunc(thinkHandler.GetUserThinks)))
	mux.Handle("/api/thinks/public", http.HandlerFunc(thinkHandler.GetPublicThinks))
	mux.Handle("/api/thinks/word", optionalAuth(http.HandlerFunc(thinkHandler.GetThinksByWord)))
	mux.Handle("/api/wordbook", auth(http.HandlerFunc(thinkHandler.GetWordBook)))
	mux.Handle("/health", Health(db))

	return Chain(
		middleware.RequestID,
		middleware.Recovery,
		middleware.Logger,
		middleware.CORSMiddleware(cfg.CORS),
	)(mux)
}

// Chain applies mws so that the first one runs outermost.
func Chain(mws ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
