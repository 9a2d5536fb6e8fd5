package middleware

import (
	"context"
	"net/http"
	"strings"

	"vet-clinic-records/internal/domain/session"

	"go.uber.org/zap"
)

// SessionContext resolve a identidade ativa do request e a coloca no context.
// - Sem token => segue anônimo; os handlers decidem se exigem auth.
// - Falha do store de sessões => 503 (o erro é exposto, não engolido).
func SessionContext(resolver *session.Resolver, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))

			sess := session.Context{Identity: session.Anonymous()}
			if token != "" {
				id, err := resolver.Resolve(r.Context(), token)
				if err != nil {
					if log != nil {
						log.Error("session resolution failed", zap.Error(err))
					}
					http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
					return
				}
				sess = session.Context{Identity: id, Token: token}
			}

			ctx := session.NewContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession devolve o contexto de sessão do request.
func GetSession(ctx context.Context) (session.Context, bool) {
	return session.FromContext(ctx)
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
