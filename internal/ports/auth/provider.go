package auth

import "context"

// Provider é o backend de autenticação gerenciado dos administradores.
// A conta limitada (atendente) NÃO passa por aqui; ela vive na tabela usuarios.
type Provider interface {
	// SignIn autentica email+senha e devolve a sessão com o access token.
	SignIn(ctx context.Context, email, password string) (Session, error)

	// Verify valida um access token e devolve a identidade associada.
	Verify(ctx context.Context, token string) (Identity, error)

	// SignOut invalida o access token no provedor.
	SignOut(ctx context.Context, token string) error
}
