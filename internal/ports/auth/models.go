package auth

// Identity representa a identidade de administrador extraída do provedor.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// Session é o resultado de um sign-in bem-sucedido.
type Session struct {
	AccessToken string
	Identity    Identity
}
