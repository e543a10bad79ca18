package jwt

// Config holds JWT verifier configuration.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
}

// Manager verifies HS256 tokens issued by the auth service. It never issues tokens.
type Manager struct {
	secretKey []byte
	issuer    string
	audience  []string
}
