package config

// AuthConfig holds the shared secrets guarding the API.
type AuthConfig struct {
	// APIKey, when set, must accompany every standings request.
	APIKey string
	// AdminToken enables the admin refresh endpoint.
	AdminToken string
}

func loadAuth() AuthConfig {
	return AuthConfig{
		APIKey:     envOrDefault(envAPIKey, ""),
		AdminToken: envOrDefault(envAdminToken, ""),
	}
}
