package config

import "os"

// Config carries everything read from the process environment at startup.
type Config struct {
	Port             string
	MongoURI         string
	MongoDB          string
	StripeSecretKey  string
	FrontendURL      string
	PostmarkAPIToken string
	EmailSender      string
}

// Load reads the configuration from the environment. MONGO_URI deliberately
// has no default: connecting without one is fatal at startup.
func Load() Config {
	return Config{
		Port:             getenv("PORT", "8000"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getenv("MONGO_DB", "fooddelivery"),
		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		FrontendURL:      getenv("FRONTEND_URL", "https://food-delivery-frontend-s2l9.onrender.com"),
		PostmarkAPIToken: os.Getenv("POSTMARK_API_TOKEN"),
		EmailSender:      os.Getenv("EMAIL_SENDER"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
