// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig carries framework-level settings (ports, TLS, logging,
// request limits); AppConfig is everything specific to ConGreG8.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // secret key for signing session cookies
	SessionName   string // cookie name
	SessionDomain string // cookie domain (blank means current host)

	// Geocoding (Geoapify-compatible forward geocoder). An empty API key
	// disables geocoding; listings are stored without coordinates.
	GeocodeBaseURL string
	GeocodeAPIKey  string

	// CORS configuration for the browser frontend.
	CORSOrigins []string

	// ExposeErrors echoes internal error detail in 500 responses.
	// Enabled automatically outside prod.
	ExposeErrors bool
}
