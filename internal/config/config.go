package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                         string
	MongoURI                     string
	MongoDatabase                string
	PingCollection               string
	VendorCollection             string
	ListingCollection            string
	BookingCollection            string
	ReviewCollection             string
	HelpfulVoteCollection        string
	AnnouncementCollection       string
	OTPChallengeCollection       string
	UserCollection               string
	FailedNotificationCollection string
	Timeout                      time.Duration
	Timezone                     string
	ServerLog                    *log.Logger
	JWTConfigs                   []JWTConfig
	JWTAudience                  string
	TokenTTL                     time.Duration
	OTPGatewayURL                string
	OTPGatewayAPIKey             string
	OTPGatewayTimeout            time.Duration
	OTPSecret                    string
	OTPTTL                       time.Duration
	MessengerEndpoint            string
	MessengerDestination         string
	MessengerTimeout             time.Duration
	AllowedOrigins               []string
	MediaDir                     string
	MediaBaseURL                 string
	HelpfulCookieSecret          []byte
	HelpfulCookieSecure          bool
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	messengerEndpoint := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_URL"))

	messengerDestination := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_DESTINATION"))
	if messengerDestination == "" {
		messengerDestination = "whatsapp"
	}

	messengerTimeout := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			messengerTimeout = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	helperSecret := strings.TrimSpace(os.Getenv("HELPFUL_VOTER_SECRET"))
	if helperSecret == "" {
		log.Fatal("HELPFUL_VOTER_SECRET must be configured")
	}
	helperCookieSecure := strings.EqualFold(strings.TrimSpace(os.Getenv("HELPFUL_COOKIE_SECURE")), "true")

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_JWT_ISSUER", "eventour-auth"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_LEGACY_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_LEGACY_JWT_ISSUER", "eventour-auth-legacy"),
			Secret: []byte(secret),
		})
	}

	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secrets not configured. Set AUTH_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))

	tokenTTL := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("AUTH_TOKEN_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			tokenTTL = parsed
		}
	}

	otpSecret := strings.TrimSpace(os.Getenv("OTP_SECRET"))
	if otpSecret == "" {
		log.Fatal("OTP_SECRET must be configured")
	}

	otpTTL := 5 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("OTP_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			otpTTL = parsed
		}
	}

	otpGatewayTimeout := 5 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OTP_GATEWAY_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			otpGatewayTimeout = parsed
		}
	}

	cfg := Config{
		Addr:                         envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:                     envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:                envOrDefault("MONGO_DB", "eventour"),
		VendorCollection:             envOrDefault("VENDOR_COLLECTION", "vendors"),
		ListingCollection:            envOrDefault("LISTING_COLLECTION", "listings"),
		BookingCollection:            envOrDefault("BOOKING_COLLECTION", "bookings"),
		ReviewCollection:             envOrDefault("REVIEW_COLLECTION", "reviews"),
		HelpfulVoteCollection:        envOrDefault("HELPFUL_VOTE_COLLECTION", "review_helpful_votes"),
		AnnouncementCollection:       envOrDefault("ANNOUNCEMENT_COLLECTION", "announcements"),
		OTPChallengeCollection:       envOrDefault("OTP_CHALLENGE_COLLECTION", "otp_challenges"),
		UserCollection:               envOrDefault("USER_COLLECTION", "users"),
		FailedNotificationCollection: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
		PingCollection:               envOrDefault("PING_COLLECTION", "pings"),
		Timeout:                      timeout,
		Timezone:                     envOrDefault("TIMEZONE", "Asia/Kolkata"),
		ServerLog:                    log.New(os.Stdout, "[eventour-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:                   jwtConfigs,
		JWTAudience:                  jwtAudience,
		TokenTTL:                     tokenTTL,
		OTPGatewayURL:                strings.TrimSpace(os.Getenv("OTP_GATEWAY_URL")),
		OTPGatewayAPIKey:             strings.TrimSpace(os.Getenv("OTP_GATEWAY_API_KEY")),
		OTPGatewayTimeout:            otpGatewayTimeout,
		OTPSecret:                    otpSecret,
		OTPTTL:                       otpTTL,
		MessengerEndpoint:            messengerEndpoint,
		MessengerDestination:         messengerDestination,
		MessengerTimeout:             messengerTimeout,
		AllowedOrigins:               allowedOrigins,
		MediaDir:                     envOrDefault("MEDIA_DIR", "./media"),
		MediaBaseURL:                 envOrDefault("MEDIA_BASE_URL", "/media"),
		HelpfulCookieSecret:          []byte(helperSecret),
		HelpfulCookieSecure:          helperCookieSecure,
	}

	cfg.ServerLog.Printf("loaded config: addr=%q db=%q messengerEndpoint=%q mediaDir=%q", cfg.Addr, cfg.MongoDatabase, messengerEndpoint, cfg.MediaDir)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
