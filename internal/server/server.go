package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/eventour-app/event-backend/internal/config"
	mongodoc "github.com/eventour-app/event-backend/internal/infrastructure/mongo"
	commonhttp "github.com/eventour-app/event-backend/internal/interfaces/http/common"
	partnerhttp "github.com/eventour-app/event-backend/internal/interfaces/http/partner"
	publichttp "github.com/eventour-app/event-backend/internal/interfaces/http/public"
	"github.com/eventour-app/event-backend/internal/media"
	"github.com/eventour-app/event-backend/internal/otp"
	partnerapp "github.com/eventour-app/event-backend/internal/partner/application"
	publicapp "github.com/eventour-app/event-backend/internal/public/application"
)

// Server is the composition root. It owns the HTTP lifecycle and injects
// application services into the public and vendor dashboard handlers.
type Server struct {
	logger               *log.Logger
	client               *mongo.Client
	database             *mongo.Database
	pings                *mongo.Collection
	vendors              *mongo.Collection
	reviews              *mongo.Collection
	failedNotifications  *mongo.Collection
	vendorQueryService   publicapp.VendorQueryService
	listingQueryService  publicapp.ListingQueryService
	reviewQueryService   publicapp.ReviewQueryService
	reviewCommandService publicapp.ReviewCommandService
	bookingCommands      publicapp.BookingCommandService
	bookingQueries       publicapp.BookingQueryService
	profileService       partnerapp.ProfileService
	listingService       partnerapp.ListingService
	bookingService       partnerapp.BookingService
	announcementService  partnerapp.AnnouncementService
	otpService           *otp.Service
	tokens               commonhttp.TokenIssuer
	mediaStore           *media.Store
	mediaDir             string
	mediaBaseURL         string
	location             *time.Location
	helpfulCookieSecret  []byte
	helpfulCookieSecure  bool
	jwtConfigs           []config.JWTConfig
	jwtAudience          string
	httpClient           *http.Client
	messengerEndpoint    string
	messengerDestination string
	addr                 string
	allowedOrigins       []string
}

type authenticatedUser = commonhttp.AuthenticatedUser

// Run starts the HTTP server and assembles routing and middleware.
func (s *Server) Run() error {
	if err := s.ensureSamplePing(context.Background()); err != nil {
		s.logger.Printf("failed to prepare the sample ping document: %v", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())
	router.Get("/ping", s.pingHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:               s.logger,
		VendorQueries:        s.vendorQueryService,
		ListingQueries:       s.listingQueryService,
		ReviewQueries:        s.reviewQueryService,
		ReviewCommands:       s.reviewCommandService,
		BookingCommands:      s.bookingCommands,
		BookingQueries:       s.bookingQueries,
		OTPService:           s.otpService,
		Tokens:               s.tokens,
		Vendors:              s.vendors,
		Reviews:              s.reviews,
		FailedNotifications:  s.failedNotifications,
		Location:             s.location,
		HelpfulCookieSecret:  s.helpfulCookieSecret,
		HelpfulCookieSecure:  s.helpfulCookieSecure,
		HTTPClient:           s.httpClient,
		MessengerEndpoint:    s.messengerEndpoint,
		MessengerDestination: s.messengerDestination,
	})
	publicHandler.Register(router, s.authMiddleware)

	partnerHandler := partnerhttp.NewHandler(partnerhttp.Config{
		Logger:        s.logger,
		Profiles:      s.profileService,
		Listings:      s.listingService,
		Bookings:      s.bookingService,
		Announcements: s.announcementService,
		ReviewQueries: s.reviewQueryService,
		Media:         s.mediaStore,
	})
	router.Route("/vendor", func(r chi.Router) {
		partnerHandler.Register(r, s.authMiddleware)
	})

	if s.mediaDir != "" && strings.HasPrefix(s.mediaBaseURL, "/") {
		prefix := strings.TrimRight(s.mediaBaseURL, "/")
		router.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.Dir(s.mediaDir))))
	}

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on %s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

func normaliseBaseURL(input string) string {
	trimmed := strings.TrimSpace(input)
	return strings.TrimRight(trimmed, "/")
}

// withCORS returns a middleware that applies CORS headers for the allowed
// origins.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports MongoDB reachability for monitoring probes.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// authMiddleware verifies the bearer token and puts the authenticated user
// into the request context. Shared by the public and dashboard routers.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "a Bearer token is required"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "the access token is empty"})
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		user := authenticatedUser{
			ID:    claims.Subject,
			Name:  claims.Name,
			Phone: claims.Phone,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseAuthToken tries each configured JWT secret in order and checks the
// signature plus issuer/audience consistency.
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtConfigs) == 0 {
		return nil, fmt.Errorf("authentication is not configured")
	}

	for _, cfg := range s.jwtConfigs {
		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
			}
			return cfg.Secret, nil
		}, jwt.WithLeeway(30*time.Second))

		if err != nil || !token.Valid {
			continue
		}

		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			continue
		}

		now := time.Now()
		if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
			continue
		}
		if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
			continue
		}
		if claims.Subject == "" {
			continue
		}
		if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
			continue
		}

		return claims, nil
	}

	return nil, fmt.Errorf("the access token is invalid")
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type authClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type pingDocument struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Message   string             `json:"message" bson:"message"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// pingHandler returns the newest record from the pings collection. A cheap
// way to check seeding and Mongo connectivity.
func (s *Server) pingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		var doc pingDocument
		err := s.pings.FindOne(ctx, bson.D{}, opts).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.writeJSON(w, http.StatusNotFound, map[string]string{
				"status":  "not_found",
				"message": "the pings collection is empty",
			})
			return
		}
		if err != nil {
			s.logger.Printf("failed to fetch from the pings collection: %v", err)
			s.writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "failed to fetch from the pings collection",
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]any{
			"message":   doc.Message,
			"createdAt": doc.CreatedAt.In(s.location),
			"id":        doc.ID.Hex(),
		})
	}
}

// ensureSamplePing guarantees at least one document in the pings collection
// so /ping never 404s on a fresh environment.
func (s *Server) ensureSamplePing(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := s.pings.CountDocuments(ctx, bson.D{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = s.pings.InsertOne(ctx, bson.M{
		"message":   "pong",
		"createdAt": time.Now().In(s.location),
	})
	return err
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("failed to encode the JSON response: %v", err)
	}
}

// shutdown disconnects the MongoDB client with a timeout.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("error while disconnecting MongoDB: %v", err)
	}
}

// waitForShutdown watches ListenAndServe and OS signals to implement a
// graceful shutdown.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server exited abnormally: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received signal %s, starting shutdown", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("error during server shutdown: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New takes the Config and a Mongo client and returns a Server with all
// application services and handlers assembled.
func New(cfg config.Config, client *mongo.Client) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("IST", 5*60*60+30*60)
		cfg.ServerLog.Printf("failed to load timezone %s: %v, falling back to IST", cfg.Timezone, err)
	}

	srv := &Server{
		logger:               cfg.ServerLog,
		client:               client,
		database:             client.Database(cfg.MongoDatabase),
		location:             loc,
		helpfulCookieSecret:  cfg.HelpfulCookieSecret,
		helpfulCookieSecure:  cfg.HelpfulCookieSecure,
		jwtConfigs:           append([]config.JWTConfig(nil), cfg.JWTConfigs...),
		jwtAudience:          cfg.JWTAudience,
		httpClient:           &http.Client{Timeout: cfg.MessengerTimeout},
		messengerEndpoint:    normaliseBaseURL(cfg.MessengerEndpoint),
		messengerDestination: cfg.MessengerDestination,
		mediaDir:             cfg.MediaDir,
		mediaBaseURL:         cfg.MediaBaseURL,
		addr:                 cfg.Addr,
		allowedOrigins:       append([]string(nil), cfg.AllowedOrigins...),
	}
	srv.pings = srv.database.Collection(cfg.PingCollection)
	srv.vendors = srv.database.Collection(cfg.VendorCollection)
	srv.reviews = srv.database.Collection(cfg.ReviewCollection)
	srv.failedNotifications = srv.database.Collection(cfg.FailedNotificationCollection)

	vendorRepo := mongodoc.NewVendorRepository(srv.database, cfg.VendorCollection)
	srv.vendorQueryService = publicapp.NewVendorQueryService(vendorRepo)
	listingRepo := mongodoc.NewListingRepository(srv.database, cfg.ListingCollection)
	srv.listingQueryService = publicapp.NewListingQueryService(listingRepo)
	reviewRepo := mongodoc.NewReviewRepository(srv.database, cfg.ReviewCollection, cfg.HelpfulVoteCollection)
	srv.reviewQueryService = publicapp.NewReviewQueryService(reviewRepo)
	srv.reviewCommandService = publicapp.NewReviewCommandService(reviewRepo)
	bookingRepo := mongodoc.NewBookingRepository(srv.database, cfg.BookingCollection, cfg.VendorCollection)
	srv.bookingCommands = publicapp.NewBookingCommandService(bookingRepo)
	srv.bookingQueries = publicapp.NewBookingQueryService(bookingRepo)

	profileRepo := mongodoc.NewVendorProfileRepository(srv.database, cfg.VendorCollection)
	srv.profileService = partnerapp.NewProfileService(profileRepo)
	vendorListingRepo := mongodoc.NewVendorListingRepository(srv.database, cfg.ListingCollection, cfg.VendorCollection)
	srv.listingService = partnerapp.NewListingService(vendorListingRepo)
	vendorBookingRepo := mongodoc.NewVendorBookingRepository(srv.database, cfg.BookingCollection)
	srv.bookingService = partnerapp.NewBookingService(vendorBookingRepo)
	announcementRepo := mongodoc.NewAnnouncementRepository(srv.database, cfg.AnnouncementCollection)
	srv.announcementService = partnerapp.NewAnnouncementService(announcementRepo)

	challengeRepo := mongodoc.NewOTPChallengeRepository(srv.database, cfg.OTPChallengeCollection)
	userRepo := mongodoc.NewUserRepository(srv.database, cfg.UserCollection)
	var sender otp.Sender
	if cfg.OTPGatewayURL != "" {
		sender = otp.NewGatewaySender(cfg.OTPGatewayURL, cfg.OTPGatewayAPIKey, cfg.OTPGatewayTimeout)
	} else {
		cfg.ServerLog.Printf("OTP_GATEWAY_URL is not set, login codes are written to the log")
		sender = otp.NewLogSender(cfg.ServerLog)
	}
	srv.otpService = otp.NewService(challengeRepo, userRepo, sender, cfg.OTPSecret, cfg.OTPTTL, 0, cfg.ServerLog)

	issuer := "eventour-auth"
	if len(cfg.JWTConfigs) > 0 && cfg.JWTConfigs[0].Issuer != "" {
		issuer = cfg.JWTConfigs[0].Issuer
	}
	srv.tokens = commonhttp.TokenIssuer{
		Secret:   cfg.JWTConfigs[0].Secret,
		Issuer:   issuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.TokenTTL,
	}

	srv.mediaStore = media.NewStore(cfg.MediaDir, cfg.MediaBaseURL)

	return srv
}
