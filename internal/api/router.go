package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/penzionapp/guesthouse-booking-backend/internal/admin"
	adminHttp "github.com/penzionapp/guesthouse-booking-backend/internal/admin/http"
	"github.com/penzionapp/guesthouse-booking-backend/internal/auth"
	"github.com/penzionapp/guesthouse-booking-backend/internal/block"
	blockHttp "github.com/penzionapp/guesthouse-booking-backend/internal/block/http"
	"github.com/penzionapp/guesthouse-booking-backend/internal/notify"
	"github.com/penzionapp/guesthouse-booking-backend/internal/reservation"
	reservationHttp "github.com/penzionapp/guesthouse-booking-backend/internal/reservation/http"
	"github.com/penzionapp/guesthouse-booking-backend/internal/room"
	roomHttp "github.com/penzionapp/guesthouse-booking-backend/internal/room/http"
	"github.com/penzionapp/guesthouse-booking-backend/internal/settings"
	settingsHttp "github.com/penzionapp/guesthouse-booking-backend/internal/settings/http"
)

// Config carries everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	RoomService        room.Service
	BlockService       block.Service
	ReservationService reservation.Service
	SettingsService    settings.Service
	AdminService       admin.Service
	SMSClient          *notify.SMSClient
	JWTManager         *auth.JWTManager
}

// NewRouter assembles middleware (CORS, logging, recovery) and registers the
// routes of every module under /api.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Frontend dev server
			"http://localhost:5173", // Vite dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// adminMiddleware: Validates if the request carries a valid admin JWT.
	adminMiddleware := auth.AdminRequired(cfg.JWTManager)

	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	blockHandler := blockHttp.NewHandler(cfg.BlockService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService, cfg.SettingsService, cfg.SMSClient)
	settingsHandler := settingsHttp.NewHandler(cfg.SettingsService)
	adminHandler := adminHttp.NewHandler(cfg.AdminService)

	api := r.Group("/api")
	{
		roomHttp.RegisterRoutes(api, roomHandler, adminMiddleware)
		blockHttp.RegisterRoutes(api, blockHandler, adminMiddleware)
		reservationHttp.RegisterRoutes(api, reservationHandler, adminMiddleware)
		settingsHttp.RegisterRoutes(api, settingsHandler, adminMiddleware)
		adminHttp.RegisterRoutes(api, adminHandler)
	}

	return r
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
