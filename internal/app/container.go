package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/penzionapp/guesthouse-booking-backend/internal/admin"
	"github.com/penzionapp/guesthouse-booking-backend/internal/api"
	"github.com/penzionapp/guesthouse-booking-backend/internal/auth"
	"github.com/penzionapp/guesthouse-booking-backend/internal/block"
	"github.com/penzionapp/guesthouse-booking-backend/internal/notify"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/keymutex"
	"github.com/penzionapp/guesthouse-booking-backend/internal/reservation"
	"github.com/penzionapp/guesthouse-booking-backend/internal/room"
	"github.com/penzionapp/guesthouse-booking-backend/internal/sequence"
	"github.com/penzionapp/guesthouse-booking-backend/internal/settings"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router       *gin.Engine
	JWTManager   *auth.JWTManager
	AdminService admin.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Bookings and blocks for one room must serialize against each other,
	// so both services share this keyed mutex.
	roomLocks := keymutex.New()

	// Settings module
	settingsRepo := settings.NewPgxRepository(cfg.DBPool)
	settingsService := settings.NewService(settingsRepo)

	// Admin module
	adminRepo := admin.NewPgxRepository(cfg.DBPool)
	adminService := admin.NewService(adminRepo, passwordHasher, jwtManager)

	// Room module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Reservation module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)

	// Block module; the reservation repository doubles as its stay source.
	blockRepo := block.NewPgxRepository(cfg.DBPool)
	blockService := block.NewService(blockRepo, reservationRepo, roomLocks)

	// Sequence generators backed by the counters table.
	seq := sequence.NewGenerator(sequence.NewPgxStore(cfg.DBPool))

	// Notifications
	notifier := notify.NewNotifier(settingsRepo)

	reservationService := reservation.NewService(
		reservationRepo,
		roomRepo,
		blockRepo,
		settingsRepo,
		seq,
		adminService,
		notifier,
		roomLocks,
	)

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		RoomService:        roomService,
		BlockService:       blockService,
		ReservationService: reservationService,
		SettingsService:    settingsService,
		AdminService:       adminService,
		SMSClient:          notify.NewSMSClient(),
		JWTManager:         jwtManager,
	})

	return &Container{
		Router:       router,
		JWTManager:   jwtManager,
		AdminService: adminService,
	}
}
