package main

import (
	"github.com/joho/godotenv"

	"pskbooking/internal/bookings/handler"
	"pskbooking/internal/bookings/notify"
	"pskbooking/internal/bookings/repository"
	"pskbooking/internal/bookings/service"
	"pskbooking/internal/bookings/validator"
	"pskbooking/pkg/app"
	"pskbooking/pkg/config"
	"pskbooking/pkg/mail"
)

const ServiceName = "bookings"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting booking service")

	bookingService := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.UploadDir, cfg.Log),
		handler.NewHealthHandler(cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.BookingService {
	records, err := repository.NewFileRecordStore(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize record store", "error", err)
	}

	attachments, err := repository.NewDiskAttachmentStore(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize attachment store", "error", err)
	}

	sender, err := mail.NewSenderFromConfig(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize mail transport", "error", err)
	}

	var notifier service.Notifier
	if sender != nil {
		notifier = notify.NewDispatcher(sender, cfg.SiteOwnerEmail, cfg.Log)
		cfg.Log.Info("Email notifications enabled", "owner", cfg.SiteOwnerEmail)
	} else {
		cfg.Log.Warn("Email not configured; notifications will be skipped (set SMTP_* or SENDGRID_API_KEY)")
	}

	bookingValidator := validator.NewBookingValidator(cfg.Log)

	bookingService := service.NewBookingService(
		records,
		attachments,
		bookingValidator,
		notifier,
		cfg,
	)

	cfg.Log.Info("Booking service initialized",
		"data_dir", cfg.DataDir,
		"upload_dir", cfg.UploadDir,
	)
	return bookingService
}
