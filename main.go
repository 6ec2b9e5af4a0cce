package main

import (
	"context"
	"jetsetgo/config"
	"jetsetgo/constants"
	"jetsetgo/database"
	"jetsetgo/handler"
	"jetsetgo/helper"
	"jetsetgo/notify"
	"jetsetgo/router"
	"jetsetgo/storage"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectDB()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	blobs, uploadDir := newBlobStore()
	bus := newBus(ctx)
	defer bus.Close()

	digest := helper.NewPendingDigest(db, config.Config("ADMIN_EMAIL"))
	if err := digest.Start(config.Int("DIGEST_HOUR")); err != nil {
		log.Printf("failed to start pending digest: %v", err)
	}
	defer digest.Stop()

	app := router.NewApp(config.Int("BODY_LIMIT_MB") * 1024 * 1024)
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(config.List("CORS_ORIGINS"), ","),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))
	app.Use(logger.New())

	router.SetupRoutes(app, handler.New(db, blobs, bus), uploadDir)

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("failed to shut down server: %v", err)
		}
	}()

	if err := app.Listen(":" + config.Config("APP_PORT")); err != nil {
		log.Printf("server stopped: %v", err)
	}
}

// newBlobStore picks the upload backend; the returned directory is served
// statically and is empty for remote backends.
func newBlobStore() (storage.BlobStore, string) {
	if config.Config("BLOB_DRIVER") == "cloudinary" {
		cld, err := storage.NewCloudinaryStore(
			config.Config("CLOUDINARY_CLOUD_NAME"),
			config.Config("CLOUDINARY_API_KEY"),
			config.Config("CLOUDINARY_API_SECRET"),
			config.Config("CLOUDINARY_FOLDER"))
		if err != nil {
			log.Fatalf("Cloudinary init failed: %v", err)
		}
		return cld, ""
	}

	dir := config.Config("UPLOAD_DIR")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("failed to create upload dir %s: %v", dir, err)
	}
	return storage.NewDiskStore(dir, config.Config("PUBLIC_BASE_URL"), constants.UPLOAD_PREFIX), dir
}

func newBus(ctx context.Context) notify.Bus {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		return notify.NopBus{}
	}
	bus := notify.NewRedisBus(addr)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := bus.Ping(pingCtx); err != nil {
		log.Printf("redis at %s unreachable, status events disabled: %v", addr, err)
		bus.Close()
		return notify.NopBus{}
	}
	log.Printf("status events published to redis at %s", addr)
	return bus
}
