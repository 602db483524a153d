package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Kariqs/amana-storefront/admin"
	"github.com/Kariqs/amana-storefront/backend"
	"github.com/Kariqs/amana-storefront/checkout"
	"github.com/Kariqs/amana-storefront/controllers"
	"github.com/Kariqs/amana-storefront/initializers"
	"github.com/Kariqs/amana-storefront/routes"
	"github.com/Kariqs/amana-storefront/shop"
	"github.com/Kariqs/amana-storefront/tracking"
	"github.com/Kariqs/amana-storefront/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	readTimeout       = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func init() {
	initializers.LoadEnv()
}

func main() {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config with error %+v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := initializers.ConnectToStore(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect session store with error %+v", err)
	}
	defer closeStore()

	api := backend.New(cfg.BackendURL, cfg.BackendTimeout)
	shopSvc := shop.NewService(api, store, shop.Options{
		MergePolicy: cfg.MergePolicy,
		Currency:    cfg.Currency,
		DeliveryFee: cfg.DeliveryFee,
	})
	_ = shopSvc.LoadProducts(ctx)
	go shopSvc.RefreshProducts(ctx, cfg.ProductRefreshInterval)

	var mailer checkout.Mailer
	if cfg.Mail.Enabled() {
		mailer = utils.NewMailer(cfg.Mail.From, cfg.Mail.Password, cfg.Mail.Host, cfg.Mail.Addr, cfg.Mail.TemplatePath)
	}

	var uploader admin.ImageUploader
	if cfg.S3Bucket != "" {
		s3Uploader, err := utils.NewS3Uploader(ctx, cfg.S3Bucket)
		if err != nil {
			logrus.Errorf("S3 uploader not configured; %s", err.Error())
		} else {
			uploader = s3Uploader
		}
	}

	checkoutSvc := checkout.NewService(shopSvc, api, mailer, cfg.FrontendURL)
	h := &controllers.Handler{
		Shop:     shopSvc,
		Checkout: checkoutSvc,
		Tracking: tracking.NewService(api),
		Admin:    admin.NewService(api, shopSvc, uploader),
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	secureCookie := strings.HasPrefix(cfg.FrontendURL, "https://")
	routes.Register(server, h, int(cfg.SessionTTL.Seconds()), secureCookie)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	go func() {
		logrus.Infof("Server started at :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("Failed to run server with error %+v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Failed to gracefully shutdown server with error %+v", err)
	}
	checkoutSvc.Wait()
}
