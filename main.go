package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/srikanth99-bot/looom-shop/app/cmd"
	"github.com/srikanth99-bot/looom-shop/app/configs"
	"github.com/srikanth99-bot/looom-shop/app/handlers"
	"github.com/srikanth99-bot/looom-shop/app/handlers/admin"
	"github.com/srikanth99-bot/looom-shop/app/models"
	"github.com/srikanth99-bot/looom-shop/app/repositories"
	"github.com/srikanth99-bot/looom-shop/app/routes"
	"github.com/srikanth99-bot/looom-shop/app/services"
	"github.com/srikanth99-bot/looom-shop/app/store"
	"github.com/srikanth99-bot/looom-shop/app/utils/renderer"
	"github.com/srikanth99-bot/looom-shop/app/utils/sessions"
)

func main() {
	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	var (
		productRepo  repositories.ProductRepositoryImpl
		landingRepo  repositories.LandingSettingsRepositoryImpl
		catalogRepos store.Repos
	)

	if configs.IsDatabaseConfigured() {
		db, err := configs.OpenConnection()
		if err != nil {
			log.Printf("DB connection failed, falling back to demo catalog: %v", err)
		} else if result := configs.TestConnection(db); !result.Success {
			log.Printf("DB probe failed, falling back to demo catalog: %s", result.Error)
		} else {
			log.Println("✅ Database connected.")
			productRepo = repositories.NewProductRepository(db)
			landingRepo = repositories.NewLandingSettingsRepository(db)
			catalogRepos = store.Repos{
				Categories: repositories.NewCategoryRepository(db),
				Themes:     repositories.NewThemeRepository(db),
				Stories:    repositories.NewStoryRepository(db),
				Banners:    repositories.NewBannerRepository(db),
				Orders:     repositories.NewOrderRepository(db),
			}
		}
	} else {
		log.Println("Database not configured, serving the demo catalog.")
	}

	productService := services.NewProductService(productRepo)
	landingService := services.NewLandingService(landingRepo)

	statePath := env.StoreStatePath
	if statePath == "" {
		statePath = store.DefaultStatePath
	}

	appStore := store.New(productService, landingService,
		store.WithStatePath(statePath),
		store.WithAdminCredentials(env.AdminEmail, env.AdminPassHash),
		store.WithRepos(catalogRepos),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore.InitializeApp(ctx)
	appStore.StartSessionWatcher(ctx)

	unsubscribe := productService.SubscribeToProducts(func(products []models.Product) {
		appStore.SetProducts(products)
	})
	defer unsubscribe()

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Printf("Session keys missing, generating ephemeral pair: %v", err)
		keys = &configs.SessionKeys{
			AuthKey: securecookie.GenerateRandomKey(64),
			EncKey:  securecookie.GenerateRandomKey(32),
		}
	}
	adminSessions := sessions.NewCookieAdminStore(keys.AuthKey, keys.EncKey)
	log.Println("✅ Session store initialized.")

	r := renderer.New()
	router := routes.NewRouter(routes.Handlers{
		Home:     handlers.NewHomeHandler(r, productService, landingService, appStore),
		Products: handlers.NewProductHandler(r, productService, appStore),
		Cart:     handlers.NewCartHandler(r, productService, appStore),
		Checkout: handlers.NewCheckoutHandler(r, appStore),
		Admin:    admin.NewAdminHandler(r, appStore, productService, landingService, adminSessions),
	}, adminSessions, appStore, routes.Options{
		CSRFAuthKey: keys.AuthKey,
		SecureCSRF:  env.APP_ENV == "production",
	})

	addr := env.Port
	if addr == "" {
		addr = ":8080"
	}
	server := http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
