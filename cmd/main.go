package main

import (
	"context"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"marketplace/config"
	"marketplace/controllers"
	"marketplace/database"
	"marketplace/events"
	"marketplace/middleware"
	"marketplace/routes"
	"marketplace/stores"
)

func main() {
	config.LoadEnv()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	mongoURI := config.GetEnv("MONGO_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("DB_NAME", "marketplace")

	db, err := database.Connect(ctx, mongoURI, dbName)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer db.Client().Disconnect(context.Background())
	log.Info("connected to MongoDB", zap.String("database", dbName))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}

	var publisher events.Publisher = events.NopPublisher{}
	if brokers := config.GetEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaPublisher := events.NewKafkaPublisher(
			strings.Split(brokers, ","),
			config.GetEnv("KAFKA_ORDERS_TOPIC", "orders"),
		)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info("publishing order events", zap.String("brokers", brokers))
	}

	userStore := stores.NewUserStore(db)
	if err := userStore.SetupCollection(ctx); err != nil {
		log.Fatal("failed to set up users collection", zap.Error(err))
	}
	cartStore := stores.NewCartStore(db)
	orderStore := stores.NewOrderStore(db)
	productStore := stores.NewProductStore(db)
	sellerStore := stores.NewSellerStore(db)

	auth := middleware.NewAuth(
		[]byte(config.GetEnv("JWT_SECRET", "")),
		middleware.NewRedisBlacklist(redisClient),
	)

	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Default())

	routes.Register(r, &routes.Dependencies{
		Auth:     auth,
		Users:    controllers.NewUserController(userStore, cartStore, log),
		Carts:    controllers.NewCartController(cartStore, productStore, log),
		Orders:   controllers.NewOrderController(orderStore, cartStore, productStore, publisher, log),
		Products: controllers.NewProductController(productStore, sellerStore),
		Sellers:  controllers.NewSellerController(sellerStore),
		Log:      log,
	})

	port := config.GetEnv("PORT", "8080")
	log.Info("server listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
