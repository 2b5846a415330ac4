package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
	"github.com/kaletesis/stoktakip-backend/internal/config"
	"github.com/kaletesis/stoktakip-backend/internal/modules/catalog"
	"github.com/kaletesis/stoktakip-backend/internal/modules/inventory"
	"github.com/kaletesis/stoktakip-backend/internal/modules/user"
)

// Seeding goes strictly through the service entry points so the same
// validation and ledger rules apply as in normal operation.
func main() {
	demo := flag.Bool("demo", false, "also create demo products, users and movements")
	adminPassword := flag.String("admin-password", "1234", "password for the initial admin user")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := config.SetupDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to set up database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()

	userRepo := user.NewPostgresRepository(db.DB)
	userService := user.NewService(userRepo, logger)
	catalogService := catalog.NewService(catalog.NewPostgresRepository(db.DB), logger)
	inventoryService := inventory.NewService(inventory.NewPostgresRepository(db.DB), logger)

	admin, err := userService.CreateUser(ctx, user.CreateUserRequest{
		Username:           "admin",
		Password:           *adminPassword,
		IsAdmin:            true,
		CanAddProduct:      true,
		CanViewReports:     true,
		CanManageInventory: true,
	})
	switch {
	case err == nil:
		logger.Info("admin user created")
	case apperr.IsKind(err, apperr.KindDuplicate):
		logger.Info("admin user already exists")
		admin, err = userRepo.GetUserByUsername(ctx, "admin")
		if err != nil {
			logger.Fatal("failed to load admin user", zap.Error(err))
		}
	default:
		logger.Fatal("failed to create admin user", zap.Error(err))
	}

	if !*demo {
		return
	}

	seedDemo(ctx, logger, admin.ID, catalogService, inventoryService, userService)
}

func seedDemo(ctx context.Context, logger *zap.Logger, adminID uuid.UUID,
	catalogService catalog.Service, inventoryService inventory.Service, userService user.Service) {

	products := map[string][]string{
		"CLEANING":  {"Sıvı Deterjan", "Çamaşır Suyu", "Yüzey Temizleyici", "Cam Temizleyici"},
		"BAR":       {"Viski", "Votka", "Cin", "Rom", "Likör"},
		"KITCHEN":   {"Domates", "Patates", "Soğan", "Salatalık", "Biber", "Pirinç", "Makarna"},
		"BEVERAGE":  {"Kola", "Meyve Suyu", "Gazoz", "Ayran", "Su", "Soda"},
		"PASTRY":    {"Un", "Şeker", "Yumurta", "Süt", "Krema", "Çikolata"},
		"ICE CREAM": {"Vanilya", "Çikolata Dondurma", "Çilek", "Limon", "Fıstık"},
	}

	productIDs := make(map[string]uuid.UUID)
	for category, names := range products {
		for _, name := range names {
			p, err := catalogService.CreateProduct(ctx, catalog.CreateProductRequest{
				Name: name, Category: category,
			})
			if err != nil {
				if apperr.IsKind(err, apperr.KindDuplicate) {
					continue
				}
				logger.Fatal("failed to create product", zap.String("name", name), zap.Error(err))
			}
			productIDs[name] = p.ID
		}
	}

	demoUsers := []user.CreateUserRequest{
		{Username: "satın_alma", Password: "1234", CanAddProduct: true, CanViewReports: true, CanManageInventory: true},
		{Username: "şef", Password: "1234", CanAddProduct: true, CanViewReports: true},
		{Username: "barmen", Password: "1234", CanManageInventory: true},
	}
	for _, req := range demoUsers {
		if _, err := userService.CreateUser(ctx, req); err != nil && !apperr.IsKind(err, apperr.KindDuplicate) {
			logger.Fatal("failed to create demo user", zap.String("username", req.Username), zap.Error(err))
		}
	}

	movements := []struct {
		product string
		qty     float64
		unit    string
		price   float64
	}{
		{"Sıvı Deterjan", 5, "litre", 150},
		{"Çamaşır Suyu", 10, "litre", 120},
		{"Viski", 3, "litre", 800},
		{"Votka", 4, "litre", 600},
		{"Domates", 10, "kg", 150},
		{"Patates", 20, "kg", 200},
		{"Kola", 30, "litre", 300},
		{"Su", 50, "litre", 100},
		{"Un", 25, "kg", 250},
		{"Şeker", 15, "kg", 180},
		{"Vanilya", 5, "kg", 500},
		{"Çikolata", 8, "kg", 800},
	}
	for _, m := range movements {
		productID, ok := productIDs[m.product]
		if !ok {
			continue
		}
		_, err := inventoryService.RecordMovement(ctx, inventory.RecordMovementRequest{
			ProductID:  productID,
			Quantity:   m.qty,
			Unit:       m.unit,
			TotalPrice: m.price,
			UserID:     adminID,
		})
		if err != nil {
			logger.Fatal("failed to record demo movement", zap.String("product", m.product), zap.Error(err))
		}
	}

	logger.Info("demo data created")
}
