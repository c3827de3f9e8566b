// Seed de datos de demostración: un usuario admin, dos bodegas y un catálogo
// mínimo de productos. Pensado para entornos de desarrollo.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jortega-dev/almacen-api/internal/domain/entity"
	"github.com/jortega-dev/almacen-api/internal/infrastructure/postgres"
	"github.com/jortega-dev/almacen-api/pkg/config"
	"github.com/jortega-dev/almacen-api/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	now := time.Now()

	userRepo := postgres.NewUserRepository(pool)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}
	admin := &entity.User{
		ID:           uuid.NewString(),
		Email:        "admin@almacen.local",
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Warn().Err(err).Msg("usuario admin ya existe, se omite")
	} else {
		log.Info().Str("email", admin.Email).Msg("usuario admin creado")
	}

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	warehouses := []*entity.Warehouse{
		{ID: uuid.NewString(), Name: "Bodega Central", Code: "BOD-CENTRAL", Address: "Calle 10 #25-30", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Bodega Norte", Code: "BOD-NORTE", Address: "Carrera 45 #120-15", Active: true, CreatedAt: now, UpdatedAt: now},
	}
	for _, w := range warehouses {
		if err := warehouseRepo.Create(w); err != nil {
			log.Warn().Err(err).Str("code", w.Code).Msg("bodega ya existe, se omite")
			continue
		}
		log.Info().Str("code", w.Code).Msg("bodega creada")
	}

	productRepo := postgres.NewProductRepository(pool)
	products := []*entity.Product{
		{ID: uuid.NewString(), SKU: "ARR-500G", Name: "Arroz 500g", Category: "Abarrotes", UOM: "und", ReorderLevel: 50, CostPrice: decimal.NewFromFloat(2100), SalesPrice: decimal.NewFromFloat(2900), CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), SKU: "AZU-1KG", Name: "Azúcar 1kg", Category: "Abarrotes", UOM: "und", ReorderLevel: 30, CostPrice: decimal.NewFromFloat(3400), SalesPrice: decimal.NewFromFloat(4500), CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), SKU: "ACE-1L", Name: "Aceite 1L", Category: "Abarrotes", UOM: "und", ReorderLevel: 20, CostPrice: decimal.NewFromFloat(8900), SalesPrice: decimal.NewFromFloat(11500), CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			log.Warn().Err(err).Str("sku", p.SKU).Msg("producto ya existe, se omite")
			continue
		}
		log.Info().Str("sku", p.SKU).Msg("producto creado")
	}

	log.Info().Msg("seed terminado")
}
