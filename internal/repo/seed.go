package repo

import (
	"context"
	"fmt"

	dom "github.com/egonzalezhe/techflow/internal/domain"
	"github.com/egonzalezhe/techflow/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAdminUsername is the username of the account created at bootstrap.
const SeedAdminUsername = "admin"

// SeedServices returns the ten example services inserted at bootstrap.
func SeedServices() []dom.Service {
	return []dom.Service{
		{Name: "Desarrollo Web", Description: "Sitios web modernos y responsivos con las últimas tecnologías", Price: 2500000, Stock: 15, OnPromotion: true, Icon: "💻"},
		{Name: "Apps Móviles", Description: "Aplicaciones nativas para iOS y Android", Price: 4500000, Stock: 8, OnPromotion: false, Icon: "📱"},
		{Name: "Cloud Computing", Description: "Migración y gestión de servicios en la nube", Price: 3200000, Stock: 12, OnPromotion: true, Icon: "☁️"},
		{Name: "Ciberseguridad", Description: "Auditorías de seguridad y protección de datos", Price: 2800000, Stock: 6, OnPromotion: false, Icon: "🔐"},
		{Name: "Inteligencia Artificial", Description: "Soluciones de IA y Machine Learning personalizadas", Price: 6500000, Stock: 4, OnPromotion: true, Icon: "🤖"},
		{Name: "UI/UX Design", Description: "Diseño de interfaces centradas en el usuario", Price: 1800000, Stock: 20, OnPromotion: false, Icon: "🎨"},
		{Name: "Business Intelligence", Description: "Análisis de datos y reportes empresariales", Price: 3800000, Stock: 10, OnPromotion: false, Icon: "📊"},
		{Name: "Mantenimiento IT", Description: "Soporte técnico especializado 24/7", Price: 1200000, Stock: 25, OnPromotion: false, Icon: "🔧"},
		{Name: "E-commerce", Description: "Tiendas online completas y optimizadas", Price: 3500000, Stock: 7, OnPromotion: true, Icon: "🌐"},
		{Name: "Consultoría Digital", Description: "Estrategias de transformación digital", Price: 2200000, Stock: 18, OnPromotion: false, Icon: "📈"},
	}
}

// Seed inserts the default admin account and the example services.
// Each insert is independently idempotent: a unique violation on one row is
// swallowed so the remaining rows still get their chance. Safe to run on
// every process start.
func Seed(ctx context.Context, db *pgxpool.Pool, adminPasswordHash string) error {
	_, err := db.Exec(ctx,
		`INSERT INTO usuarios (username, password_hash) VALUES ($1, $2)`,
		SeedAdminUsername, adminPasswordHash)
	if err != nil && !utils.IsPGUniqueViolation(err) {
		return fmt.Errorf("seed admin: %w", err)
	}

	for _, s := range SeedServices() {
		_, err := db.Exec(ctx,
			`INSERT INTO servicios (nombre, descripcion, precio, stock, promocion, icono)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			s.Name, s.Description, s.Price, s.Stock, s.OnPromotion, s.Icon)
		if err != nil && !utils.IsPGUniqueViolation(err) {
			return fmt.Errorf("seed service %q: %w", s.Name, err)
		}
	}
	return nil
}
