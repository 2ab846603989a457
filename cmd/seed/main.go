package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"toollending-backend/internal/config"
	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository/postgres"
	"toollending-backend/internal/security"
	"toollending-backend/internal/service"

	"gopkg.in/yaml.v3"
)

type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type SeedClient struct {
	Name  string `yaml:"name"`
	Rut   string `yaml:"rut"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
}

type SeedTool struct {
	Name             string `yaml:"name"`
	Category         string `yaml:"category"`
	Stock            int32  `yaml:"stock"`
	ReplacementValue int32  `yaml:"replacement_value"`
}

type SeedData struct {
	Users   []SeedUser   `yaml:"users"`
	Clients []SeedClient `yaml:"clients"`
	Tools   []SeedTool   `yaml:"tools"`
}

type seeder struct {
	users   service.UserService
	clients service.ClientService
	tools   service.ToolService
	lookup  func(ctx context.Context, username string) (*domain.User, error)
}

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	seedPath := flag.String("data", "config/seed.yaml", "Path to seed data file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	data, err := readSeedFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Database.Driver, cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Connected to database", "host", cfg.Database.Host, "database", cfg.Database.Database)

	store := postgres.NewStore(db)
	tokens := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
	movements := service.NewMovementService(store.MovementRepository, store.ToolRepository)

	s := &seeder{
		users:   service.NewUserService(store.UserRepository, tokens),
		clients: service.NewClientService(store, store.ClientRepository, store.LoanRepository),
		tools:   service.NewToolService(store, store.ToolRepository, movements),
		lookup:  store.UserRepository.GetByUsername,
	}
	if err := s.run(ctx, data); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}
	logger.Info("Seed data populated", "users", len(data.Users), "clients", len(data.Clients), "tools", len(data.Tools))
}

func readSeedFile(filename string) (*SeedData, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// run is safe to repeat: users and clients that already exist are skipped.
// Tools are registered by the first ADMIN user in the file.
func (s *seeder) run(ctx context.Context, data *SeedData) error {
	var admin *domain.User
	for _, u := range data.Users {
		role := domain.UserRole(u.Role)
		user, err := s.users.CreateUser(ctx, u.Username, u.Password, role)
		if errors.Is(err, domain.ErrInvalidOperation) {
			logger.Info("User already exists, skipping", "username", u.Username)
			user, err = s.lookup(ctx, u.Username)
		}
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}
		if admin == nil && user.Role == domain.UserRoleAdmin {
			admin = user
		}
	}

	for _, c := range data.Clients {
		_, err := s.clients.CreateClient(ctx, &domain.Client{Name: c.Name, Rut: c.Rut, Phone: c.Phone, Email: c.Email})
		if errors.Is(err, domain.ErrInvalidOperation) {
			logger.Info("Client already exists, skipping", "rut", c.Rut)
			continue
		}
		if err != nil {
			return fmt.Errorf("client %s: %w", c.Rut, err)
		}
	}

	if len(data.Tools) > 0 && admin == nil {
		return errors.New("tools require at least one ADMIN user in the seed file")
	}
	for _, t := range data.Tools {
		if _, err := s.tools.CreateTool(ctx, &domain.Tool{
			Name:             t.Name,
			Category:         t.Category,
			Stock:            t.Stock,
			ReplacementValue: t.ReplacementValue,
		}, admin); err != nil {
			return fmt.Errorf("tool %s: %w", t.Name, err)
		}
	}
	return nil
}
