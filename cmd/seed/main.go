package main

import (
	"context"
	"os"
	"strings"

	"mindwell-be/internal/config"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/database"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
)

var defaultCategories = []entity.ConversationCategory{
	{
		Name:                        "General Wellbeing",
		Description:                 "Talk about anything on your mind.",
		Prompt:                      "You are a warm, supportive companion focused on everyday emotional wellbeing. Listen carefully, reflect feelings back, and suggest small practical steps. You are not a replacement for professional care.",
		RedirectableToOtherCategory: true,
		Icon:                        "heart",
		Gradient:                    "from-rose-400 to-orange-300",
		TextColor:                   "#7f1d1d",
	},
	{
		Name:                        "Anxiety Support",
		Description:                 "Work through worry, stress and anxious moments.",
		Prompt:                      "You are a calm, grounding guide for people experiencing anxiety. Offer breathing and grounding techniques, validate feelings, and keep answers short and steady.",
		RedirectableToOtherCategory: true,
		Icon:                        "wind",
		Gradient:                    "from-sky-400 to-indigo-400",
		TextColor:                   "#1e3a8a",
	},
	{
		Name:                        "Sleep",
		Description:                 "Build better sleep habits and wind down.",
		Prompt:                      "You help people improve their sleep. Ask about routines, suggest evidence-based sleep hygiene, and keep a soothing tone.",
		RedirectableToOtherCategory: true,
		Icon:                        "moon",
		Gradient:                    "from-violet-500 to-slate-700",
		TextColor:                   "#f8fafc",
	},
	{
		Name:                        "Relationships",
		Description:                 "Reflect on friends, family and partners.",
		Prompt:                      "You help people reflect on their relationships. Encourage empathy and clear communication, and never take sides.",
		RedirectableToOtherCategory: false,
		Icon:                        "users",
		Gradient:                    "from-emerald-400 to-teal-500",
		TextColor:                   "#064e3b",
	},
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	color.Cyan("Seeding conversation categories...")
	for i := range defaultCategories {
		category := defaultCategories[i]
		count, err := uow.ConversationCategoryRepository().Count(ctx, specification.ByName{Name: category.Name})
		if err != nil {
			color.Red("Error checking category '%s': %v", category.Name, err)
			continue
		}
		if count > 0 {
			color.Yellow("Category '%s' already exists, skipping...", category.Name)
			continue
		}
		if err := uow.ConversationCategoryRepository().Create(ctx, &category); err != nil {
			color.Red("Error creating category '%s': %v", category.Name, err)
			continue
		}
		color.Green("Created category: %s", category.Name)
	}

	seedAdmin(ctx, uow, cfg)

	color.Green("Seeding completed!")
}

func seedAdmin(ctx context.Context, uow unitofwork.UnitOfWork, cfg *config.Config) {
	email := strings.ToLower(strings.TrimSpace(cfg.Auth.SeedAdminEmail))
	if email == "" || cfg.Auth.SeedAdminPassword == "" {
		color.Yellow("SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		color.Red("Error looking up admin '%s': %v", email, err)
		return
	}
	if user != nil {
		if user.IsAdmin {
			color.Yellow("Admin '%s' already exists, skipping...", email)
			return
		}
		user.IsAdmin = true
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			color.Red("Error promoting '%s': %v", email, err)
			return
		}
		color.Green("Promoted existing user to admin: %s", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error hashing admin password: %v", err)
		return
	}
	admin := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrator",
		IsAdmin:      true,
	}
	if err := uow.UserRepository().Create(ctx, admin); err != nil {
		color.Red("Error creating admin '%s': %v", email, err)
		return
	}
	color.Green("Created admin user: %s", email)
}
