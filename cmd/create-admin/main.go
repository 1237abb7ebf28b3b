package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/pquerna/otp/totp"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/database"
	"github.com/superengulfing/site-backend/internal/logger"
	"github.com/superengulfing/site-backend/internal/model"
	"github.com/superengulfing/site-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	adminRepo := repository.NewAdminRepository(pool)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin ===")

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Shared secret password
	fmt.Print("Enter Secret Password: ")
	byteSecret, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading secret")
		return
	}
	secret := string(byteSecret)
	fmt.Println() // Newline after hidden input
	if len(secret) < 6 {
		fmt.Println("Error: Secret must be at least 6 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────

	// Hash the secret
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash secret")
	}

	// Generate the TOTP seed. Enrollment is confirmed on the first
	// successful code verification, not here.
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      cfg.TOTPIssuer,
		AccountName: email,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate TOTP secret")
	}

	newAdmin := &model.Admin{
		Email:      email,
		SecretHash: string(hashedSecret),
		TOTPSecret: key.Secret(),
	}

	if err := adminRepo.Create(ctx, newAdmin); err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("\nSuccess! Admin '%s' created with ID: %d\n", newAdmin.Email, newAdmin.ID)
	fmt.Println("Scan this provisioning URI with an authenticator app:")
	fmt.Println(key.String())
}
