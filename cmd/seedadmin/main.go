// cmd/seedadmin crea o actualiza la cuenta de administrador del panel.
// Uso: go run ./cmd/seedadmin <username> <password>
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sobreexplotado/paginaparaaraizainc/internal/config"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/infra"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/model"
	"github.com/sobreexplotado/paginaparaaraizainc/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seedadmin <username> <password>")
		os.Exit(1)
	}
	username, password := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	repo := repository.NewUsuarioRepository(db)
	u := &model.Usuario{
		Username:     username,
		Nombre:       "Administrador",
		PasswordHash: string(hash),
		Activo:       true,
	}
	if err := repo.Upsert(context.Background(), u); err != nil {
		log.Fatalf("upsert error: %v", err)
	}
	fmt.Printf("usuario %q creado/actualizado\n", username)
}
