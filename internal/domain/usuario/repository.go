package usuario

import (
	"context"

	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

// Repository resolve identidades contra o store. A unicidade de email
// é garantida por índice único no schema; o repositório em si não
// deduplica, o fluxo de registro checa antes de criar.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)
	List(ctx context.Context) ([]models.Usuario, error)

	// Create persiste o usuário já com a senha hasheada pelo caller.
	Create(ctx context.Context, u *models.Usuario) error
	Delete(ctx context.Context, id uint) error
}
