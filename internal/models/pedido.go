package models

import (
	"time"

	domain "github.com/Max-Antonio/lu-estilo-API/internal/domain/pedido"
)

type Pedido struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ClienteID uint    `gorm:"index;not null" json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:OnDelete:CASCADE" json:"cliente"`

	Status domain.Status `gorm:"size:30;default:'pendente'" json:"status"`

	DataInicio time.Time  `gorm:"autoCreateTime" json:"data_inicio"`
	DataFim    *time.Time `json:"data_fim,omitempty"`

	Produtos []Produto `gorm:"many2many:pedido_produtos" json:"produtos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PedidoProduto é a linha de junção pedido↔produto. A chave é composta
// e apagar qualquer um dos lados remove a linha em cascata.
type PedidoProduto struct {
	PedidoID  uint `gorm:"primaryKey" json:"pedido_id"`
	ProdutoID uint `gorm:"primaryKey" json:"produto_id"`

	Pedido  Pedido  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Produto Produto `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
