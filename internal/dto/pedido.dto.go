package dto

import (
	"time"

	domain "github.com/Max-Antonio/lu-estilo-API/internal/domain/pedido"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

type PedidoPublic struct {
	ID         uint            `json:"id"`
	ClienteID  uint            `json:"cliente_id"`
	Status     domain.Status   `json:"status"`
	DataInicio time.Time       `json:"data_inicio"`
	DataFim    *time.Time      `json:"data_fim,omitempty"`
	Cliente    ClientePublic   `json:"cliente"`
	Produtos   []ProdutoPublic `json:"produtos"`
}

func NewPedidoPublic(p models.Pedido) PedidoPublic {
	return PedidoPublic{
		ID:         p.ID,
		ClienteID:  p.ClienteID,
		Status:     p.Status,
		DataInicio: p.DataInicio,
		DataFim:    p.DataFim,
		Cliente:    NewClientePublic(p.Cliente),
		Produtos:   NewProdutoPublicList(p.Produtos),
	}
}

func NewPedidoPublicList(pedidos []models.Pedido) []PedidoPublic {
	out := make([]PedidoPublic, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, NewPedidoPublic(p))
	}
	return out
}
