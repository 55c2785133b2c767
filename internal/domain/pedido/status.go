package pedido

import "github.com/Max-Antonio/lu-estilo-API/internal/httperr"

// ===============================
// Pedido Status
// ===============================

type Status string

const (
	StatusPendente   Status = "pendente"
	StatusConfirmado Status = "confirmado"
	StatusEnviado    Status = "enviado"
	StatusEntregue   Status = "entregue"
	StatusCancelado  Status = "cancelado"
	StatusDevolvido  Status = "devolvido"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPendente, StatusConfirmado, StatusEnviado,
		StatusEntregue, StatusCancelado, StatusDevolvido:
		return true
	}
	return false
}

// InitialStatus é o status de todo pedido recém criado.
func InitialStatus() Status {
	return StatusPendente
}

// transitions codifica o ciclo de vida implícito do pedido:
// pendente → confirmado → enviado → entregue, com cancelado e
// devolvido como saídas laterais.
var transitions = map[Status][]Status{
	StatusPendente:   {StatusConfirmado, StatusCancelado},
	StatusConfirmado: {StatusEnviado, StatusCancelado},
	StatusEnviado:    {StatusEntregue, StatusCancelado},
	StatusEntregue:   {StatusDevolvido},
}

// CanTransition valida uma mudança de status contra o ciclo de vida.
// As rotas de update hoje não aplicam essa validação (qualquer status
// pode ser gravado a qualquer momento); a função existe para quem
// quiser um fluxo mais estrito.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_status_transition")
}
