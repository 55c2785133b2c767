package dto

import "github.com/Max-Antonio/lu-estilo-API/internal/models"

type ProdutoPublic struct {
	ID         uint    `json:"id"`
	Categoria  string  `json:"categoria"`
	Secao      string  `json:"secao"`
	Preco      float64 `json:"preco"`
	Disponivel bool    `json:"disponivel"`
}

func NewProdutoPublic(p models.Produto) ProdutoPublic {
	return ProdutoPublic{
		ID:         p.ID,
		Categoria:  p.Categoria,
		Secao:      p.Secao,
		Preco:      p.Preco,
		Disponivel: p.Disponivel,
	}
}

func NewProdutoPublicList(produtos []models.Produto) []ProdutoPublic {
	out := make([]ProdutoPublic, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, NewProdutoPublic(p))
	}
	return out
}
