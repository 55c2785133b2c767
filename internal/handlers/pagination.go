package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxPageLimit é o teto de itens por página imposto pelo servidor.
const MaxPageLimit = 100

// pagination lê skip/limit da query string. limit ausente, zero ou
// acima do teto cai para MaxPageLimit.
func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.Query("skip"))
	if skip < 0 {
		skip = 0
	}

	limit, _ = strconv.Atoi(c.Query("limit"))
	if limit <= 0 || limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return skip, limit
}
