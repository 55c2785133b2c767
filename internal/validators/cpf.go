package validators

// IsCPFValid aceita exatamente 11 dígitos numéricos, sem máscara.
func IsCPFValid(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
